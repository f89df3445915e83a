package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hatch-dbh/internal/report"
	"hatch-dbh/internal/simulation"
)

func newUncertaintyCmd(a *app) *cobra.Command {
	var (
		mf     measureFlags
		errs   = simulation.DefaultMeasurementError
		trials int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "uncertainty",
		Short: "Estimate a DBH interval from instrument error",
		Long: `Perturbs the measurement with Gaussian instrument error and reports the
10th, 50th and 90th percentile of the predicted DBH over all solvable trials.`,
		Example: `  hatch-dbh uncertainty --length 72.3 --breadth 50.2 --mass 91.89
  hatch-dbh uncertainty --length 66 --breadth 44 --mass 70 --species king_eider --mass-error 0.5 --trials 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mf.measurement(cmd, a.cfg.ShapeConstant)
			log.Debug().Int("trials", trials).Int64("seed", seed).Msg("Starting uncertainty simulation")

			res, err := simulation.NewEngine(errs, seed).Run(m, trials)
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				log.Info().Int("failed", res.Failed).Int("trials", res.Trials).Msg("Some perturbed measurements were not solvable")
			}
			return report.WriteUncertainty(cmd.OutOrStdout(), a.format, res)
		},
	}
	mf.bind(cmd)
	cmd.Flags().IntVar(&trials, "trials", 10000, "number of Monte-Carlo trials")
	cmd.Flags().Float64Var(&errs.LengthMM, "length-error", errs.LengthMM, "1-sigma length error in mm")
	cmd.Flags().Float64Var(&errs.BreadthMM, "breadth-error", errs.BreadthMM, "1-sigma breadth error in mm")
	cmd.Flags().Float64Var(&errs.MassG, "mass-error", errs.MassG, "1-sigma mass error in g")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	for _, name := range []string{"length", "breadth", "mass"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
