package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/report"
)

func newPredictCmd(a *app) *cobra.Command {
	var mf measureFlags

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict DBH for a single egg",
		Example: `  hatch-dbh predict --length 72.3 --breadth 50.2 --mass 91.89 --species common_eider
  hatch-dbh predict --length 66 --breadth 44 --mass 70 --species king_eider -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mf.measurement(cmd, a.cfg.ShapeConstant)
			p, err := hatch.Predict(m)
			o := hatch.Outcome{Input: m, Prediction: p, Err: err}
			a.record([]hatch.Outcome{o})
			if err != nil {
				log.Debug().Err(err).Str("kind", string(hatch.KindOf(err))).Msg("Prediction failed")
				return err
			}
			return report.WritePredictions(cmd.OutOrStdout(), a.format, []report.Row{{ID: "input", Outcome: o}}, nil)
		},
	}
	mf.bind(cmd)
	for _, name := range []string{"length", "breadth", "mass"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
