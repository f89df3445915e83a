package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/measurement"
	"hatch-dbh/internal/report"
	"hatch-dbh/internal/stats"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers   int
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Predict DBH for every measurement in a CSV, JSON or YAML file",
		Long: `Predict DBH for every measurement in FILE.

By default the run stops at the first measurement that cannot be predicted and
reports its position. With --keep-going every measurement is reported and a
per-species summary is appended.`,
		Example: `  hatch-dbh batch nests.csv
  hatch-dbh batch nests.yaml --keep-going -f json
  hatch-dbh batch nests.csv --workers 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := measurement.Load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			inputs := measurement.Measurements(records, a.cfg.ShapeConstant)
			log.Info().Str("file", args[0]).Int("measurements", len(inputs)).Int("workers", workers).Msg("Batch started")

			if keepGoing {
				return a.assess(cmd, records, inputs)
			}

			predictions, err := hatch.PredictBatchParallel(cmd.Context(), inputs, workers)
			if err != nil {
				var be *hatch.BatchError
				if errors.As(err, &be) {
					a.record([]hatch.Outcome{{Index: be.Index, Input: inputs[be.Index], Err: be.Err}})
					log.Error().Err(be.Err).Int("index", be.Index).Str("id", records[be.Index].ID).Msg("Batch stopped")
					return fmt.Errorf("record %s (index %d): %w", records[be.Index].ID, be.Index, be.Err)
				}
				return err
			}

			outcomes := make([]hatch.Outcome, len(predictions))
			rows := make([]report.Row, len(predictions))
			for i, p := range predictions {
				outcomes[i] = hatch.Outcome{Index: i, Input: inputs[i], Prediction: p}
				rows[i] = report.Row{ID: records[i].ID, Outcome: outcomes[i]}
			}
			a.record(outcomes)
			log.Info().Int("predicted", len(predictions)).Msg("Batch finished")
			return report.WritePredictions(cmd.OutOrStdout(), a.format, rows, nil)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "parallel workers (default $BATCH_WORKERS or 1)")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "report every measurement instead of stopping at the first failure")
	return cmd
}

func (a *app) assess(cmd *cobra.Command, records []measurement.Record, inputs []hatch.Measurement) error {
	outcomes := hatch.Assess(inputs)
	rows := make([]report.Row, len(outcomes))
	for i, o := range outcomes {
		rows[i] = report.Row{ID: records[i].ID, Outcome: o}
		if o.Err != nil {
			log.Warn().Err(o.Err).Int("index", i).Str("id", records[i].ID).Msg("Measurement skipped")
		}
	}
	a.record(outcomes)

	summary := stats.Summarize(outcomes)
	log.Info().Int("predicted", summary.Succeeded).Int("failed", summary.Failed).Msg("Batch finished")
	return report.WritePredictions(cmd.OutOrStdout(), a.format, rows, &summary)
}
