package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hatch-dbh/internal/config"
	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/logging"
	"hatch-dbh/internal/observability"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	verbose     bool
	format      string
	metricsFile string

	cfg     *config.AppConfig
	metrics *observability.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hatch-dbh",
		Short: "Predict days before hatching from egg morphometrics",
		Long: `hatch-dbh estimates how many days remain before a wild bird egg hatches (DBH)
from its length, breadth and mass, by inverting a per-species regression of
egg density against incubation stage.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := logging.Init(a.verbose, a.cfg.LogDir); err != nil {
				return err
			}

			if a.format == "" {
				a.format = a.cfg.OutputFormat
			}
			if !config.ValidFormat(a.format) {
				return fmt.Errorf("unknown output format %q: want one of %v", a.format, config.OutputFormats)
			}
			if a.metricsFile == "" {
				a.metricsFile = a.cfg.MetricsFile
			}
			a.metrics = observability.NewMetrics()

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Int("workers", a.cfg.Workers).
				Float64("shapeConstant", a.cfg.ShapeConstant).
				Msg("hatch-dbh starting")
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: table, json or csv (default $OUTPUT_FORMAT or table)")
	rootCmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run (default $METRICS_TEXTFILE)")

	rootCmd.AddCommand(
		newPredictCmd(a),
		newBatchCmd(a),
		newValidateCmd(a),
		newUncertaintyCmd(a),
		newSpeciesCmd(a),
		newSchemaCmd(),
	)
	return rootCmd
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func (a *app) record(outcomes []hatch.Outcome) {
	a.metrics.ObserveRun(outcomes)
	if a.metricsFile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		log.Warn().Err(err).Str("path", a.metricsFile).Msg("Failed to write metrics textfile")
		return
	}
	log.Debug().Str("path", a.metricsFile).Msg("Wrote metrics textfile")
}
