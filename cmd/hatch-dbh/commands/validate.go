package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/measurement"
	"hatch-dbh/internal/report"
)

func newValidateCmd(a *app) *cobra.Command {
	var mf measureFlags

	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check measurements for plausibility without predicting",
		Long: `Check measurements against the plausibility bands and pre-simulate the
prediction, listing every problem found. Reads FILE when given, otherwise the
measurement flags. Exits non-zero when any measurement is invalid.`,
		Example: `  hatch-dbh validate nests.csv
  hatch-dbh validate --length 72.3 --breadth 50.2 --mass 91.89`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ids    []string
				inputs []hatch.Measurement
			)
			if len(args) == 1 {
				records, err := measurement.Load(args[0])
				if err != nil {
					return err
				}
				for _, r := range records {
					ids = append(ids, r.ID)
				}
				inputs = measurement.Measurements(records, a.cfg.ShapeConstant)
			} else {
				ids = []string{"input"}
				inputs = []hatch.Measurement{mf.measurement(cmd, a.cfg.ShapeConstant)}
			}

			results := make([]report.Validation, len(inputs))
			invalid := 0
			for i, m := range inputs {
				results[i] = report.Validation{ID: ids[i], ValidationResult: hatch.Validate(m)}
				if !results[i].Valid {
					invalid++
				}
			}
			if err := report.WriteValidations(cmd.OutOrStdout(), a.format, results); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d measurements invalid", invalid, len(inputs))
			}
			return nil
		},
	}
	mf.bind(cmd)
	return cmd
}
