package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/measurement"
	"hatch-dbh/internal/report"
)

func newSpeciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List supported species and their density regressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteFormulas(cmd.OutOrStdout(), a.format, hatch.Formulas())
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of a measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := measurement.Schema()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}
