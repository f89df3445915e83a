package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"hatch-dbh/internal/simulation"
)

// WriteUncertainty renders a Monte-Carlo DBH interval.
func WriteUncertainty(w io.Writer, format string, res simulation.Result) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SPECIES\tDBH\tP10\tP50\tP90\tTRIALS\tFAILED")
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%d\n",
			res.Point.Species, res.Point.DBH, res.P10, res.P50, res.P90, res.Trials, res.Failed)
		if err := tw.Flush(); err != nil {
			return err
		}
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warn)
		}
		return nil
	case "json":
		return writeJSON(w, res)
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"species", "dbh", "p10", "p50", "p90", "trials", "failed"})
		_ = cw.Write([]string{
			string(res.Point.Species), num(res.Point.DBH), num(res.P10), num(res.P50), num(res.P90),
			strconv.Itoa(res.Trials), strconv.Itoa(res.Failed),
		})
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown output format %q", format)
}
