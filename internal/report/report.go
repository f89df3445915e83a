// Package report renders predictions and validation results as text
// tables, JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"text/tabwriter"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/stats"
)

// Row pairs an outcome with the identifier of its source record.
type Row struct {
	ID string
	hatch.Outcome
}

type errorJSON struct {
	Kind    hatch.Kind `json:"kind,omitempty"`
	Message string     `json:"message"`
}

type rowJSON struct {
	ID         string            `json:"id"`
	Input      hatch.Measurement `json:"input"`
	Prediction *hatch.Prediction `json:"prediction,omitempty"`
	Error      *errorJSON        `json:"error,omitempty"`
}

type predictionsJSON struct {
	Results []rowJSON      `json:"results"`
	Summary *stats.Summary `json:"summary,omitempty"`
}

// WritePredictions renders rows in format ("table", "json" or "csv"). A
// non-nil summary is appended in table and JSON output.
func WritePredictions(w io.Writer, format string, rows []Row, summary *stats.Summary) error {
	switch format {
	case "table":
		return predictionsTable(w, rows, summary)
	case "json":
		out := predictionsJSON{Results: make([]rowJSON, len(rows)), Summary: summary}
		for i, r := range rows {
			out.Results[i] = rowJSON{ID: r.ID, Input: r.Input}
			if r.Err != nil {
				out.Results[i].Error = &errorJSON{Kind: hatch.KindOf(r.Err), Message: r.Err.Error()}
				continue
			}
			p := r.Prediction
			out.Results[i].Prediction = &p
		}
		return writeJSON(w, out)
	case "csv":
		return predictionsCSV(w, rows)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func predictionsTable(w io.Writer, rows []Row, summary *stats.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSPECIES\tVOLUME cm3\tDENSITY g/cm3\tDBH days\tCONFIDENCE\tSTATUS")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t%s\n", r.ID, r.Input.Species, r.Err)
			continue
		}
		p := r.Prediction
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.4f\t%.2f\t%.3f\tok\n",
			r.ID, p.Species, p.EggVolume, p.EggDensity, p.DBH, p.Confidence)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if summary == nil {
		return nil
	}
	return summaryTable(w, *summary)
}

func summaryTable(w io.Writer, s stats.Summary) error {
	fmt.Fprintf(w, "\n%d measurements: %d predicted, %d failed\n", s.Total, s.Succeeded, s.Failed)
	kinds := slices.Sorted(maps.Keys(s.Failures))
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", kind, s.Failures[kind])
	}
	if len(s.Species) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIES\tN\tMEDIAN DBH\tRANGE\tMEDIAN CONFIDENCE")
	for _, sp := range s.Species {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f-%.2f\t%.3f\n",
			sp.Species, sp.Count, sp.MedianDBH, sp.MinDBH, sp.MaxDBH, sp.MedianConfidence)
	}
	return tw.Flush()
}

func predictionsCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "species", "egg_volume", "egg_density", "dbh", "confidence", "formula_version", "error_kind", "error"})
	for _, r := range rows {
		if r.Err != nil {
			_ = cw.Write([]string{r.ID, string(r.Input.Species), "", "", "", "", "", string(hatch.KindOf(r.Err)), r.Err.Error()})
			continue
		}
		p := r.Prediction
		_ = cw.Write([]string{
			r.ID, string(p.Species),
			num(p.EggVolume), num(p.EggDensity), num(p.DBH), num(p.Confidence),
			p.FormulaVersion, "", "",
		})
	}
	cw.Flush()
	return cw.Error()
}

// Validation is one validator result with its record identifier.
type Validation struct {
	ID string `json:"id"`
	hatch.ValidationResult
}

// WriteValidations renders validator results.
func WriteValidations(w io.Writer, format string, results []Validation) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tVALID\tERRORS")
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(tw, "%s\tyes\t-\n", r.ID)
				continue
			}
			fmt.Fprintf(tw, "%s\tno\t%s\n", r.ID, r.Errors[0])
			for _, e := range r.Errors[1:] {
				fmt.Fprintf(tw, "\t\t%s\n", e)
			}
		}
		return tw.Flush()
	case "json":
		return writeJSON(w, results)
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "valid", "error"})
		for _, r := range results {
			if r.Valid {
				_ = cw.Write([]string{r.ID, "true", ""})
				continue
			}
			for _, e := range r.Errors {
				_ = cw.Write([]string{r.ID, "false", e})
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteFormulas lists the species formula table.
func WriteFormulas(w io.Writer, format string, formulas []hatch.Formula) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SPECIES\tFORMULA\tVERSION\tA\tB\tC\tDENSITY RANGE\tDBH RANGE")
		for _, f := range formulas {
			c := f.Coefficients
			fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%g\t%g-%g\t%g-%g\n",
				f.Species, f.Name, f.Version, c.A, c.B, c.C,
				f.DensityRange.Min, f.DensityRange.Max, f.DBHRange.Min, f.DBHRange.Max)
		}
		return tw.Flush()
	case "json":
		return writeJSON(w, formulas)
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"species", "name", "version", "a", "b", "c", "density_min", "density_max", "dbh_min", "dbh_max"})
		for _, f := range formulas {
			c := f.Coefficients
			_ = cw.Write([]string{
				string(f.Species), f.Name, f.Version, num(c.A), num(c.B), num(c.C),
				num(f.DensityRange.Min), num(f.DensityRange.Max), num(f.DBHRange.Min), num(f.DBHRange.Max),
			})
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
