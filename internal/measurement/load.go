package measurement

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var csvColumns = []string{"id", "length", "breadth", "mass", "shape_constant", "species"}

var requiredCSVColumns = []string{"length", "breadth", "mass", "species"}

// Load reads a measurement file, choosing the decoder from its extension.
func Load(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode reads records in the given format. Records without an ID are
// numbered row-1, row-2, ...
func Decode(r io.Reader, format Format) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case CSV:
		records, err = decodeCSV(r)
	case JSON:
		err = json.NewDecoder(r).Decode(&records)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	fillIDs(records)
	if err := checkFinite(records); err != nil {
		return nil, err
	}
	return records, nil
}

// checkFinite rejects NaN and ±Inf, which CSV and YAML can both spell.
func checkFinite(records []Record) error {
	for _, r := range records {
		values := map[string]float64{"length": r.Length, "breadth": r.Breadth, "mass": r.Mass}
		if r.ShapeConstant != nil {
			values["shape_constant"] = *r.ShapeConstant
		}
		for _, col := range csvColumns {
			v, ok := values[col]
			if ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return fmt.Errorf("record %s: %s is not a finite number", r.ID, col)
			}
		}
	}
	return nil
}

func decodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty CSV: header row required")
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredCSVColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	number := func(col string) (float64, error) {
		v, err := strconv.ParseFloat(cell(col), 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", col, err)
		}
		return v, nil
	}

	var (
		rec Record
		err error
	)
	rec.ID = cell("id")
	rec.Species = cell("species")
	if rec.Length, err = number("length"); err != nil {
		return Record{}, err
	}
	if rec.Breadth, err = number("breadth"); err != nil {
		return Record{}, err
	}
	if rec.Mass, err = number("mass"); err != nil {
		return Record{}, err
	}
	if cell("shape_constant") != "" {
		kv, err := number("shape_constant")
		if err != nil {
			return Record{}, err
		}
		rec.ShapeConstant = &kv
	}
	return rec, nil
}
