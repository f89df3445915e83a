// Package measurement reads and writes egg measurement files and describes
// the measurement shape for form builders.
package measurement

import "hatch-dbh/internal/hatch"

// Record is one row of a measurement file. A nil ShapeConstant takes the
// configured default.
type Record struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Length        float64  `json:"length" yaml:"length"`
	Breadth       float64  `json:"breadth" yaml:"breadth"`
	Mass          float64  `json:"mass" yaml:"mass"`
	ShapeConstant *float64 `json:"shape_constant,omitempty" yaml:"shape_constant,omitempty"`
	Species       string   `json:"species" yaml:"species"`
}

// Measurement converts the record into engine input.
func (r Record) Measurement(defaultShape float64) hatch.Measurement {
	kv := defaultShape
	if r.ShapeConstant != nil {
		kv = *r.ShapeConstant
	}
	return hatch.Measurement{
		Length:        r.Length,
		Breadth:       r.Breadth,
		Mass:          r.Mass,
		ShapeConstant: kv,
		Species:       hatch.Species(r.Species),
	}
}

// Measurements converts every record.
func Measurements(records []Record, defaultShape float64) []hatch.Measurement {
	out := make([]hatch.Measurement, len(records))
	for i, r := range records {
		out[i] = r.Measurement(defaultShape)
	}
	return out
}

func fillIDs(records []Record) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = rowID(i)
		}
	}
}
