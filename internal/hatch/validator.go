package hatch

import (
	"fmt"
	"math"
)

// Absolute plausibility bands for the supported species.
var (
	LengthBand        = Range{Min: 60, Max: 85}   // mm
	BreadthBand       = Range{Min: 40, Max: 60}   // mm
	MassBand          = Range{Min: 70, Max: 120}  // g
	ShapeConstantBand = Range{Min: 0.1, Max: 1.0} // Kv
)

// ValidationResult lists every problem found with a measurement.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate is a pre-flight check for callers that want diagnostics instead
// of an error. When the structural checks pass it pre-simulates the
// pipeline so anything that would fail in the solver is reported here too.
func Validate(m Measurement) ValidationResult {
	var errs []string

	fields := []struct {
		name string
		unit string
		v    float64
		band Range
	}{
		{"length", "mm", m.Length, LengthBand},
		{"breadth", "mm", m.Breadth, BreadthBand},
		{"mass", "g", m.Mass, MassBand},
		{"shape_constant", "", m.ShapeConstant, ShapeConstantBand},
	}
	for _, fd := range fields {
		switch {
		case math.IsNaN(fd.v) || math.IsInf(fd.v, 0):
			errs = append(errs, fmt.Sprintf("%s must be a finite number", fd.name))
		case fd.v <= 0:
			errs = append(errs, fmt.Sprintf("%s must be positive, got %g", fd.name, fd.v))
		case !fd.band.Contains(fd.v):
			errs = append(errs, fmt.Sprintf("%s %g%s outside plausible range %g-%g%s",
				fd.name, fd.v, fd.unit, fd.band.Min, fd.band.Max, fd.unit))
		}
	}

	f, err := Lookup(m.Species)
	if err != nil {
		errs = append(errs, fmt.Sprintf("unknown species %q (supported: %v)", m.Species, AllSpecies()))
	}

	if len(errs) == 0 {
		errs = append(errs, simulate(m, f)...)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// simulate repeats the volume → density → discriminant → root window steps
// without raising.
func simulate(m Measurement, f Formula) []string {
	volume := m.ShapeConstant * m.Length * m.Breadth * m.Breadth / 1000
	density := m.Mass / volume

	if density > MaxDensity {
		return []string{fmt.Sprintf("density %.4f g/cm³ exceeds %g", density, MaxDensity)}
	}
	disc := discriminant(density, f.Coefficients)
	if disc < 0 {
		return []string{fmt.Sprintf("density %.4f g/cm³ cannot be solved for %s (discriminant %.6g)",
			density, f.Species, disc)}
	}
	if _, err := Solve(density, f); err != nil {
		return []string{fmt.Sprintf("density %.4f g/cm³ gives no DBH within %g-%g days for %s",
			density, minRootDBH, maxRootDBH, f.Species)}
	}
	return nil
}
