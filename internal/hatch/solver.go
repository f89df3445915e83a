package hatch

import "math"

const (
	// MaxDensity is the upper bound of a physically sane egg density.
	MaxDensity = 2.0

	// The incubation window a root must fall in to be considered.
	minRootDBH = 0.0
	maxRootDBH = 35.0

	// Slack on the window edges for rounding error in the root formula.
	rootTolerance = 1e-9

	// Final sanity bound on a selected root.
	maxDBH = 100.0
)

// SolveDBH inverts the species regression for density.
func SolveDBH(density float64, species Species) (float64, error) {
	if err := checkDensity(density); err != nil {
		return 0, err
	}
	f, err := Lookup(species)
	if err != nil {
		return 0, err
	}
	return Solve(density, f)
}

// Solve inverts f for density. The checks run in a fixed order so a given
// bad input always yields the same error kind: density domain, discriminant,
// root window, then the sanity bound on the chosen root. When both roots lie
// in the window the smaller one wins.
func Solve(density float64, f Formula) (float64, error) {
	if err := checkDensity(density); err != nil {
		return 0, err
	}

	roots, err := roots(density, f.Coefficients)
	if err != nil {
		return 0, err
	}

	var valid []float64
	for _, r := range roots {
		if r >= minRootDBH-rootTolerance && r <= maxRootDBH+rootTolerance {
			// Clamping also turns -0 into +0.
			valid = append(valid, math.Max(minRootDBH, math.Min(r, maxRootDBH)))
		}
	}
	if len(valid) == 0 {
		return 0, newError(NoValidRoot,
			"no root within [%g, %g] days for density %.4f (roots %.4f, %.4f)",
			minRootDBH, maxRootDBH, density, roots[0], roots[1])
	}

	dbh := valid[0]
	for _, r := range valid[1:] {
		dbh = math.Min(dbh, r)
	}

	if dbh < 0 || dbh > maxDBH {
		return 0, newError(ImplausibleResult, "predicted DBH %.4f outside [0, %g]", dbh, maxDBH)
	}
	return dbh, nil
}

func checkDensity(density float64) error {
	if !positive(density) {
		return newError(InvalidMeasurement, "density must be positive, got %g", density)
	}
	if density > MaxDensity {
		return newError(ImplausibleMeasurement,
			"unusually high density %.4f g/cm³ (max %g)", density, MaxDensity)
	}
	return nil
}

// discriminant of a·x² + b·x + (c − density) = 0.
func discriminant(density float64, c Coefficients) float64 {
	return c.B*c.B - 4*c.A*(c.C-density)
}

// roots returns (−b + √disc)/2a and (−b − √disc)/2a.
func roots(density float64, c Coefficients) ([2]float64, error) {
	disc := discriminant(density, c)
	if disc < 0 {
		return [2]float64{}, newError(UnsolvableFormula,
			"density %.4f has no real solution (discriminant %.6g)", density, disc)
	}
	sq := math.Sqrt(disc)
	return [2]float64{
		(-c.B + sq) / (2 * c.A),
		(-c.B - sq) / (2 * c.A),
	}, nil
}
