package hatch

import "slices"

// Formula is a per-species density-vs-DBH regression together with the
// envelopes used for confidence weighting.
type Formula struct {
	Species      Species      `json:"species"`
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Coefficients Coefficients `json:"coefficients"`
	DensityRange Range        `json:"density_range"` // g/cm³
	DBHRange     Range        `json:"dbh_range"`     // days
}

// Density evaluates the regression at dbh.
func (f Formula) Density(dbh float64) float64 {
	c := f.Coefficients
	return c.A*dbh*dbh + c.B*dbh + c.C
}

const formulaVersion = "2.0"

var formulas = map[Species]Formula{
	CommonEider: {
		Species:      CommonEider,
		Name:         "Common Eider egg density regression",
		Version:      formulaVersion,
		Coefficients: Coefficients{A: -0.00005, B: 0.0059, C: 0.965},
		DensityRange: Range{Min: 0.965, Max: 1.090},
		DBHRange:     Range{Min: 0, Max: 28},
	},
	KingEider: {
		Species:      KingEider,
		Name:         "King Eider egg density regression",
		Version:      formulaVersion,
		Coefficients: Coefficients{A: 0.0001, B: 0.0021, C: 0.955},
		DensityRange: Range{Min: 0.955, Max: 1.110},
		DBHRange:     Range{Min: 0, Max: 25},
	},
}

// Lookup returns the formula registered for species.
func Lookup(species Species) (Formula, error) {
	f, ok := formulas[species]
	if !ok {
		return Formula{}, newError(UnknownSpecies, "no formula for species %q", species)
	}
	return f, nil
}

// Known reports whether species has a formula.
func Known(species Species) bool {
	_, ok := formulas[species]
	return ok
}

// AllSpecies lists the supported species in lexical order.
func AllSpecies() []Species {
	out := make([]Species, 0, len(formulas))
	for s := range formulas {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Formulas returns every formula ordered like AllSpecies.
func Formulas() []Formula {
	species := AllSpecies()
	out := make([]Formula, len(species))
	for i, s := range species {
		out[i] = formulas[s]
	}
	return out
}
