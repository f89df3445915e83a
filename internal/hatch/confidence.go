package hatch

const (
	minConfidence = 0.1
	maxConfidence = 1.0

	// Incubation estimates beyond this are penalised even inside the DBH range.
	longIncubationDBH = 30.0
)

// Confidence scores how typical density and dbh are for species.
func Confidence(density, dbh float64, species Species) (float64, error) {
	f, err := Lookup(species)
	if err != nil {
		return 0, err
	}
	return Score(density, dbh, f), nil
}

// Score is a heuristic in [0.1, 1.0], not a statistical interval.
func Score(density, dbh float64, f Formula) float64 {
	c := 1.0

	if !f.DensityRange.Contains(density) {
		c *= 0.6
	} else if hw := f.DensityRange.HalfWidth(); hw > 0 {
		dist := density - f.DensityRange.Midpoint()
		if dist < 0 {
			dist = -dist
		}
		c *= 0.9 + 0.1*(1-dist/hw)
	}

	switch {
	case !f.DBHRange.Contains(dbh):
		c *= 0.7
	case dbh > longIncubationDBH:
		c *= 0.8
	}

	return min(max(c, minConfidence), maxConfidence)
}
