package hatch

// Predict runs geometry, density, solver and confidence in that order and
// returns the first error raised by any stage.
func Predict(m Measurement) (Prediction, error) {
	volume, err := EggVolume(m.Length, m.Breadth, m.ShapeConstant)
	if err != nil {
		return Prediction{}, err
	}
	density, err := EggDensity(m.Mass, volume)
	if err != nil {
		return Prediction{}, err
	}
	if err := checkDensity(density); err != nil {
		return Prediction{}, err
	}
	f, err := Lookup(m.Species)
	if err != nil {
		return Prediction{}, err
	}
	dbh, err := Solve(density, f)
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		DBH:            round(dbh, 2),
		EggDensity:     round(density, 4),
		EggVolume:      round(volume, 2),
		Confidence:     round(Score(density, dbh, f), 3),
		Species:        f.Species,
		FormulaName:    f.Name,
		FormulaVersion: f.Version,
		Coefficients:   f.Coefficients,
	}, nil
}
