package hatch

import "math"

// EggVolume returns the egg volume in cm³ from length and breadth in mm:
// Kv × L × B² converted from mm³.
func EggVolume(length, breadth, shapeConstant float64) (float64, error) {
	if !positive(length) || !positive(breadth) || !positive(shapeConstant) {
		return 0, newError(InvalidMeasurement,
			"length, breadth and shape constant must be positive (length=%g, breadth=%g, shape_constant=%g)",
			length, breadth, shapeConstant)
	}
	return shapeConstant * length * breadth * breadth / 1000, nil
}

// EggDensity returns mass / volume in g/cm³.
func EggDensity(mass, volume float64) (float64, error) {
	if !positive(mass) || !positive(volume) {
		return 0, newError(InvalidMeasurement,
			"mass and volume must be positive (mass=%g, volume=%g)", mass, volume)
	}
	return mass / volume, nil
}

// positive rejects NaN, ±Inf, zero and negatives.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
