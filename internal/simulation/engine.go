// Package simulation propagates measurement error through the prediction
// engine by Monte-Carlo sampling.
package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"hatch-dbh/internal/hatch"
)

// MeasurementError holds the one-sigma instrument error of each input.
type MeasurementError struct {
	LengthMM  float64 `json:"length_mm"`
	BreadthMM float64 `json:"breadth_mm"`
	MassG     float64 `json:"mass_g"`
}

// DefaultMeasurementError matches vernier callipers and a 0.1 g field scale.
var DefaultMeasurementError = MeasurementError{LengthMM: 0.1, BreadthMM: 0.1, MassG: 0.05}

// Engine performs the Monte-Carlo simulation.
type Engine struct {
	errs MeasurementError
	rng  *rand.Rand
}

// Result holds the percentiles of the simulated DBH distribution.
type Result struct {
	Point    hatch.Prediction `json:"point"`
	P10      float64          `json:"p10"`
	P50      float64          `json:"p50"`
	P90      float64          `json:"p90"`
	Trials   int              `json:"trials"`
	Failed   int              `json:"failed"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Trials that fail above this share make the percentiles unreliable.
const failureWarnShare = 0.05

// NewEngine seeds from the clock when seed is 0.
func NewEngine(errs MeasurementError, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{errs: errs, rng: rand.New(rand.NewSource(seed))}
}

// Run predicts m once, then perturbs it trials times with Gaussian noise and
// reports DBH percentiles over the trials that the engine could solve. The
// point prediction must succeed.
func (e *Engine) Run(m hatch.Measurement, trials int) (Result, error) {
	if trials <= 0 {
		return Result{}, fmt.Errorf("trials must be positive, got %d", trials)
	}
	point, err := hatch.Predict(m)
	if err != nil {
		return Result{}, err
	}

	dbh := make([]float64, 0, trials)
	failures := map[hatch.Kind]int{}
	for i := 0; i < trials; i++ {
		p, err := hatch.Predict(e.perturb(m))
		if err != nil {
			failures[hatch.KindOf(err)]++
			continue
		}
		dbh = append(dbh, p.DBH)
	}

	res := Result{Point: point, Trials: trials, Failed: trials - len(dbh)}
	if len(dbh) == 0 {
		res.Warnings = append(res.Warnings, "No perturbed measurement could be predicted; percentiles are undefined.")
		return res, nil
	}

	sort.Float64s(dbh)
	res.P10 = percentile(dbh, 0.10)
	res.P50 = percentile(dbh, 0.50)
	res.P90 = percentile(dbh, 0.90)

	if share := float64(res.Failed) / float64(trials); share > failureWarnShare {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"%.1f%% of trials failed (%v); the measurement sits near the edge of the species formula and the interval is truncated.",
			share*100, failures))
	}
	return res, nil
}

func (e *Engine) perturb(m hatch.Measurement) hatch.Measurement {
	m.Length += e.rng.NormFloat64() * e.errs.LengthMM
	m.Breadth += e.rng.NormFloat64() * e.errs.BreadthMM
	m.Mass += e.rng.NormFloat64() * e.errs.MassG
	return m
}

// percentile of sorted values by nearest rank.
func percentile(sorted []float64, q float64) float64 {
	idx := int(math.Ceil(q*float64(len(sorted)))) - 1
	idx = max(0, min(idx, len(sorted)-1))
	return sorted[idx]
}
