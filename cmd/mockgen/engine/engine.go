package engine

import (
	"fmt"
	"math"
	"math/rand"

	"hatch-dbh/internal/hatch"
	"hatch-dbh/internal/measurement"
)

type GeneratorConfig struct {
	Scenario     string // "typical", "noisy" or "outliers"
	Distribution string // "uniform" or "weibull" DBH sampling
	Species      string // a species tag or "all"
	Count        int
	Seed         int64
}

// Sample is a generated record together with the DBH it was built from.
type Sample struct {
	Record  measurement.Record
	TrueDBH float64
}

// Generate builds synthetic measurements by sampling a DBH, computing the
// density the species regression predicts for it, and back-calculating mass
// from a sampled egg shape.
func Generate(cfg GeneratorConfig) ([]Sample, error) {
	formulas, err := formulasFor(cfg.Species)
	if err != nil {
		return nil, err
	}
	switch cfg.Scenario {
	case "typical", "noisy", "outliers":
	default:
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	samples := make([]Sample, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		f := formulas[i%len(formulas)]
		s := sample(rng, f, cfg.Distribution)

		// Typical eggs are redrawn until they pass the validator.
		for attempt := 0; attempt < 100 && !hatch.Validate(measurementOf(s)).Valid; attempt++ {
			s = sample(rng, f, cfg.Distribution)
		}

		switch cfg.Scenario {
		case "noisy":
			// Scale drift and evaporation between field and lab.
			s.Record.Mass = round(s.Record.Mass+rng.NormFloat64()*1.5, 2)
			s.Record.Length = round(s.Record.Length+rng.NormFloat64()*0.4, 2)
		case "outliers":
			if rng.Float64() < 0.1 {
				corrupt(rng, &s.Record)
				s.TrueDBH = math.NaN()
			}
		}

		s.Record.ID = fmt.Sprintf("MOCK-%s-%d", f.Species, i+1)
		samples = append(samples, s)
	}
	return samples, nil
}

// Records strips the ground truth.
func Records(samples []Sample) []measurement.Record {
	out := make([]measurement.Record, len(samples))
	for i, s := range samples {
		out[i] = s.Record
	}
	return out
}

func formulasFor(tag string) ([]hatch.Formula, error) {
	if tag == "" || tag == "all" {
		return hatch.Formulas(), nil
	}
	f, err := hatch.Lookup(hatch.Species(tag))
	if err != nil {
		return nil, fmt.Errorf("unknown species %q: %w", tag, err)
	}
	return []hatch.Formula{f}, nil
}

func sample(rng *rand.Rand, f hatch.Formula, distribution string) Sample {
	var dbh float64
	if distribution == "weibull" {
		// Skewed towards hatching, as nests are usually found late.
		dbh = math.Min(weibullSample(rng, 1.5, f.DBHRange.Max/2.5), f.DBHRange.Max)
	} else {
		dbh = f.DBHRange.Min + rng.Float64()*(f.DBHRange.Max-f.DBHRange.Min)
	}
	dbh = round(dbh, 2)

	length := round(66+rng.Float64()*14, 2)
	breadth := round(46+rng.Float64()*8, 2)
	volume := hatch.DefaultShapeConstant * length * breadth * breadth / 1000
	mass := round(f.Density(dbh)*volume, 2)

	kv := hatch.DefaultShapeConstant
	return Sample{
		Record: measurement.Record{
			Length:        length,
			Breadth:       breadth,
			Mass:          mass,
			ShapeConstant: &kv,
			Species:       string(f.Species),
		},
		TrueDBH: dbh,
	}
}

// corrupt injects one of the data-entry errors seen in field sheets.
func corrupt(rng *rand.Rand, r *measurement.Record) {
	switch rng.Intn(3) {
	case 0:
		r.Mass *= 2.5 // wrong unit or double entry
	case 1:
		r.Breadth, r.Length = r.Length, r.Breadth
	default:
		r.Species = "unknown"
	}
}

func measurementOf(s Sample) hatch.Measurement {
	return s.Record.Measurement(hatch.DefaultShapeConstant)
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
