package main

import (
	"flag"
	"fmt"
	"os"

	"hatch-dbh/cmd/mockgen/engine"
	"hatch-dbh/internal/measurement"
)

func main() {
	scenario := flag.String("scenario", "typical", "Scenario to generate: typical, noisy, outliers")
	distribution := flag.String("distribution", "uniform", "DBH distribution: uniform, weibull")
	species := flag.String("species", "all", "Species tag, or all")
	out := flag.String("out", "mock_measurements.csv", "Output file (.csv, .json, .yaml)")
	count := flag.Int("count", 200, "Number of eggs to generate")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario:     *scenario,
		Distribution: *distribution,
		Species:      *species,
		Count:        *count,
		Seed:         *seed,
	}

	fmt.Printf("Generating scenario '%s' (Distribution: %s, Species: %s, Count: %d) to %s...\n",
		cfg.Scenario, cfg.Distribution, cfg.Species, cfg.Count, *out)

	samples, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate mock data: %v\n", err)
		os.Exit(1)
	}
	if err := measurement.Save(*out, engine.Records(samples)); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
