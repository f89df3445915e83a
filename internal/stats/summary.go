// Package stats aggregates prediction outcomes for run reports.
package stats

import (
	"slices"

	"hatch-dbh/internal/hatch"
)

// SpeciesSummary describes the successful predictions for one species.
type SpeciesSummary struct {
	Species          hatch.Species `json:"species"`
	Count            int           `json:"count"`
	MedianDBH        float64       `json:"median_dbh"`
	MinDBH           float64       `json:"min_dbh"`
	MaxDBH           float64       `json:"max_dbh"`
	MedianConfidence float64       `json:"median_confidence"`
	MeanConfidence   float64       `json:"mean_confidence"`
}

// Summary aggregates an assessment.
type Summary struct {
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Failures  map[hatch.Kind]int `json:"failures,omitempty"`
	Species   []SpeciesSummary   `json:"species,omitempty"`
}

// Summarize groups outcomes by failure kind and by species. Species appear
// in lexical order.
func Summarize(outcomes []hatch.Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	dbh := map[hatch.Species][]float64{}
	conf := map[hatch.Species][]float64{}

	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			if s.Failures == nil {
				s.Failures = make(map[hatch.Kind]int)
			}
			kind := hatch.KindOf(o.Err)
			if kind == "" {
				kind = "other"
			}
			s.Failures[kind]++
			continue
		}
		s.Succeeded++
		sp := o.Prediction.Species
		dbh[sp] = append(dbh[sp], o.Prediction.DBH)
		conf[sp] = append(conf[sp], o.Prediction.Confidence)
	}

	species := make([]hatch.Species, 0, len(dbh))
	for sp := range dbh {
		species = append(species, sp)
	}
	slices.Sort(species)

	for _, sp := range species {
		s.Species = append(s.Species, SpeciesSummary{
			Species:          sp,
			Count:            len(dbh[sp]),
			MedianDBH:        Median(dbh[sp]),
			MinDBH:           slices.Min(dbh[sp]),
			MaxDBH:           slices.Max(dbh[sp]),
			MedianConfidence: Median(conf[sp]),
			MeanConfidence:   Mean(conf[sp]),
		})
	}
	return s
}
