package hatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	f, err := Lookup(CommonEider)
	require.NoError(t, err)
	mid := f.DensityRange.Midpoint()

	tests := []struct {
		name         string
		density, dbh float64
		want         float64
	}{
		{"Midpoint", mid, 10, 1.0},
		{"RangeEdge", f.DensityRange.Max, 10, 0.9},
		{"DensityOutside", 1.2, 10, 0.6},
		{"DBHOutside", mid, 29, 0.7},
		{"BothOutside", 1.2, 29, 0.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.density, tt.dbh, f), 1e-9)
		})
	}
}

func TestScore_LongIncubationPenalty(t *testing.T) {
	f := Formula{
		DensityRange: Range{Min: 1.0, Max: 1.2},
		DBHRange:     Range{Min: 0, Max: 40},
	}
	assert.InDelta(t, 0.8, Score(1.1, 31, f), 1e-9)
	assert.InDelta(t, 1.0, Score(1.1, 30, f), 1e-9)
}

func TestScore_DegenerateRanges(t *testing.T) {
	// Degenerate envelopes stay inside the bounds.
	f := Formula{DensityRange: Range{Min: 1, Max: 1}, DBHRange: Range{Min: 0, Max: 0}}
	got := Score(5, 50, f)
	assert.GreaterOrEqual(t, got, minConfidence)
	assert.LessOrEqual(t, got, maxConfidence)
}

func TestScore_Bounds(t *testing.T) {
	for _, f := range Formulas() {
		for d := 0.5; d <= 2.0; d += 0.01 {
			for dbh := 0.0; dbh <= 40; dbh += 1 {
				c := Score(d, dbh, f)
				if c < minConfidence || c > maxConfidence {
					t.Fatalf("%s: Score(%g, %g) = %g out of bounds", f.Species, d, dbh, c)
				}
			}
		}
	}
}

func TestConfidence_UnknownSpecies(t *testing.T) {
	_, err := Confidence(1.0, 10, "emu")
	assert.Equal(t, UnknownSpecies, KindOf(err))
}
