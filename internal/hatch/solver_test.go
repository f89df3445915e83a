package hatch

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveDBH_ErrorOrder(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		species Species
		want    Kind
	}{
		{"NegativeDensity", -1, CommonEider, InvalidMeasurement},
		{"ZeroDensity", 0, CommonEider, InvalidMeasurement},
		{"NaNDensity", math.NaN(), CommonEider, InvalidMeasurement},
		{"InfDensity", math.Inf(1), CommonEider, InvalidMeasurement},
		{"HighDensityBeatsUnknownSpecies", 2.5, "emu", ImplausibleMeasurement},
		{"HighDensity", 2.01, CommonEider, ImplausibleMeasurement},
		{"NegativeBeatsUnknownSpecies", -1, "emu", InvalidMeasurement},
		{"UnknownSpecies", 1.0, "emu", UnknownSpecies},
		// Common eider's parabola peaks at ~1.139 g/cm³.
		{"AboveVertex", 1.2, CommonEider, UnsolvableFormula},
		// King eider's parabola bottoms out at ~0.944 g/cm³.
		{"BelowVertex", 0.9, KingEider, UnsolvableFormula},
		// Real roots, but one is negative and the other beyond 35 days.
		{"RootsOutsideWindow", 0.95, CommonEider, NoValidRoot},
		{"BothRootsNegative", 0.95, KingEider, NoValidRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveDBH(tt.density, tt.species)
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err), err.Error())
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestSolveDBH_RoundTrip(t *testing.T) {
	for _, f := range Formulas() {
		for dbh := 0.0; dbh <= 35.0; dbh += 0.25 {
			t.Run(fmt.Sprintf("%s/%.2f", f.Species, dbh), func(t *testing.T) {
				got, err := SolveDBH(f.Density(dbh), f.Species)
				require.NoError(t, err)
				assert.InDelta(t, dbh, got, 1e-3)
			})
		}
	}
}

func TestSolveDBH_WindowEdges(t *testing.T) {
	for _, f := range Formulas() {
		for _, dbh := range []float64{0, 35} {
			t.Run(fmt.Sprintf("%s/%g", f.Species, dbh), func(t *testing.T) {
				got, err := SolveDBH(f.Density(dbh), f.Species)
				require.NoError(t, err)
				assert.InDelta(t, dbh, got, 1e-9)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 35.0)
				assert.False(t, math.Signbit(got), "negative zero")
			})
		}
	}
}

func TestSolveDBH_FineSweep(t *testing.T) {
	for _, f := range Formulas() {
		for i := 0; i <= 35000; i++ {
			dbh := float64(i) / 1000
			got, err := SolveDBH(f.Density(dbh), f.Species)
			require.NoError(t, err, "%s dbh=%.3f", f.Species, dbh)
			require.InDelta(t, dbh, got, 1e-6, "%s dbh=%.3f", f.Species, dbh)
		}
	}
}

func TestPredict_InterceptDensityIsPositiveZero(t *testing.T) {
	// Mass chosen so density equals the common eider intercept exactly.
	m := Measurement{Length: 70, Breadth: 50, ShapeConstant: 0.5, Species: CommonEider}
	m.Mass = 0.965 * 0.5 * 70 * 50 * 50 / 1000

	dbh, err := SolveDBH(0.965, CommonEider)
	require.NoError(t, err)
	assert.False(t, math.Signbit(dbh))

	p, err := Predict(m)
	require.NoError(t, err)
	assert.False(t, math.Signbit(p.DBH))
	assert.Equal(t, "0", fmt.Sprint(p.DBH))
}

func TestSolve_PicksSmallerRoot(t *testing.T) {
	// (x-10)(x-20) scaled: roots at 10 and 20, both inside the window.
	f := Formula{
		Species:      "test",
		Coefficients: Coefficients{A: 0.001, B: -0.03, C: 1.2},
	}
	density := 1.0

	got, err := Solve(density, f)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-9)

	// Flipping the sign of every coefficient keeps the roots; the policy
	// must not depend on which root the formula labels first.
	g := Formula{Species: "test", Coefficients: Coefficients{A: -0.001, B: 0.03, C: 0.8}}
	got, err = Solve(density, g)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-9)
}

func TestSolve_SingleRootInWindow(t *testing.T) {
	// Roots at 30 and 40; only 30 survives the window.
	f := Formula{Species: "test", Coefficients: Coefficients{A: 0.001, B: -0.07, C: 2.2}}
	got, err := Solve(1.0, f)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, got, 1e-9)
}

func TestSolve_WindowEdges(t *testing.T) {
	// Roots at 0 and 35 are both inclusive; the smaller wins.
	f := Formula{Species: "test", Coefficients: Coefficients{A: 0.001, B: -0.035, C: 1.0}}
	got, err := Solve(1.0, f)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSolve_LinearFormulaHasNoRoot(t *testing.T) {
	f := Formula{Species: "test", Coefficients: Coefficients{A: 0, B: 0.01, C: 0.9}}
	_, err := Solve(1.0, f)
	assert.Equal(t, NoValidRoot, KindOf(err))
}

func TestError_Messages(t *testing.T) {
	_, err := SolveDBH(2.5, CommonEider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unusually high density")
	assert.Contains(t, err.Error(), "2.5000")

	_, err = SolveDBH(1.2, CommonEider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.2000")
}
