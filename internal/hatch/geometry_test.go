package hatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEggVolume(t *testing.T) {
	v, err := EggVolume(72.3, 50.2, DefaultShapeConstant)
	require.NoError(t, err)
	assert.InDelta(t, 92.37, v, 0.005)

	v, err = EggVolume(10, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEggVolume_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		l, b, kv float64
	}{
		{"ZeroLength", 0, 50, 0.5},
		{"NegativeBreadth", 70, -1, 0.5},
		{"ZeroShape", 70, 50, 0},
		{"NaNLength", math.NaN(), 50, 0.5},
		{"InfBreadth", 70, math.Inf(1), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EggVolume(tt.l, tt.b, tt.kv)
			assert.Equal(t, InvalidMeasurement, KindOf(err))
		})
	}
}

func TestEggDensity(t *testing.T) {
	d, err := EggDensity(91.89, 92.3748)
	require.NoError(t, err)
	assert.InDelta(t, 0.9948, d, 1e-4)

	_, err = EggDensity(0, 90)
	assert.Equal(t, InvalidMeasurement, KindOf(err))
	_, err = EggDensity(90, 0)
	assert.Equal(t, InvalidMeasurement, KindOf(err))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 5.28, round(5.27934, 2))
	assert.Equal(t, 0.9948, round(0.994752, 4))
	assert.Equal(t, 0.948, round(0.94760, 3))
}
