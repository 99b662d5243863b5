package heatmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinear(t *testing.T) {
	t.Run("recovers an exact linear relationship", func(t *testing.T) {
		temps := []float64{-5, 0, 5, 10}
		powers := []float64{3.0, 2.0, 1.0, 0.0}

		fit, err := FitLinear(temps, powers)
		require.NoError(t, err)

		assert.InDelta(t, -0.2, fit.Gain, 1e-12)
		assert.InDelta(t, 2.0, fit.Offset, 1e-12)
		assert.Equal(t, 1.0, fit.Correlation)

		limit, err := fit.BalancePoint()
		require.NoError(t, err)
		assert.InDelta(t, 10.0, limit, 1e-9)
	})

	t.Run("two points suffice", func(t *testing.T) {
		fit, err := FitLinear([]float64{0, 10}, []float64{2, 1})
		require.NoError(t, err)
		assert.InDelta(t, -0.1, fit.Gain, 1e-12)
		assert.InDelta(t, 2.0, fit.Offset, 1e-12)
	})

	t.Run("fewer than two samples", func(t *testing.T) {
		_, err := FitLinear([]float64{1}, []float64{2})
		assert.ErrorIs(t, err, ErrInsufficientData)

		_, err = FitLinear(nil, nil)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := FitLinear([]float64{1, 2}, []float64{1})
		assert.Error(t, err)
	})

	t.Run("identical temperatures are ill posed", func(t *testing.T) {
		_, err := FitLinear([]float64{5, 5, 5}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("flat powers have no balance point", func(t *testing.T) {
		fit, err := FitLinear([]float64{-5, 0, 5}, []float64{2, 2, 2})
		require.NoError(t, err)
		assert.Equal(t, 0.0, fit.Gain)
		assert.Equal(t, 0.0, fit.Correlation)

		_, err = fit.BalancePoint()
		assert.ErrorIs(t, err, ErrUndefinedBalancePoint)
	})
}

func TestFitResult_PowerAt(t *testing.T) {
	fit := FitResult{Gain: -0.2, Offset: 2.0}

	assert.InDelta(t, 5.0, fit.PowerAt(-15), 1e-12)
	assert.InDelta(t, 2.0, fit.PowerAt(0), 1e-12)
	assert.InDelta(t, 0.0, fit.PowerAt(10), 1e-12)
}
