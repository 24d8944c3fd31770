package fftharness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxAbs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(0), MaxAbs(nil))
	assert.Equal(t, float32(0), MaxAbs([]float32{}))
	assert.Equal(t, float32(3), MaxAbs([]float32{1, -3, 2}))
	assert.Equal(t, float32(7), MaxAbs([]float32{-7}))
}

func TestToleranceBudget(t *testing.T) {
	t.Parallel()

	spectrum := []float32{0.5, -200, 40}
	// The budget is computed in float32, so compare at float32 precision.
	assert.InDelta(t, 0.2, float64(ToleranceBudget(spectrum)), 1e-7)
	assert.Equal(t, float32(1e-3)*float32(200), ToleranceBudget(spectrum))
	assert.Equal(t, float32(0), ToleranceBudget(nil))
}
