package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, -1.0, Clamp(-2, -1, 1))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.001))
	assert.Equal(t, 1.0, Clamp01(1.001))
	assert.Equal(t, 0.42, Clamp01(0.42))
}

func TestRescale(t *testing.T) {
	assert.Equal(t, 0.5, Rescale(3, 1, 5, 0, 1))
	assert.Equal(t, -1.0, Rescale(1, 1, 5, -1, 1))
	assert.Equal(t, 1.0, Rescale(5, 1, 5, -1, 1))

	// Out-of-range input clamps to the output range
	assert.Equal(t, 1.0, Rescale(9, 1, 5, 0, 1))
	assert.Equal(t, 0.0, Rescale(-9, 1, 5, 0, 1))

	// Degenerate input range collapses to the output minimum
	assert.Equal(t, 0.0, Rescale(3, 2, 2, 0, 1))
}

func TestBipolar(t *testing.T) {
	assert.Equal(t, 0.0, Bipolar(0.5, 0.5))
	assert.Equal(t, 1.0, Bipolar(0, 1))
	assert.Equal(t, -1.0, Bipolar(1, 0))
	assert.InDelta(t, 0.3, Bipolar(0.2, 0.5), 1e-9)
}
