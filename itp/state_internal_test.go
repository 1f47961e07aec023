package itp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTruncation_K2FastPath confirms the κ₂ = 2 shortcut matches math.Pow bit for bit.
func TestTruncation_K2FastPath(t *testing.T) {
	cfg := DefaultConfig()
	for _, span := range []float64{1, 0.3, 1e-9, 7.25, 123456.789, 0x1p-40} {
		assert.Equal(t, cfg.scaledK1*math.Pow(span, 2), cfg.truncation(span), "span=%g", span)
	}
}

// TestNewBracketState_Seed checks the initial projection budget.
func TestNewBracketState_Seed(t *testing.T) {
	s := newBracketState(0, 1, -1, 1, 0)
	assert.Equal(t, 0.5, s.epsScaled, "ε·2^51 for the unit interval")
	assert.Equal(t, 0.5, s.mid)
	assert.Equal(t, 1.0, s.dir)

	s = newBracketState(1, 0, 1, -1, 3)
	assert.Equal(t, 4.0, s.epsScaled, "n0 doubles the budget n0 times")
	assert.Equal(t, -1.0, s.dir)
	assert.Equal(t, math.Nextafter(1, 2), s.prev(1), "prev steps toward the caller's Left")
}

// TestTrial_Clamp checks the clamp keeps trial points in the open interval.
// Same-signed endpoint values push the secant point outside the bracket.
func TestTrial_Clamp(t *testing.T) {
	s := newBracketState(0, 1, 1, 2, 0)
	s.epsScaled = math.Inf(1) // disable projection
	assert.Equal(t, math.SmallestNonzeroFloat64, s.trial(DefaultConfig()))

	s = newBracketState(0, 1, -2, -1, 0)
	s.epsScaled = math.Inf(1)
	assert.Equal(t, math.Nextafter(1, 0), s.trial(DefaultConfig()))
}

// TestNewBracketState_WideSpan checks the seed when span/2ε overflows.
func TestNewBracketState_WideSpan(t *testing.T) {
	s := newBracketState(-1e300, 1e300, -1, 1, 0)
	assert.Equal(t, 0x1p997, s.epsScaled, "smallest power of two with ε·2^nHalf ≥ span/2")
	assert.GreaterOrEqual(t, s.epsScaled, 1e300)
}
