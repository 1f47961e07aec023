// SPDX-License-Identifier: MIT

// Package itp: algorithm configuration (scaled_k1, k2, n0).
//
// Design goals:
//   - Immutable after construction: Config fields are unexported and read
//     through accessors, so one Config may be shared by any number of
//     concurrent solves.
//   - Validation at construction only: NewConfig returns a configuration
//     error; Solve never re-checks and never fails on a Config it was given.
//   - Defaults are the single source of truth for the zero-option call.
package itp

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultScaledK1 is the truncation scale κ₁ (applied to span^k2).
	DefaultScaledK1 = 0.2

	// DefaultK2 is the truncation exponent κ₂. The value 2 enables the
	// span·span fast path.
	DefaultK2 = 2.0

	// DefaultN0 is the slack added to the bisection step count when
	// sizing the initial projection radius.
	DefaultN0 = 0

	// DefaultMaxIters is used when Problem.MaxIters is 0.
	DefaultMaxIters = 1000

	// Phi is the golden ratio; k2 must not exceed 1+Phi.
	Phi = 1.618033988749895

	// MaxK2 is the inclusive upper bound for k2.
	MaxK2 = 1 + Phi
)

// ---------- Public option type (functional) ----------

// Option mutates a Config under construction.
type Option func(*Config)

// Config holds the ITP tuning constants. Obtain one from NewConfig or
// DefaultConfig; the zero value is not a valid configuration.
type Config struct {
	scaledK1 float64 // > 0
	k2       float64 // (1, 1+φ]
	n0       int     // >= 0
}

// WithScaledK1 sets κ₁.
func WithScaledK1(k1 float64) Option { return func(c *Config) { c.scaledK1 = k1 } }

// WithK2 sets κ₂.
func WithK2(k2 float64) Option { return func(c *Config) { c.k2 = k2 } }

// WithN0 sets the n0 slack.
func WithN0(n0 int) Option { return func(c *Config) { c.n0 = n0 } }

// NewConfig applies opts over the defaults and validates the result.
//
// Errors:
//   - ErrInvalidScaledK1 — κ₁ ≤ 0, NaN or ±Inf.
//   - ErrInvalidK2       — κ₂ ∉ (1, 1+φ] or NaN.
//   - ErrInvalidN0       — n0 < 0.
//
// All three match ErrInvalidConfig via errors.Is.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// DefaultConfig returns κ₁ = 0.2, κ₂ = 2, n0 = 0.
func DefaultConfig() Config {
	return Config{scaledK1: DefaultScaledK1, k2: DefaultK2, n0: DefaultN0}
}

// ScaledK1 returns κ₁.
func (c Config) ScaledK1() float64 { return c.scaledK1 }

// K2 returns κ₂.
func (c Config) K2() float64 { return c.k2 }

// N0 returns the n0 slack.
func (c Config) N0() int { return c.n0 }

func (c Config) validate() error {
	if math.IsNaN(c.scaledK1) || math.IsInf(c.scaledK1, 0) || c.scaledK1 <= 0 {
		return ErrInvalidScaledK1
	}
	// NaN fails both comparisons and is rejected by the negated form.
	if !(c.k2 > 1 && c.k2 <= MaxK2) {
		return ErrInvalidK2
	}
	if c.n0 < 0 {
		return ErrInvalidN0
	}

	return nil
}

// truncation returns δ = κ₁·span^κ₂. κ₂ == 2 is computed as span·span·κ₁;
// math.Pow(span, 2) also reduces to span·span, so the result is identical.
func (c Config) truncation(span float64) float64 {
	if c.k2 == 2 {
		return span * span * c.scaledK1
	}

	return c.scaledK1 * math.Pow(span, c.k2)
}
