// SPDX-License-Identifier: MIT

// Package itp: sentinel error set.
// This file defines ONLY package-level sentinel errors. Solve outcomes are
// reported through Status, never through these errors: an error means the
// call was malformed (bad configuration or bad Problem), not that the
// iteration failed to converge.

package itp

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "itp: ". Config sentinels wrap
// ErrInvalidConfig so callers may match either the specific cause or the
// whole class with errors.Is.

var (
	// ErrInvalidConfig is the class of all configuration errors.
	ErrInvalidConfig = errors.New("itp: invalid algorithm config")

	// ErrInvalidScaledK1 indicates scaled_k1 ≤ 0 or non-finite.
	ErrInvalidScaledK1 = fmt.Errorf("%w: scaled_k1 must be finite and > 0", ErrInvalidConfig)

	// ErrInvalidK2 indicates k2 ∉ (1, 1+φ].
	ErrInvalidK2 = fmt.Errorf("%w: k2 must lie in (1, 1+phi]", ErrInvalidConfig)

	// ErrInvalidN0 indicates n0 < 0.
	ErrInvalidN0 = fmt.Errorf("%w: n0 must be >= 0", ErrInvalidConfig)
)

var (
	// ErrNilFunc is returned when Problem.F (or DualProblem.F) is nil.
	ErrNilFunc = errors.New("itp: nil function")

	// ErrDegenerateInterval is returned when Left == Right.
	ErrDegenerateInterval = errors.New("itp: degenerate interval (left == right)")

	// ErrNaNInf is returned when an endpoint, or f evaluated at an endpoint,
	// is NaN or ±Inf.
	ErrNaNInf = errors.New("itp: NaN or Inf encountered")

	// ErrNegativeMaxIters is returned when Problem.MaxIters < 0.
	ErrNegativeMaxIters = errors.New("itp: negative iteration cap")

	// ErrNoSignChange is returned when f(left) and f(right) are both nonzero
	// and share a sign, i.e. the interval is not a bracket.
	ErrNoSignChange = errors.New("itp: f(left) and f(right) must have opposite signs")

	// ErrZeroSlope is returned by the differentiation adapter when ∂f/∂x
	// vanishes at the root while the parameter carries nonzero partials,
	// so the implicit derivative is undefined.
	ErrZeroSlope = errors.New("itp: zero slope at root, implicit derivative undefined")
)
