// Package itp - input validation shared by Solve and SolveDual.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Only sentinel errors from errors.go.
//   - Runs once per call, before the loop; the loop itself never validates.
package itp

import "math"

// validateProblem checks the Problem fields that do not require evaluating F
// and returns the effective iteration cap.
//
// Error priority: nil func -> non-finite interval -> degenerate interval
// -> negative cap.
func validateProblem(prob Problem) (int, error) {
	// Stage 1: function presence.
	if prob.F == nil {
		return 0, ErrNilFunc
	}

	// Stage 2: interval endpoints and span must be finite.
	if !isFinite(prob.Left) || !isFinite(prob.Right) || !isFinite(prob.Right-prob.Left) {
		return 0, ErrNaNInf
	}

	// Stage 3: a bracket needs two distinct endpoints.
	if prob.Left == prob.Right {
		return 0, ErrDegenerateInterval
	}

	// Stage 4: iteration cap.
	switch {
	case prob.MaxIters < 0:
		return 0, ErrNegativeMaxIters
	case prob.MaxIters == 0:
		return DefaultMaxIters, nil
	default:
		return prob.MaxIters, nil
	}
}

// validateEndpoints checks f(left), f(right). Exact zeros are legal and are
// handled by the caller before the sign test matters.
func validateEndpoints(fLeft, fRight float64) error {
	if !isFinite(fLeft) || !isFinite(fRight) {
		return ErrNaNInf
	}
	if fLeft != 0 && fRight != 0 && math.Signbit(fLeft) == math.Signbit(fRight) {
		return ErrNoSignChange
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
