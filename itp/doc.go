// SPDX-License-Identifier: MIT

// Package itp finds a root of a scalar equation f(x, p) = 0 inside a
// sign-changing bracket with the ITP (Interpolate–Truncate–Project) method,
// and differentiates the root with respect to p.
//
// 🚀 What is ITP?
//
//	ITP (Oliveira & Takahashi, 2020) is a bracketing method that matches
//	the secant method on smooth problems yet never needs more than
//	n0 iterations beyond bisection in the worst case. Each step takes the
//	regula-falsi point, truncates it toward the midpoint and projects it
//	onto a ball around the midpoint whose radius halves every iteration.
//
// ✨ Key features:
//   - bisection-grade worst case, superlinear typical convergence
//   - termination reported as a Status, never as an error
//   - immutable Config, safe to share across goroutines
//   - SolveDual / SolveAny: dx*/dp through the implicit function theorem,
//     one primal solve plus two derivative evaluations
//   - OnStep hook for tracing without logging inside the library
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/itp"
//
//	cfg, err := itp.NewConfig(itp.WithK2(2), itp.WithScaledK1(0.2))
//	if err != nil {
//	  // errors.Is(err, itp.ErrInvalidConfig)
//	}
//	sol, err := itp.Solve(itp.Problem{
//	  F:     func(x float64, p []float64) float64 { return x*x - p[0] },
//	  P:     []float64{2},
//	  Left:  0,
//	  Right: 2,
//	}, cfg)
//	// sol.X ≈ √2, sol.Status ∈ {Success, FloatingPointLimit, …}
//
// Statuses:
//
//	ExactSolutionLeft / ExactSolutionRight — f vanished at an endpoint
//	Success            — a trial point evaluated to exactly zero
//	FloatingPointLimit — bracket collapsed to adjacent floats
//	MaxIters           — iteration cap reached
//
// Concurrency:
//
//	Solve keeps all state on the stack of the call; there is no
//	cancellation inside the loop, MaxIters bounds the work.
package itp
