// SPDX-License-Identifier: MIT

// Package rootfind is a bracketing root finder for scalar equations
// f(x, p) = 0, built on the ITP (Interpolate–Truncate–Project) method, with
// exact sensitivities of the root through the implicit function theorem.
//
// 🚀 What is rootfind?
//
//	A small, allocation-light library and CLI that brings together:
//		• ITP solver: bisection-grade worst case, superlinear typical speed
//		• Dual numbers: forward-mode derivatives with any number of partials
//		• Implicit differentiation: dx*/dp from one solve, never through the loop
//		• Expressions: equations written as text, compiled once
//		• Sweeps: the same equation over many parameters, concurrently
//
// ✨ Why choose rootfind?
//
//   - Guaranteed – never more than ⌈log₂(span/2ε)⌉ + n0 iterations
//   - Stateless – a Config is immutable and safe to share between goroutines
//   - Observable – OnStep hooks expose every trial point without logging
//   - Differentiable – parameter partials flow into the root, not the iterations
//
// Packages:
//
//	itp/    — Solve, SolveDual, SolveAny, Config and the Status vocabulary
//	dual/   — Number (value + partials), arithmetic and elementary functions
//	expr/   — text equations in x and p, p0, p1, … compiled to itp.Func
//	sweep/  — concurrent solves over a parameter grid, results in input order
//	cmd/itp — the `itp` command: solve, sweep and config subcommands
//
// Quick ASCII example:
//
//	f(x)  ┤        ╱
//	      ┤      ╱
//	  0 ──┼────●──────── x*
//	      ┤  ╱
//	      ┤╱
//	      a            b
//
//	a sign change on [a, b] is all ITP needs to pin x* down to one ulp.
//
//	go get github.com/katalvlaran/rootfind/itp
package rootfind
