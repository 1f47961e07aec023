// SPDX-License-Identifier: MIT

// Package dual implements forward-mode automatic differentiation with
// dual numbers.
//
// 🚀 What is a dual number?
//
//	A Number carries a primal value together with a vector of partial
//	derivatives ("partials") with respect to some set of differentiation
//	variables. Each direction k is one gonum dual number (Value + Partials[k]·ϵ,
//	see Lane), and every operation applies the matching
//	gonum.org/v1/gonum/num/dual function lane by lane. Evaluating ordinary
//	code on Numbers yields the value and all directional derivatives at once.
//
// ✨ Key features:
//   - untagged Numbers (no partials) behave like plain float64 values
//   - mixed widths are padded with zeros, so constants never need seeding
//   - D and Gradient evaluate derivatives of scalar functions; Gradient
//     makes one width-1 pass per coordinate
//   - Lane / FromLane convert to and from gonum's num/dual.Number
//   - IsTagged / Primal / New form the minimal engine contract used by
//     the itp differentiation adapter
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/dual"
//
//	// d/dp (p² + 3p) at p = 2
//	d := dual.D(func(p dual.Number) dual.Number {
//	  return dual.Add(dual.Mul(p, p), dual.Scale(p, 3))
//	}, 2) // 7
//
// Performance:
//
//   - Time:   O(k) per operation, k = number of partials
//   - Memory: one []float64 of length k per intermediate value
package dual
