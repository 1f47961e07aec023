package dual

import gd "gonum.org/v1/gonum/num/dual"

// D returns dg/dx evaluated at x = at.
//
// Implementation:
//   - Stage 1: seed x as the single gonum lane at + 1ϵ.
//   - Stage 2: evaluate g once; the ϵ coefficient of the result is the derivative.
//
// Contracts:
//   - g must propagate its argument through dual arithmetic; a g that
//     returns an untagged Number yields 0.
//
// Complexity: one evaluation of g with width 1.
func D(g func(Number) Number, at float64) float64 {
	return g(FromLane(gd.Number{Real: at, Emag: 1})).Lane(0).Emag
}

// Gradient returns ∇g evaluated at the point at.
//
// Implementation:
//   - n = len(at) seeded passes; pass i seeds at[i] as a width-1 variable
//     and leaves every other coordinate untagged.
//   - The ϵ coefficient of pass i is ∂g/∂xᵢ.
//
// A nil or empty point yields a nil gradient without calling g.
//
// Complexity: n evaluations of g, O(1) per operation inside g.
func Gradient(g func([]Number) Number, at []float64) []float64 {
	n := len(at)
	if n == 0 {
		return nil
	}
	xs := Consts(at)
	grad := make([]float64, n)
	for i, v := range at {
		xs[i] = FromLane(gd.Number{Real: v, Emag: 1})
		grad[i] = g(xs).Lane(0).Emag
		xs[i] = Const(v)
	}

	return grad
}

// FromLane lifts a gonum dual number to a width-1 Number.
func FromLane(d gd.Number) Number {
	return Number{Value: d.Real, Partials: []float64{d.Emag}}
}
