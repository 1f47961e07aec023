package dual

// Number is a dual value: a primal Value plus the partial derivatives of
// that value with respect to len(Partials) differentiation variables.
//
// A Number with no partials is "untagged" and is arithmetically identical
// to a constant. The zero value is the untagged constant 0.
type Number struct {
	Value    float64
	Partials []float64
}

// New returns a Number with the given primal value and partials.
// The partials slice is copied.
func New(primal float64, partials ...float64) Number {
	if len(partials) == 0 {
		return Number{Value: primal}
	}

	return Number{Value: primal, Partials: append([]float64(nil), partials...)}
}

// Const returns an untagged Number.
func Const(v float64) Number { return Number{Value: v} }

// Variable returns a Number seeded as the i-th of n differentiation
// variables: Partials[i] = 1, all others 0.
// Panics if i is outside [0, n).
func Variable(v float64, i, n int) Number {
	if i < 0 || i >= n {
		panic("dual: Variable: seed index out of range")
	}
	p := make([]float64, n)
	p[i] = 1

	return Number{Value: v, Partials: p}
}

// IsTagged reports whether x carries any derivative information.
// A Number whose partials are all zero still counts as tagged: the width
// is part of the caller's differentiation context.
func IsTagged(x Number) bool { return len(x.Partials) > 0 }

// AnyTagged reports whether at least one of xs is tagged.
func AnyTagged(xs ...Number) bool {
	for i := range xs {
		if IsTagged(xs[i]) {
			return true
		}
	}

	return false
}

// Primal strips the tag and returns the primal value.
func Primal(x Number) float64 { return x.Value }

// PrimalSlice returns the primal values of xs. A nil input yields nil.
func PrimalSlice(xs []Number) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = xs[i].Value
	}

	return out
}

// Consts lifts a float64 slice to untagged Numbers.
func Consts(vs []float64) []Number {
	if vs == nil {
		return nil
	}
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Number{Value: v}
	}

	return out
}

// Width returns the widest partials length among xs.
func Width(xs ...Number) int {
	w := 0
	for i := range xs {
		if len(xs[i].Partials) > w {
			w = len(xs[i].Partials)
		}
	}

	return w
}

// Partial returns the k-th partial of x, or 0 when x is narrower than k+1.
func (x Number) Partial(k int) float64 {
	if k < 0 || k >= len(x.Partials) {
		return 0
	}

	return x.Partials[k]
}
