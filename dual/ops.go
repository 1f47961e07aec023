package dual

import (
	"math"

	gd "gonum.org/v1/gonum/num/dual"
)

// Lane returns direction k of x as a gonum dual number: the primal value
// with the k-th partial as its ϵ coefficient. Missing partials read as 0.
func (x Number) Lane(k int) gd.Number { return gd.Number{Real: x.Value, Emag: x.Partial(k)} }

// unary applies op to every direction of x. An untagged x is evaluated
// once on a zero-ϵ lane and stays untagged.
func unary(x Number, op func(gd.Number) gd.Number) Number {
	if len(x.Partials) == 0 {
		return Number{Value: op(gd.Number{Real: x.Value}).Real}
	}
	out := make([]float64, len(x.Partials))
	var v float64
	for k := range out {
		r := op(x.Lane(k))
		v, out[k] = r.Real, r.Emag
	}

	return Number{Value: v, Partials: out}
}

// binary applies op direction by direction, padding the narrower operand
// with zero partials. Untagged operands give an untagged result.
func binary(a, b Number, op func(x, y gd.Number) gd.Number) Number {
	w := Width(a, b)
	if w == 0 {
		return Number{Value: op(gd.Number{Real: a.Value}, gd.Number{Real: b.Value}).Real}
	}
	out := make([]float64, w)
	var v float64
	for k := range out {
		r := op(a.Lane(k), b.Lane(k))
		v, out[k] = r.Real, r.Emag
	}

	return Number{Value: v, Partials: out}
}

// Add returns a + b.
func Add(a, b Number) Number { return binary(a, b, gd.Add) }

// Sub returns a − b.
func Sub(a, b Number) Number { return binary(a, b, gd.Sub) }

// Mul returns a·b.
func Mul(a, b Number) Number { return binary(a, b, gd.Mul) }

// Div returns a / b. Division by an untagged or tagged zero follows IEEE-754.
// The value is a.Value/b.Value exactly; partials come from a·b⁻¹.
func Div(a, b Number) Number {
	q := binary(a, b, func(x, y gd.Number) gd.Number { return gd.Mul(x, gd.Inv(y)) })
	q.Value = a.Value / b.Value

	return q
}

// Neg returns −x.
func Neg(x Number) Number { return Scale(x, -1) }

// Scale returns c·x for a constant c.
func Scale(x Number, c float64) Number {
	return unary(x, func(d gd.Number) gd.Number { return gd.Scale(c, d) })
}

// AddConst returns x + c for a constant c.
func AddConst(x Number, c float64) Number {
	return unary(x, func(d gd.Number) gd.Number { return gd.Add(d, gd.Number{Real: c}) })
}

// Pow returns x^e for a constant exponent e.
// The e == 2 case is computed as x·x and e == 0 as the constant 1.
func Pow(x Number, e float64) Number {
	switch e {
	case 2:
		return Mul(x, x)
	case 0:
		return unary(x, func(gd.Number) gd.Number { return gd.Number{Real: 1} })
	}

	return unary(x, func(d gd.Number) gd.Number { return gd.PowReal(d, e) })
}

// Sqrt returns √x.
func Sqrt(x Number) Number { return unary(x, gd.Sqrt) }

// Exp returns eˣ.
func Exp(x Number) Number { return unary(x, gd.Exp) }

// Log returns ln x.
func Log(x Number) Number { return unary(x, gd.Log) }

// Sin returns sin x.
func Sin(x Number) Number { return unary(x, gd.Sin) }

// Cos returns cos x.
func Cos(x Number) Number { return unary(x, gd.Cos) }

// Tan returns tan x.
func Tan(x Number) Number { return unary(x, gd.Tan) }

// Abs returns |x|. The derivative at 0 is taken as 0.
func Abs(x Number) Number {
	return unary(x, func(d gd.Number) gd.Number {
		switch {
		case d.Real > 0:
			return d
		case d.Real < 0:
			return gd.Scale(-1, d)
		default:
			return gd.Number{Real: math.Abs(d.Real)}
		}
	})
}
