package itp

import "math"

// eps is the machine epsilon of float64 (2⁻⁵²).
const eps = 0x1p-52

// bracketState is the per-call iteration state. It is created from the
// Problem's interval after both endpoint evaluations, mutated in place by
// replacing exactly one endpoint per iteration, and dropped on return.
//
// Invariants while the loop runs:
//   - fLeft == f(left) and fRight == f(right) (no staleness);
//   - sign(fLeft) == -sign(fRight), both nonzero;
//   - |right-left| strictly decreases every iteration.
type bracketState struct {
	left, right   float64
	fLeft, fRight float64

	// dir is +1 when the caller's interval is increasing (Left < Right)
	// and −1 otherwise. Float stepping toward/away from an endpoint follows it.
	dir float64

	mid       float64 // (left+right)/2
	xInterp   float64 // secant (regula falsi) candidate
	radius    float64 // projection radius around mid
	delta     float64 // truncation size κ₁·span^κ₂
	sign      float64 // sign(mid − xInterp)
	epsScaled float64 // projection budget, halved every iteration
	iter      int
}

// newBracketState seeds the loop state.
//
//	nHalf     = ⌈log₂(|right−left| / 2ε)⌉
//	epsScaled = ε · 2^(nHalf+n0)
//
// Spans above MaxFloat64·2ε overflow the quotient; those fall back to
// log₂(span) − log₂(2ε).
func newBracketState(left, right, fLeft, fRight float64, n0 int) bracketState {
	span := math.Abs(right - left)
	q := span / (2 * eps)
	var nHalf int
	if math.IsInf(q, 0) {
		nHalf = int(math.Ceil(math.Log2(span) - math.Log2(2*eps)))
	} else {
		nHalf = int(math.Ceil(math.Log2(q)))
	}

	dir := 1.0
	if right < left {
		dir = -1
	}

	return bracketState{
		left:      left,
		right:     right,
		fLeft:     fLeft,
		fRight:    fRight,
		dir:       dir,
		mid:       (left + right) / 2,
		epsScaled: math.Ldexp(eps, nHalf+n0),
	}
}

// trial computes the next evaluation point by interpolate → truncate →
// project → clamp. It updates the derived scalars on s.
//
// Products feeding a sum are wrapped in float64() so the compiler cannot
// fuse them into FMA; trial points are then identical on every GOARCH.
func (s *bracketState) trial(cfg Config) float64 {
	span := math.Abs(s.right - s.left)

	// Interpolate: secant through (left, fLeft) and (right, fRight).
	// The slope ratio is rounded first: fLeft/(fLeft−fRight) lies in (0, 1).
	s.xInterp = s.left + float64((s.right-s.left)*(s.fLeft/(s.fLeft-s.fRight)))

	// Truncate: perturb toward mid by δ unless that overshoots mid.
	s.radius = s.epsScaled - span/2
	s.delta = cfg.truncation(span)
	s.sign = signum(s.mid - s.xInterp)
	xt := s.mid
	if s.delta <= math.Abs(s.mid-s.xInterp) {
		xt = s.xInterp + float64(s.sign*s.delta)
	}

	// Project onto the ball of radius r around mid.
	xp := xt
	if math.Abs(xt-s.mid) > s.radius {
		xp = s.mid - float64(s.sign*s.radius)
	}

	// Clamp into the open interval.
	lo, hi := math.Min(s.left, s.right), math.Max(s.left, s.right)
	if xp >= hi {
		xp = math.Nextafter(hi, math.Inf(-1))
	}
	if xp <= lo {
		xp = math.Nextafter(lo, math.Inf(1))
	}

	return xp
}

// next returns the float adjacent to x in the direction of the caller's interval.
func (s *bracketState) next(x float64) float64 { return math.Nextafter(x, s.dir*math.Inf(1)) }

// prev returns the float adjacent to x against the direction of the caller's interval.
func (s *bracketState) prev(x float64) float64 { return math.Nextafter(x, -s.dir*math.Inf(1)) }

// exhausted reports whether left and right are adjacent floats.
func (s *bracketState) exhausted() bool { return s.next(s.left) == s.right }

func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
