package itp

import (
	"fmt"
	"math"
)

// Solve finds a root of prob.F(·, prob.P) inside [prob.Left, prob.Right]
// with the ITP (Interpolate–Truncate–Project) method.
//
// Description:
//
//	ITP keeps a sign-changing bracket like bisection, but evaluates at a
//	secant candidate nudged toward the midpoint (truncation) and kept
//	within a shrinking ball around the midpoint (projection). The ball
//	shrinks by half every iteration, so the worst case never exceeds
//	bisection by more than n0 steps while smooth problems converge
//	superlinearly.
//
// Algorithm Outline:
//  1. Evaluate f at both endpoints. Exact zero at Left ⇒ ExactSolutionLeft,
//     at Right ⇒ ExactSolutionRight, with zero iterations.
//  2. nHalf = ⌈log₂(span/2ε)⌉, ε_s = ε·2^(nHalf+n0), mid = (l+r)/2.
//  3. Repeat up to MaxIters times:
//     xf = l + (r−l)·f(l)/(f(l)−f(r))                       (interpolate)
//     δ = κ₁·span^κ₂, σ = sign(mid−xf)
//     xt = δ ≤ |mid−xf| ? xf+σδ : mid                        (truncate)
//     ρ = ε_s − span/2
//     xp = |xt−mid| ≤ ρ ? xt : mid−σρ                         (project)
//     clamp xp strictly inside (min(l,r), max(l,r))
//     y = f(xp); y·sign(f(r)) > 0 ⇒ r = xp; < 0 ⇒ l = xp;
//     y == 0 ⇒ bracket (prev(xp), xp), report prev(xp), Success.
//     mid = (l+r)/2, ε_s /= 2
//     l and r adjacent floats ⇒ FloatingPointLimit, report l.
//  4. Cap reached ⇒ MaxIters, report l.
//
// Orientation:
//
//	The caller's order of Left and Right is kept throughout; only the
//	clamp uses min/max. "prev"/"adjacent" step along the caller's direction.
//
// Complexity:
//
//	Time   = O(min(MaxIters, nHalf+n0)) evaluations of F
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc, ErrNaNInf, ErrDegenerateInterval, ErrNegativeMaxIters —
//     malformed Problem.
//   - ErrNaNInf — F returned NaN/±Inf at an endpoint, or NaN at a trial point.
//   - ErrNoSignChange — f(Left), f(Right) nonzero with equal signs.
//
// Convergence outcomes are never errors: see Status.
func Solve(prob Problem, cfg Config) (Solution, error) {
	maxIters, err := validateProblem(prob)
	if err != nil {
		return Solution{}, err
	}

	f, p := prob.F, prob.P
	left, right := prob.Left, prob.Right
	fLeft, fRight := f(left, p), f(right, p)
	if err = validateEndpoints(fLeft, fRight); err != nil {
		return Solution{}, err
	}

	// Exact endpoints terminate before any iteration; Left wins a tie.
	if fLeft == 0 {
		return Solution{X: left, Residual: fLeft, Left: left, Right: right, Status: ExactSolutionLeft}, nil
	}
	if fRight == 0 {
		return Solution{X: right, Residual: fRight, Left: left, Right: right, Status: ExactSolutionRight}, nil
	}

	s := newBracketState(left, right, fLeft, fRight, cfg.n0)
	refSign := signum(fRight)

	for s.iter < maxIters {
		xp := s.trial(cfg)
		yp := f(xp, p)
		if math.IsNaN(yp) {
			return Solution{}, fmt.Errorf("iteration %d at x=%g: %w", s.iter+1, xp, ErrNaNInf)
		}

		switch yps := yp * refSign; {
		case yps > 0:
			s.right, s.fRight = xp, yp
		case yps < 0:
			s.left, s.fLeft = xp, yp
		default:
			// Exact zero: report the neighbour on the caller's left side so
			// the reported root sits inside the reported bracket.
			s.iter++
			s.left, s.right = s.prev(xp), xp
			notify(prob.OnStep, &s, xp, yp)
			x := s.left

			return Solution{X: x, Residual: f(x, p), Left: s.left, Right: s.right, Status: Success, Iters: s.iter}, nil
		}

		s.iter++
		notify(prob.OnStep, &s, xp, yp)
		s.mid = (s.left + s.right) / 2
		s.epsScaled /= 2

		if s.exhausted() {
			return Solution{X: s.left, Residual: s.fLeft, Left: s.left, Right: s.right, Status: FloatingPointLimit, Iters: s.iter}, nil
		}
	}

	return Solution{X: s.left, Residual: s.fLeft, Left: s.left, Right: s.right, Status: MaxIters, Iters: s.iter}, nil
}

// notify forwards a Step to the observer, if any.
func notify(hook func(Step), s *bracketState, x, y float64) {
	if hook == nil {
		return
	}
	hook(Step{Iter: s.iter, Trial: x, FTrial: y, Left: s.left, Right: s.right})
}
