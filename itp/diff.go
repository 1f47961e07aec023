// Package itp - differentiation through the solve (implicit function theorem).
//
// When the parameter p carries forward-mode partials, the root x*(p) is
// differentiated without replaying the iteration under dual arithmetic:
//
//	f(x*(p), p) = 0  ⇒  dx*/dp_i = −(∂f/∂p_i) / (∂f/∂x)
//
// and for each differentiation direction k carried by p,
//
//	∂x*/∂θ_k = Σ_i dx*/dp_i · ∂p_i/∂θ_k.
//
// Cost: one primal Solve, one ∂f/∂x evaluation and one ∂f/∂p evaluation
// (a derivative for scalar p, a gradient for vector p), independent of the
// number of iterations the primal solve took.
package itp

import "github.com/katalvlaran/rootfind/dual"

// DualFunc is f(x, p) written over dual numbers so the engine can
// differentiate it with respect to x and p.
type DualFunc func(x dual.Number, p []dual.Number) dual.Number

// DualProblem mirrors Problem with dual-valued parameter and interval.
// Interval tags carry no sensitivity (the root does not depend on the
// bracket) and only contribute to the partials width.
type DualProblem struct {
	F        DualFunc
	P        []dual.Number
	Left     dual.Number
	Right    dual.Number
	MaxIters int
	OnStep   func(Step)
}

// DualSolution mirrors Solution. X, Left and Right carry the same partials
// (dx*/dθ); Residual is F(X, P) evaluated under dual arithmetic.
type DualSolution struct {
	X        dual.Number
	Residual dual.Number
	Left     dual.Number
	Right    dual.Number
	Status   Status
	Iters    int
}

// SolveAny is the entry point for possibly-tagged problems. It inspects the
// parameter and the interval: with no tags anywhere it runs Solve directly
// and returns untagged values; otherwise it delegates to SolveDual.
func SolveAny(prob DualProblem, cfg Config) (DualSolution, error) {
	if prob.F == nil {
		return DualSolution{}, ErrNilFunc
	}
	if dual.AnyTagged(prob.P...) || dual.AnyTagged(prob.Left, prob.Right) {
		return SolveDual(prob, cfg)
	}

	sol, err := Solve(prob.primal(), cfg)
	if err != nil {
		return DualSolution{}, err
	}

	return DualSolution{
		X:        dual.Const(sol.X),
		Residual: dual.Const(sol.Residual),
		Left:     dual.Const(sol.Left),
		Right:    dual.Const(sol.Right),
		Status:   sol.Status,
		Iters:    sol.Iters,
	}, nil
}

// SolveDual solves the primal problem once and reattaches dx*/dθ computed
// by the implicit function theorem.
//
// Implementation:
//   - Stage 1: strip tags, run Solve on the primal Problem.
//   - Stage 2: ∂f/∂x at (x*, p) via dual.D.
//   - Stage 3: ∂f/∂p at (x*, p) via dual.D (len(p) == 1) or dual.Gradient.
//   - Stage 4: propagate to every direction carried by p; attach the result
//     to X, Left and Right; evaluate the tagged Residual.
//
// The sensitivity is computed for every terminal Status, including
// MaxIters; callers decide whether a non-converged root's derivative is
// meaningful.
//
// Errors:
//   - everything Solve returns;
//   - ErrZeroSlope — ∂f/∂x(x*) == 0 while a parameter direction is live.
func SolveDual(prob DualProblem, cfg Config) (DualSolution, error) {
	if prob.F == nil {
		return DualSolution{}, ErrNilFunc
	}

	// Stage 1: primal solve.
	primal := prob.primal()
	sol, err := Solve(primal, cfg)
	if err != nil {
		return DualSolution{}, err
	}
	xs, ps := sol.X, primal.P

	// Stage 2: ∂f/∂x at the root, parameters held constant.
	pc := dual.Consts(ps)
	fx := dual.D(func(x dual.Number) dual.Number { return prob.F(x, pc) }, xs)

	// Stage 3: ∂f/∂p at the root, x held constant.
	fp := paramDerivative(prob.F, xs, ps)

	// Stage 4: chain through the partials carried by p.
	width := dual.Width(append([]dual.Number{prob.Left, prob.Right}, prob.P...)...)
	partials := make([]float64, width)
	for k := 0; k < width; k++ {
		var acc float64
		for i := range prob.P {
			dpi := prob.P[i].Partial(k)
			if dpi == 0 || fp[i] == 0 {
				continue
			}
			if fx == 0 {
				return DualSolution{}, ErrZeroSlope
			}
			acc += -fp[i] / fx * dpi
		}
		partials[k] = acc
	}

	x := dual.New(xs, partials...)

	return DualSolution{
		X:        x,
		Residual: prob.F(x, prob.P),
		Left:     dual.New(sol.Left, partials...),
		Right:    dual.New(sol.Right, partials...),
		Status:   sol.Status,
		Iters:    sol.Iters,
	}, nil
}

// paramDerivative returns ∂f/∂p_i at (x, p) for every component of p.
func paramDerivative(f DualFunc, x float64, p []float64) []float64 {
	xc := dual.Const(x)
	switch len(p) {
	case 0:
		return nil
	case 1:
		d := dual.D(func(q dual.Number) dual.Number { return f(xc, []dual.Number{q}) }, p[0])
		return []float64{d}
	default:
		return dual.Gradient(func(q []dual.Number) dual.Number { return f(xc, q) }, p)
	}
}

// primal strips every tag and wraps F as a plain Func. The parameter is
// lifted to untagged Numbers once, not on every evaluation.
func (prob DualProblem) primal() Problem {
	ps := dual.PrimalSlice(prob.P)
	var f Func
	if prob.F != nil {
		pc := dual.Consts(ps)
		f = func(x float64, _ []float64) float64 { return prob.F(dual.Const(x), pc).Value }
	}

	return Problem{
		F:        f,
		P:        ps,
		Left:     dual.Primal(prob.Left),
		Right:    dual.Primal(prob.Right),
		MaxIters: prob.MaxIters,
		OnStep:   prob.OnStep,
	}
}
