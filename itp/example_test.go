package itp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootfind/dual"
	"github.com/katalvlaran/rootfind/itp"
)

// ExampleSolve finds the root of x − 0.5 on [0, 1].
//
// Scenario:
//
//	The midpoint is the root, so the very first trial evaluates to zero
//	and the solve reports Success after one iteration.
func ExampleSolve() {
	sol, err := itp.Solve(itp.Problem{
		F:     func(x float64, _ []float64) float64 { return x - 0.5 },
		Left:  0,
		Right: 1,
	}, itp.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("status=%v x=%.6f iters=%d\n", sol.Status, sol.X, sol.Iters)
	// Output:
	// status=Success x=0.500000 iters=1
}

// ExampleSolveDual differentiates √p as the positive root of x² − p.
//
// Scenario:
//
//	p = 4 seeded with a unit partial. The implicit function theorem gives
//	dx*/dp = −(∂f/∂p)/(∂f/∂x) = 1/(2x*) = 0.25.
func ExampleSolveDual() {
	sol, err := itp.SolveDual(itp.DualProblem{
		F: func(x dual.Number, p []dual.Number) dual.Number {
			return dual.Sub(dual.Mul(x, x), p[0])
		},
		P:     []dual.Number{dual.New(4, 1)},
		Left:  dual.Const(0),
		Right: dual.Const(10),
	}, itp.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.6f dx/dp=%.6f\n", sol.X.Value, sol.X.Partial(0))
	// Output:
	// x=2.000000 dx/dp=0.250000
}

// ExampleNewConfig shows configuration errors surfacing at construction.
func ExampleNewConfig() {
	_, err := itp.NewConfig(itp.WithK2(3))
	fmt.Println(errors.Is(err, itp.ErrInvalidConfig))
	fmt.Println(err)
	// Output:
	// true
	// itp: invalid algorithm config: k2 must lie in (1, 1+phi]
}
