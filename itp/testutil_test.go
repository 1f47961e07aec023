// Package itp_test provides small helpers shared across *_test.go files.
package itp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/itp"
	"github.com/stretchr/testify/require"
)

const (
	// epsMachine is float64 machine epsilon.
	epsMachine = 0x1p-52

	// epsRoot bounds |x − x*| for smooth test equations: a few ulps around 1.
	epsRoot = 8 * epsMachine

	// tolDeriv is the tolerance for implicit derivatives.
	tolDeriv = 1e-10
)

// linear returns f(x) = x − c.
func linear(c float64) itp.Func {
	return func(x float64, _ []float64) float64 { return x - c }
}

// step returns a discontinuous f that is −1 below c and +1 at or above c.
// It never evaluates to zero, so only FloatingPointLimit or MaxIters can end a solve.
func step(c float64) itp.Func {
	return func(x float64, _ []float64) float64 {
		if x < c {
			return -1
		}

		return 1
	}
}

// mustConfig builds a Config or fails the test.
func mustConfig(t *testing.T, opts ...itp.Option) itp.Config {
	t.Helper()
	cfg, err := itp.NewConfig(opts...)
	require.NoError(t, err)

	return cfg
}

// requireInBracket asserts x ∈ [min(l,r), max(l,r)].
func requireInBracket(t *testing.T, sol itp.Solution) {
	t.Helper()
	lo, hi := math.Min(sol.Left, sol.Right), math.Max(sol.Left, sol.Right)
	require.GreaterOrEqual(t, sol.X, lo, "root below bracket")
	require.LessOrEqual(t, sol.X, hi, "root above bracket")
}
