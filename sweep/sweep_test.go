package sweep_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/rootfind/itp"
	"github.com/katalvlaran/rootfind/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqrtEq(x float64, p []float64) float64 { return x*x - p[0] }

// TestRun_OrderAndValues checks results come back in input order.
func TestRun_OrderAndValues(t *testing.T) {
	params, err := sweep.Linspace(1, 16, 16)
	require.NoError(t, err)

	var seen atomic.Int64
	res, err := sweep.Run(context.Background(), sqrtEq, params, 0, 5, itp.DefaultConfig(),
		sweep.WithWorkers(4),
		sweep.WithOnResult(func(sweep.Result) { seen.Add(1) }),
	)
	require.NoError(t, err)
	require.Len(t, res, 16)
	assert.Equal(t, int64(16), seen.Load())

	for i, r := range res {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Index)
		assert.True(t, r.Solution.Status.IsConverged())
		assert.InDelta(t, math.Sqrt(float64(i+1)), r.Solution.X, 1e-14)
	}
}

// TestRun_PerProblemErrors keeps going when a single problem is malformed.
func TestRun_PerProblemErrors(t *testing.T) {
	params := [][]float64{{4}, {-1}, {9}}
	res, err := sweep.Run(context.Background(), sqrtEq, params, 0, 5, itp.DefaultConfig(), sweep.WithWorkers(1))
	require.NoError(t, err)
	assert.NoError(t, res[0].Err)
	assert.ErrorIs(t, res[1].Err, itp.ErrNoSignChange)
	assert.NoError(t, res[2].Err)
}

// TestRun_MaxIters applies the cap to every solve.
func TestRun_MaxIters(t *testing.T) {
	res, err := sweep.Run(context.Background(), sqrtEq, [][]float64{{2}, {3}}, 0, 5, itp.DefaultConfig(), sweep.WithMaxIters(2))
	require.NoError(t, err)
	for _, r := range res {
		assert.Equal(t, itp.MaxIters, r.Solution.Status)
		assert.Equal(t, 2, r.Solution.Iters)
	}
}

// TestRun_Cancelled reports the context error.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := sweep.Run(ctx, sqrtEq, [][]float64{{4}, {9}}, 0, 5, itp.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, res, 2)
	for _, r := range res {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

// TestRun_Errors covers the fail-fast inputs.
func TestRun_Errors(t *testing.T) {
	_, err := sweep.Run(context.Background(), nil, [][]float64{{1}}, 0, 1, itp.DefaultConfig())
	assert.ErrorIs(t, err, itp.ErrNilFunc)
	_, err = sweep.Run(context.Background(), sqrtEq, nil, 0, 1, itp.DefaultConfig())
	assert.ErrorIs(t, err, sweep.ErrEmpty)
	assert.Panics(t, func() { sweep.WithWorkers(0) })
}

// TestLinspace covers endpoints and the single-step case.
func TestLinspace(t *testing.T) {
	ps, err := sweep.Linspace(0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {0.5}, {1}}, ps)

	ps, err = sweep.Linspace(2, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}}, ps)

	_, err = sweep.Linspace(0, 1, 0)
	assert.ErrorIs(t, err, sweep.ErrBadSteps)
}

// TestLinspace_Descending keeps both ends exact on a reversed range.
func TestLinspace_Descending(t *testing.T) {
	ps, err := sweep.Linspace(1, 0.1, 4)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, 1.0, ps[0][0])
	assert.Equal(t, 0.1, ps[3][0])
	assert.InDelta(t, 0.7, ps[1][0], 1e-15)
	assert.InDelta(t, 0.4, ps[2][0], 1e-15)
}
