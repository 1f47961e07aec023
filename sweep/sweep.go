// SPDX-License-Identifier: MIT

// Package sweep solves one bracketed root-finding problem per parameter
// vector on a bounded worker pool.
//
// Every solve is independent and shares a single immutable itp.Config, so
// no locking is needed around the solver itself. Results are returned in
// input order. Cancellation is observed between solves only: a solve that
// has started always runs to one of its terminal statuses.
package sweep

import (
	"context"
	"errors"
	"runtime"

	"github.com/katalvlaran/rootfind/itp"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty is returned when there is nothing to sweep.
	ErrEmpty = errors.New("sweep: no parameters")

	// ErrBadSteps is returned by Linspace for steps < 1.
	ErrBadSteps = errors.New("sweep: steps must be >= 1")
)

// Result is the outcome of one solve. Err holds a per-problem input error
// (for example itp.ErrNoSignChange); the rest of the sweep continues.
type Result struct {
	Index    int          `json:"index"`
	P        []float64    `json:"p"`
	Solution itp.Solution `json:"solution"`
	Err      error        `json:"-"`
}

type options struct {
	workers  int
	maxIters int
	onResult func(Result)
}

// Option configures Run.
type Option func(*options)

// WithWorkers bounds the number of concurrent solves. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers: n must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithMaxIters sets Problem.MaxIters for every solve.
func WithMaxIters(n int) Option { return func(o *options) { o.maxIters = n } }

// WithOnResult registers a callback invoked once per finished solve, from
// the worker goroutine that ran it. The callback must be safe for
// concurrent use.
func WithOnResult(fn func(Result)) Option { return func(o *options) { o.onResult = fn } }

// Run solves f(x, params[i]) = 0 on [left, right] for every i.
//
// Errors:
//   - itp.ErrNilFunc — f is nil.
//   - ErrEmpty       — params is empty.
//   - ctx.Err()      — the context ended before every solve started; the
//     returned slice still holds the finished results, and the skipped
//     entries carry the context error in Result.Err.
func Run(ctx context.Context, f itp.Func, params [][]float64, left, right float64, cfg itp.Config, opts ...Option) ([]Result, error) {
	if f == nil {
		return nil, itp.ErrNilFunc
	}
	if len(params) == 0 {
		return nil, ErrEmpty
	}

	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result, len(params))
	p := pool.New().WithMaxGoroutines(o.workers).WithContext(ctx)
	for i := range params {
		i := i
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Index: i, P: params[i], Err: err}

				return err
			}
			r := Result{Index: i, P: params[i]}
			r.Solution, r.Err = itp.Solve(itp.Problem{
				F:        f,
				P:        params[i],
				Left:     left,
				Right:    right,
				MaxIters: o.maxIters,
			}, cfg)
			results[i] = r
			if o.onResult != nil {
				o.onResult(r)
			}

			return nil
		})
	}
	_ = p.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

// Linspace returns steps scalar parameter vectors evenly spaced over
// [from, to], both ends included. A single step yields [[from]].
func Linspace(from, to float64, steps int) ([][]float64, error) {
	if steps < 1 {
		return nil, ErrBadSteps
	}
	if steps == 1 {
		return [][]float64{{from}}, nil
	}
	grid := floats.Span(make([]float64, steps), from, to)
	grid[steps-1] = to
	out := make([][]float64, steps)
	for i, v := range grid {
		out[i] = []float64{v}
	}

	return out, nil
}
