package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/itp"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	expression string
	params     []float64
	left       float64
	right      float64
	asJSON     bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve f(x, p) = 0 on one bracket",
		Long: `Solve f(x, p) = 0 on the bracket [left, right].

Examples:
  itp solve --expr "x*x - p" --param 2 --left 0 --right 2
  itp solve --expr "p0*x - p1" --param 2,6 --left 0 --right 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.expression, "expr", "e", "", "equation in x and p (required)")
	cmd.Flags().Float64SliceVarP(&f.params, "param", "p", nil, "parameter vector p0,p1,...")
	cmd.Flags().Float64VarP(&f.left, "left", "a", 0, "left end of the bracket")
	cmd.Flags().Float64VarP(&f.right, "right", "b", 0, "right end of the bracket")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the solution as JSON")
	_ = cmd.MarkFlagRequired("expr")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	e, err := compile(f.expression, len(f.params))
	if err != nil {
		return err
	}
	cfg, err := a.cfg.ITP()
	if err != nil {
		return err
	}

	log := a.log.With("expr", e.String())
	prob := itp.Problem{
		F:        e.Func(),
		P:        f.params,
		Left:     f.left,
		Right:    f.right,
		MaxIters: a.cfg.Algorithm.MaxIters,
		OnStep: func(s itp.Step) {
			log.Debug("itp step", "iter", s.Iter, "trial", s.Trial, "f_trial", s.FTrial, "left", s.Left, "right", s.Right)
		},
	}

	sol, err := itp.Solve(prob, cfg)
	if err != nil {
		log.Error("solve failed", "error", err)
		return err
	}
	log.Info("solve finished", "status", sol.Status, "x", sol.X, "iters", sol.Iters)
	if !sol.Status.IsConverged() {
		log.Warn("iteration cap reached before convergence", "max_iters", a.cfg.Algorithm.MaxIters)
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	}
	_, err = fmt.Fprintf(out, "status:   %v\nx:        %.17g\nresidual: %.17g\nbracket:  [%.17g, %.17g]\niters:    %d\n",
		sol.Status, sol.X, sol.Residual, sol.Left, sol.Right, sol.Iters)
	return err
}

// compile parses the expression and checks enough parameters were given.
func compile(src string, nParams int) (*expr.Expression, error) {
	e, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	if e.Arity() > nParams {
		return nil, fmt.Errorf("%w: %q reads %d parameter(s), %d given", expr.ErrArity, src, e.Arity(), nParams)
	}
	return e, nil
}
