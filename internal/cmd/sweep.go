package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/rootfind/sweep"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type sweepFlags struct {
	expression string
	from, to   float64
	steps      int
	left       float64
	right      float64
	asJSON     bool
	progress   bool
}

// sweepRow is the JSON shape of one sweep result.
type sweepRow struct {
	sweep.Result
	Error string `json:"error,omitempty"`
}

func newSweepCmd(a *app) *cobra.Command {
	var f sweepFlags

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve f(x, p) = 0 for a range of scalar parameters",
		Long: `Solve f(x, p) = 0 on one bracket for p evenly spaced over [from, to].
Solves run concurrently; output keeps the parameter order.

Example:
  itp sweep --expr "x*x - p" --from 1 --to 9 --steps 9 --left 0 --right 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSweep(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.expression, "expr", "e", "", "equation in x and p (required)")
	cmd.Flags().Float64Var(&f.from, "from", 0, "first parameter value")
	cmd.Flags().Float64Var(&f.to, "to", 1, "last parameter value")
	cmd.Flags().IntVar(&f.steps, "steps", 11, "number of parameter values")
	cmd.Flags().Float64VarP(&f.left, "left", "a", 0, "left end of the bracket")
	cmd.Flags().Float64VarP(&f.right, "right", "b", 0, "right end of the bracket")
	cmd.Flags().Int("workers", 0, "concurrent solves (0 = one per CPU)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "draw a progress bar on stderr")
	_ = cmd.MarkFlagRequired("expr")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")
	_ = a.v.BindPFlag("sweep.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, f sweepFlags) error {
	e, err := compile(f.expression, 1)
	if err != nil {
		return err
	}
	cfg, err := a.cfg.ITP()
	if err != nil {
		return err
	}
	params, err := sweep.Linspace(f.from, f.to, f.steps)
	if err != nil {
		return err
	}

	log := a.log.With("expr", e.String())
	var bar *progressbar.ProgressBar
	if f.progress {
		bar = newProgressBar(cmd.ErrOrStderr(), len(params))
	}
	opts := []sweep.Option{
		sweep.WithMaxIters(a.cfg.Algorithm.MaxIters),
		sweep.WithOnResult(func(r sweep.Result) {
			if bar != nil {
				_ = bar.Add(1)
			}
			if r.Err != nil {
				log.Warn("sweep point failed", "p", r.P, "error", r.Err)
				return
			}
			log.Debug("sweep point", "p", r.P, "status", r.Solution.Status, "x", r.Solution.X, "iters", r.Solution.Iters)
		}),
	}
	if a.cfg.Sweep.Workers > 0 {
		opts = append(opts, sweep.WithWorkers(a.cfg.Sweep.Workers))
	}

	results, err := sweep.Run(cmd.Context(), e.Func(), params, f.left, f.right, cfg, opts...)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}
	log.Info("sweep finished", "points", len(results))

	out := cmd.OutOrStdout()
	if f.asJSON {
		rows := make([]sweepRow, len(results))
		for i, r := range results {
			rows[i] = sweepRow{Result: r}
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "p\tx\tresidual\tstatus\titers")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%g\t-\t-\terror: %v\t-\n", r.P[0], r.Err)
			continue
		}
		s := r.Solution
		fmt.Fprintf(tw, "%g\t%.15g\t%.3g\t%v\t%d\n", r.P[0], s.X, s.Residual, s.Status, s.Iters)
	}
	return tw.Flush()
}

// newProgressBar counts finished solves on w.
func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("solves"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Sweeping"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
