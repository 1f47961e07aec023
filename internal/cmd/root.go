package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
}

// NewRootCmd builds the itp command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "itp",
		Short: "Bracketing root finder (Interpolate-Truncate-Project)",
		Long: `itp solves scalar equations f(x, p) = 0 inside a sign-changing bracket
with the ITP method: bisection-grade worst case, superlinear typical speed.

Equations are written in terms of x and the parameters p (or p0, p1, ...).`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/itp/config.yaml)")
	pf.Float64("k1", 0, "truncation scale scaled_k1 (> 0)")
	pf.Float64("k2", 0, "truncation exponent k2 in (1, 1+phi]")
	pf.Int("n0", 0, "projection slack n0 (>= 0)")
	pf.Int("max-iters", 0, "iteration cap per solve")
	pf.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	pf.String("log-format", "", "log format: text or json")
	pf.String("log-file", "", "write logs to this file instead of stderr")

	for key, flag := range map[string]string{
		"algorithm.scaled_k1": "k1",
		"algorithm.k2":        "k2",
		"algorithm.n0":        "n0",
		"algorithm.max_iters": "max-iters",
		"logging.level":       "log-level",
		"logging.format":      "log-format",
		"logging.file":        "log-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newSolveCmd(a), newSweepCmd(a), newConfigCmd(a))

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and opens the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
	}

	// ITP_ALGORITHM_K2 for algorithm.k2, and so on.
	a.v.SetEnvPrefix("ITP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	l, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = l.With("run_id", uuid.NewString(), "command", cmd.Name())

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.log == nil {
		return nil
	}
	return a.log.Close()
}
