package cmd

import (
	"fmt"

	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or create the itp configuration",
		Long: `View or create the itp configuration.

Without arguments, displays the effective configuration (defaults, config
file, ITP_* environment variables and flags, in increasing precedence).`,
		Args: cobra.NoArgs,
		RunE: a.runConfigShow,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigShow,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the config file path",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigPath,
		},
		&cobra.Command{
			Use:   "init [path]",
			Short: "Write a default config file",
			Long:  `Write a default config file to ~/.config/itp/config.yaml, or to the given path.`,
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runConfigInit,
		},
	)

	return configCmd
}

func (a *app) runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if used := a.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(a.v.AllSettings())
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func (a *app) runConfigPath(cmd *cobra.Command, _ []string) error {
	path := a.v.ConfigFileUsed()
	if path == "" {
		path = config.ConfigFile()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ConfigFile()
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	a.log.Info("config written", "path", path)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return err
}
