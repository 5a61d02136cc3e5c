package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/wfcli/wf/internal/config"
	"github.com/wfcli/wf/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage wf configuration.

Config file: ~/.config/wf/config.toml (override with $WF_CONFIG).
Per-repository workflow settings live in git config under workflow.*.`,
		Example: `  wf config init          # Create a commented default config
  wf config path          # Print the config file location
  wf config show          # Show the effective configuration`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.WriteDefault()
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return err
			}
			out.Println(path)
			return nil
		},
	}

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				out.Printf("Config file: %s (not present, using defaults)\n", path)
			} else {
				out.Printf("Config file: %s\n", path)
			}
			out.Println()

			out.Printf("remote: %s\n", cfg.Remote)
			out.Printf("repo_dir: %s\n", orUnset(cfg.RepoDir))
			out.Printf("ignore_file: %s\n", cfg.IgnoreFile)
			out.Printf("theme.name: %s\n", orDefault(cfg.Theme.Name, "default"))
			out.Printf("theme.mode: %s\n", orDefault(cfg.Theme.Mode, "auto"))
			out.Printf("theme.nerdfont: %v\n", cfg.Theme.Nerdfont)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
