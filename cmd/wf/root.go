package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wfcli/wf/internal/config"
	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore       = "core"
	GroupInspection = "inspection"
	GroupConfig     = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wf",
	Short: "Git workflow utilities for a branch-per-ticket workflow",
	Long: `wf wraps common git operations for a branch-per-ticket workflow.

It discovers branches by glob, keeps structured branch descriptions with
ticket trailers, builds ticket URLs, and initializes fresh clones
(submodules, direnv, user template) in one shot.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are only parsed by now, so the logger is built here
		// rather than in Execute
		attachLogger(cmd)

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Apply theme before any styled output
	styles.Init(cfg.Theme)

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wf: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data). The stderr logger is
	// attached in PersistentPreRunE once flags are parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'wf -h' for help")
		os.Exit(1)
	}
}

// attachLogger installs the stderr logger into the executing command's
// context, honoring the parsed --verbose/--quiet flags.
func attachLogger(cmd *cobra.Command) {
	cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupInspection, Title: "Inspection Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newSwitchCmd())

	// Inspection commands
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newDescCmd())
	rootCmd.AddCommand(newTicketCmd())
	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newCommitsCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTemplateCmd())
}
