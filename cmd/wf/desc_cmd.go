package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newDescCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "desc",
		Short:   "Manage structured branch descriptions",
		Aliases: []string{"d"},
		GroupID: GroupInspection,
		Long: `Manage structured branch descriptions.

Descriptions are stored in git config (branch.<name>.description) as a
free-text summary, a blank line, then "Key: value" trailer lines, the
same shape git uses for commit trailers. The Ticket trailer links a
branch to its ticket.

Commands operate on the current branch unless --branch is given.`,
		Example: `  wf desc set "Rework login flow"       # Set the summary
  wf desc ticket 123                    # Record a normalized Ticket trailer
  wf desc add Reviewer alice            # Append a trailer
  wf desc replace Status done           # Replace all Status trailers
  wf desc show                          # Print the raw description
  wf desc clear                         # Remove the description`,
	}

	cmd.AddCommand(newDescShowCmd())
	cmd.AddCommand(newDescSetCmd())
	cmd.AddCommand(newDescAddCmd())
	cmd.AddCommand(newDescReplaceCmd())
	cmd.AddCommand(newDescTicketCmd())
	cmd.AddCommand(newDescClearCmd())

	return cmd
}

// descTarget resolves the repo and branch for a desc subcommand.
func descTarget(ctx context.Context, branchFlag string) (repo, branch string, err error) {
	repo, err = resolveRepoArg(ctx, "")
	if err != nil {
		return "", "", err
	}
	branch, err = resolveBranchArg(ctx, repo, branchFlag)
	if err != nil {
		return "", "", err
	}
	return repo, branch, nil
}

// withBranchFlag registers the shared --branch flag.
func withBranchFlag(cmd *cobra.Command, branch *string) *cobra.Command {
	cmd.Flags().StringVarP(branch, "branch", "b", "", "Branch to operate on (default: current)")
	return cmd
}

func newDescShowCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a branch's description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescShow(ctx, repo, b)
		},
	}

	return withBranchFlag(cmd, &branch)
}

func newDescSetCmd() *cobra.Command {
	var (
		branch    string
		setTicket string
	)

	cmd := &cobra.Command{
		Use:   "set <summary>",
		Short: "Set the description summary",
		Long: `Set the description summary, keeping existing trailers.

With --ticket the description is replaced wholesale with the summary and
a single normalized Ticket trailer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescSet(ctx, repo, b, args[0], setTicket)
		},
	}
	cmd.Flags().StringVarP(&setTicket, "ticket", "t", "", "Seed the description with a Ticket trailer")

	return withBranchFlag(cmd, &branch)
}

func newDescAddCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "add <key> <value>",
		Short: "Append a trailer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescAdd(ctx, repo, b, args[0], args[1])
		},
	}

	return withBranchFlag(cmd, &branch)
}

func newDescReplaceCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "replace <key> <value>",
		Short: "Replace all trailers with a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescReplace(ctx, repo, b, args[0], args[1])
		},
	}

	return withBranchFlag(cmd, &branch)
}

func newDescTicketCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "ticket <ticket>",
		Short: "Record a normalized Ticket trailer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescTicket(ctx, repo, b, args[0])
		},
	}

	return withBranchFlag(cmd, &branch)
}

func newDescClearCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove a branch's description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, b, err := descTarget(ctx, branch)
			if err != nil {
				return err
			}
			return runDescClear(ctx, repo, b)
		},
	}

	return withBranchFlag(cmd, &branch)
}
