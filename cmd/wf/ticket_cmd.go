package main

import (
	"github.com/spf13/cobra"
)

func newTicketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ticket",
		Short:   "Work with ticket identifiers",
		Aliases: []string{"t"},
		GroupID: GroupInspection,
		Long: `Work with ticket identifiers.

Tickets have the form PREFIX-number (e.g. PROJ-123). A bare number is
expanded with the workflow.ticket.prefix config; URLs are built from
the workflow.ticket.urlPattern config with a %(ticket) placeholder.`,
		Example: `  wf ticket show                 # Ticket for the current branch
  wf ticket show -b feature-x    # Ticket for another branch
  wf ticket normalize proj-42    # -> PROJ-42
  wf ticket url                  # URL for the current branch's ticket
  wf ticket url PROJ-42 --copy   # Print and copy to clipboard`,
	}

	cmd.AddCommand(newTicketShowCmd())
	cmd.AddCommand(newTicketNormalizeCmd())
	cmd.AddCommand(newTicketURLCmd())

	return cmd
}

func newTicketShowCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the ticket associated with a branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepoArg(ctx, "")
			if err != nil {
				return err
			}
			b, err := resolveBranchArg(ctx, repo, branch)
			if err != nil {
				return err
			}
			return runTicketShow(ctx, repo, b)
		},
	}

	return withBranchFlag(cmd, &branch)
}

func newTicketNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <ticket>",
		Short: "Canonicalize a ticket identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepoArg(ctx, "")
			if err != nil {
				return err
			}
			return runTicketNormalize(ctx, repo, args[0])
		},
	}

	return cmd
}

func newTicketURLCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "url [ticket]",
		Short: "Print the browsable URL for a ticket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepoArg(ctx, "")
			if err != nil {
				return err
			}

			var raw string
			if len(args) > 0 {
				raw = args[0]
			}
			return runTicketURL(ctx, repo, raw, copyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the URL to the clipboard")

	return cmd
}
