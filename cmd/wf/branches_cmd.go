package main

import (
	"github.com/spf13/cobra"
)

func newBranchesCmd() *cobra.Command {
	var (
		remote           string
		withDescriptions bool
		jsonOutput       bool
	)

	cmd := &cobra.Command{
		Use:     "branches <pattern>",
		Short:   "List branches matching a glob pattern",
		Aliases: []string{"br"},
		GroupID: GroupInspection,
		Args:    cobra.ExactArgs(1),
		Long: `List branches matching a glob pattern.

Matches local branches and remote branches (remote prefix stripped),
deduplicated, with workflow.branches.exclude globs removed and
workflow.branches.priority names listed first.`,
		Example: `  wf branches '*'                # All branches
  wf branches 'feature-*'        # Glob match
  wf branches '*' -d             # Table with tickets and descriptions
  wf branches '*' --json         # Machine output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepoArg(ctx, "")
			if err != nil {
				return err
			}

			return runBranches(ctx, repo, args[0], defaultRemote(remote), withDescriptions, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote for branch discovery (default from config, then origin)")
	cmd.Flags().BoolVarP(&withDescriptions, "descriptions", "d", false, "Show tickets and description summaries")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
