package main

import (
	"github.com/spf13/cobra"
)

func newSwitchCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:     "switch <pattern>",
		Short:   "Switch to a branch matching a glob pattern",
		Aliases: []string{"sw"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Switch to a branch matching a glob pattern.

Candidates are collected from local branches and the remote (with the
remote prefix stripped), filtered by the workflow.branches.exclude
globs, and ordered with workflow.branches.priority names first. One
match switches directly; several matches open a fuzzy picker.`,
		Example: `  wf switch prod                 # Exact name
  wf switch 'feature-*'          # Glob; picker when several match
  wf switch 'PROJ-123*' -r fork  # Match against another remote`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepoArg(ctx, "")
			if err != nil {
				return err
			}

			return runSwitch(ctx, repo, args[0], defaultRemote(remote))
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote for branch discovery (default from config, then origin)")

	return cmd
}
