package main

import (
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch [path...]",
		Short:   "Fetch all remotes, tags and submodules",
		GroupID: GroupCore,
		Long: `Fetch all remotes for one or more repositories.

Runs 'git fetch --all --prune --tags --recurse-submodules' per
repository. Failures are collected and reported together; one bad
repository does not stop the others.`,
		Example: `  wf fetch                       # Fetch the current repository
  wf fetch ~/code/api ~/code/web # Fetch several repositories
  wf fetch -q                    # Suppress git progress output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args)
		},
	}

	return cmd
}
