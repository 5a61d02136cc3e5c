package main

import (
	"github.com/spf13/cobra"
)

func newReposCmd() *cobra.Command {
	var (
		rootDir    string
		sortBy     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "repos",
		Short:   "List repositories under the configured scan root",
		Aliases: []string{"r"},
		GroupID: GroupInspection,
		Args:    cobra.NoArgs,
		Long: `List repositories under the configured scan root.

Walks repo_dir collecting directories that contain .git, without
descending into repositories. Per-directory ignore files (ignore_file,
default .wfignore) prune the walk with gitignore-style globs.`,
		Example: `  wf repos                       # Scan the configured repo_dir
  wf repos --root ~/code         # Scan another root
  wf repos --sort branch         # Order by checked-out branch
  wf repos --json                # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir
			if root == "" {
				root = cfg.RepoDir
			}
			return runRepos(cmd.Context(), root, sortBy, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", "", "Scan root (default: repo_dir from config)")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "Sort by: name, branch")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	cmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"name", "branch"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
