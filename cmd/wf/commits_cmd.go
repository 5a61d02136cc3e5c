package main

import (
	"github.com/spf13/cobra"

	"github.com/wfcli/wf/internal/git"
)

func newCommitsCmd() *cobra.Command {
	var (
		since  string
		author string
		mine   bool
		max    int
	)

	cmd := &cobra.Command{
		Use:     "commits [path]",
		Short:   "List recent commits on the current branch",
		GroupID: GroupInspection,
		Example: `  wf commits                     # Recent commits in the current repository
  wf commits --mine --since "1 week ago"
  wf commits -n 5 ~/code/api     # Last five commits of another repository`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			repo, err := resolveRepoArg(ctx, arg)
			if err != nil {
				return err
			}

			return runCommits(ctx, repo, git.CommitFilter{
				Since:  since,
				Author: author,
				Max:    max,
			}, mine)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Only commits more recent than a date (passed to git log)")
	cmd.Flags().StringVar(&author, "author", "", "Only commits by this author")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only commits by the configured user.email")
	cmd.Flags().IntVarP(&max, "max", "n", 20, "Maximum number of commits to list")
	cmd.MarkFlagsMutuallyExclusive("author", "mine")

	return cmd
}
