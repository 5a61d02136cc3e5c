package main

import (
	"github.com/spf13/cobra"

	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/template"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Short:   "Apply the user template directory",
		GroupID: GroupConfig,
		Long: `Apply the user template directory into a repository.

The template source is the --dir flag, then the
worktree.userTemplate.path config, then ~/.config/git/user-template.
Each top-level entry is symlinked or copied per
worktree.userTemplate.mode (link|copy) with per-path overrides via the
multi-valued worktree.userTemplate.link and .copy keys. Existing
targets are never touched.`,
		Example: `  wf template apply              # Apply into the current repository
  wf template apply ~/code/api   # Apply into a specific repository
  wf template apply --dir ~/tmpl # Explicit template directory`,
	}

	cmd.AddCommand(newTemplateApplyCmd())

	return cmd
}

func newTemplateApplyCmd() *cobra.Command {
	var templateDir string

	cmd := &cobra.Command{
		Use:   "apply [path]",
		Short: "Apply the template into a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			repo, err := resolveRepoArg(ctx, arg)
			if err != nil {
				return err
			}

			applied, err := template.Apply(ctx, repo, templateDir)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				out.Println("Nothing to apply")
				return nil
			}
			for _, a := range applied {
				out.Printf("%s (%s)\n", a.Path, a.Mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateDir, "dir", "", "Explicit template directory")

	return cmd
}
