package main

import (
	"github.com/spf13/cobra"

	"github.com/wfcli/wf/internal/setup"
)

func newSetupCmd() *cobra.Command {
	var (
		templateDir  string
		skipDirenv   bool
		skipTemplate bool
	)

	cmd := &cobra.Command{
		Use:     "setup [path]",
		Short:   "Initialize a repository for the workflow",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Initialize a repository for the workflow.

Runs, in order: submodule update (fatal on failure), direnv setup
(.envrc symlink from .envrc.sample plus 'direnv allow' when direnv is
installed), and user-template application. The direnv and template
steps are best-effort; each failure is reported but the other step
still runs.`,
		Example: `  wf setup                       # Initialize the current repository
  wf setup ~/code/api            # Initialize a specific repository
  wf setup --skip-template       # Submodules and direnv only
  wf setup --template ~/tmpl     # Use an explicit template directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			repo, err := resolveRepoArg(ctx, arg)
			if err != nil {
				return err
			}

			return runSetup(ctx, repo, setup.Options{
				Template:     templateDir,
				SkipDirenv:   skipDirenv,
				SkipTemplate: skipTemplate,
			})
		},
	}

	cmd.Flags().StringVar(&templateDir, "template", "", "Explicit template directory")
	cmd.Flags().BoolVar(&skipDirenv, "skip-direnv", false, "Skip the direnv step")
	cmd.Flags().BoolVar(&skipTemplate, "skip-template", false, "Skip the template step")

	return cmd
}
