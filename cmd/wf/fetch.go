package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/paths"
	"github.com/wfcli/wf/internal/ui"
	"github.com/wfcli/wf/internal/ui/progress"
)

// runFetch fetches all remotes for each repository. Failures are
// collected per repository and joined; one bad repo does not stop the
// rest.
func runFetch(ctx context.Context, repoArgs []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	repos, err := fetchTargets(ctx, repoArgs)
	if err != nil {
		return err
	}

	// Spinner only when a human is watching; verbose mode shows the
	// underlying git commands instead.
	var spin *progress.Spinner
	if ui.IsInteractive() && !l.IsVerbose() {
		spin = progress.NewSpinner("Fetching...")
		spin.Start()
		defer spin.Stop()
	}

	var errs []error
	for _, repo := range repos {
		name := filepath.Base(repo)
		if spin != nil {
			spin.UpdateMessage(fmt.Sprintf("Fetching %s...", name))
		}
		if err := git.FetchAll(ctx, repo, quiet); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		l.Printf("Fetched %s\n", name)
	}

	if spin != nil {
		spin.Stop()
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if len(repos) > 1 {
		out.Printf("Fetched %d repositories\n", len(repos))
	}
	return nil
}

// fetchTargets resolves the repositories to fetch: the given paths, or
// the repository containing the working directory when none are given.
func fetchTargets(ctx context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		repo, err := resolveRepoArg(ctx, "")
		if err != nil {
			return nil, err
		}
		return []string{repo}, nil
	}

	repos := make([]string, 0, len(args))
	for _, arg := range args {
		repo, err := paths.ResolveRepo(arg)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
