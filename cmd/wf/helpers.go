package main

import (
	"context"
	"fmt"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/paths"
)

// resolveRepoArg resolves the repository a command operates on. A non-empty
// arg must point at a repository root; otherwise the repository containing
// the working directory is used.
func resolveRepoArg(ctx context.Context, arg string) (string, error) {
	if arg != "" {
		return paths.ResolveRepo(arg)
	}

	top, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return "", fmt.Errorf("not inside a git repository (pass a path): %w", err)
	}
	return top, nil
}

// resolveBranchArg returns the branch a command operates on: the --branch
// flag when set, otherwise the currently checked out branch.
func resolveBranchArg(ctx context.Context, repo, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	return git.CurrentBranch(ctx, repo)
}

// defaultRemote returns the remote to use for branch discovery: the flag
// when set, then the configured default, then origin.
func defaultRemote(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.Remote != "" {
		return cfg.Remote
	}
	return "origin"
}
