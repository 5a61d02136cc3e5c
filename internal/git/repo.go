package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrDetachedHead indicates HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// CurrentBranch returns the name of the currently checked out branch.
// Returns ErrDetachedHead when HEAD is detached.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(out)
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// IsDirty returns true if the working tree has uncommitted changes,
// including untracked files.
func IsDirty(ctx context.Context, dir string) (bool, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// OriginURL returns the URL of the origin remote.
func OriginURL(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RepoNameFromURL extracts the repository name from a git remote URL.
// Handles https, ssh (git@host:path), and plain filesystem URLs.
func RepoNameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(url), "/"), ".git")

	// scp-like syntax: git@github.com:user/repo
	if at := strings.Index(url, "@"); at != -1 && !strings.Contains(url, "://") {
		if colon := strings.Index(url, ":"); colon != -1 {
			url = url[colon+1:]
		}
	}

	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

// RepoName returns the repository name, extracted from the origin URL when
// one is configured, falling back to the toplevel directory name.
func RepoName(ctx context.Context, dir string) (string, error) {
	if url, err := OriginURL(ctx, dir); err == nil && url != "" {
		if name := RepoNameFromURL(url); name != "" {
			return name, nil
		}
	}

	top, err := TopLevel(ctx, dir)
	if err != nil {
		return "", err
	}
	return filepath.Base(top), nil
}

// TopLevel returns the absolute path of the working tree root.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// CommonDir returns the absolute path of the common .git directory.
// For worktrees this is the main repository's .git directory, where shared
// state (branch config, refs) lives.
func CommonDir(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}

	gitDir := strings.TrimSpace(out)
	// The output may be relative to the repo, not cwd
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	abs, err := filepath.Abs(gitDir)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// UserEmail returns the configured user.email, empty when not set.
func UserEmail(ctx context.Context, dir string) (string, error) {
	return ConfigGet(ctx, dir, "user.email", "")
}

// UpstreamBranch returns the upstream tracking branch in "remote/branch"
// form (e.g. "origin/main"), or empty when no upstream is configured.
func UpstreamBranch(ctx context.Context, dir, branch string) (string, error) {
	remote, err := ConfigGet(ctx, dir, "branch."+branch+".remote", "")
	if err != nil || remote == "" {
		return "", err
	}

	mergeRef, err := ConfigGet(ctx, dir, "branch."+branch+".merge", "")
	if err != nil || mergeRef == "" {
		return "", err
	}

	return remote + "/" + strings.TrimPrefix(mergeRef, "refs/heads/"), nil
}
