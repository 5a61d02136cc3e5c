package git

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
)

// DefaultRemote is used for branch discovery when no remote is configured.
const DefaultRemote = "origin"

// Config keys controlling branch discovery ordering.
const (
	priorityBranchesKey = "workflow.branches.priority"
	excludeBranchesKey  = "workflow.branches.exclude"
)

// Defaults applied when the discovery config keys are unset.
const (
	defaultPriorityBranches = "prod,develop"
	defaultExcludeBranches  = "*archive/*"
)

// LocalBranches returns the names of all local branches.
func LocalBranches(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "for-each-ref", "--format=%(refname)", "refs/heads")
	if err != nil {
		return nil, err
	}
	return refNames(out, "refs/heads/"), nil
}

// RemoteBranches returns branch names under the given remote with the
// remote prefix stripped. The remote's HEAD pointer is not included.
func RemoteBranches(ctx context.Context, dir, remote string) ([]string, error) {
	out, err := outputGit(ctx, dir, "for-each-ref", "--format=%(refname)", "refs/remotes/"+remote)
	if err != nil {
		return nil, err
	}
	names := refNames(out, "refs/remotes/"+remote+"/")
	return slices.DeleteFunc(names, func(n string) bool { return n == "HEAD" }), nil
}

func refNames(out, prefix string) []string {
	if out == "" {
		return nil
	}
	var names []string
	for line := range strings.SplitSeq(out, "\n") {
		if name := strings.TrimPrefix(line, prefix); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FindBranches returns local and remote branch names matching pattern,
// deduplicated across the two namespaces. Pattern uses path.Match wildcard
// semantics (case-sensitive * and ?, no regex). Names matching a
// workflow.branches.exclude glob are dropped; names listed in
// workflow.branches.priority come first in their configured order, the rest
// alphabetically. An empty remote falls back to origin.
func FindBranches(ctx context.Context, dir, pattern, remote string) ([]string, error) {
	if remote == "" {
		remote = DefaultRemote
	}

	local, err := LocalBranches(ctx, dir)
	if err != nil {
		return nil, err
	}
	remotes, err := RemoteBranches(ctx, dir, remote)
	if err != nil {
		return nil, err
	}

	excludes, err := configList(ctx, dir, excludeBranchesKey, defaultExcludeBranches)
	if err != nil {
		return nil, err
	}
	priority, err := configList(ctx, dir, priorityBranchesKey, defaultPriorityBranches)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var matched []string
	for _, name := range slices.Concat(local, remotes) {
		if seen[name] {
			continue
		}
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !ok || excluded(name, excludes) {
			continue
		}
		seen[name] = true
		matched = append(matched, name)
	}

	sortWithPriority(matched, priority)
	return matched, nil
}

// configList reads a comma-separated config value, trimming entries and
// dropping empty ones. def is used when the key is unset.
func configList(ctx context.Context, dir, key, def string) ([]string, error) {
	raw, err := ConfigGet(ctx, dir, key, def)
	if err != nil {
		return nil, err
	}
	var list []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list, nil
}

func excluded(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, name); ok {
			return true
		}
	}
	return false
}

// sortWithPriority orders names so that priority entries appear first, in
// their configured order, followed by the remaining names alphabetically.
func sortWithPriority(names, priority []string) {
	rank := func(name string) int {
		if i := slices.Index(priority, name); i >= 0 {
			return i
		}
		return len(priority)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
}

// FetchAll fetches from all remotes, pruning deleted refs and fetching tags
// and submodule commits. Quiet suppresses git's progress output.
func FetchAll(ctx context.Context, dir string, quiet bool) error {
	args := []string{"fetch", "--all", "--prune", "--tags", "--recurse-submodules"}
	if quiet {
		args = append(args, "--quiet")
	}
	return runGit(ctx, dir, args...)
}

// SubmoduleUpdate initializes and updates all submodules recursively.
// Failures propagate; partial submodule state is unsafe to ignore.
func SubmoduleUpdate(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "submodule", "update", "--init", "--recursive")
}

// Switch checks out the named branch.
func Switch(ctx context.Context, dir, branch string) error {
	return runGit(ctx, dir, "switch", branch)
}
