// Package paths resolves filesystem paths and discovers git repositories.
package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// RepositoryNotFoundError is returned when a path does not point at a git
// repository (missing, or no .git entry).
type RepositoryNotFoundError struct {
	Path string
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("not a git repository: %s", e.Path)
}

// Resolve expands a leading ~ to the user's home directory and returns an
// absolute, cleaned path. An empty path resolves to the current directory.
// ~user forms are rejected rather than silently treated as relative paths.
func Resolve(p string) (string, error) {
	if p == "" {
		return os.Getwd()
	}
	if strings.HasPrefix(p, "~") {
		if p != "~" && !strings.HasPrefix(p, "~/") {
			return "", fmt.Errorf("unsupported path %q: only ~ and ~/ are expanded", p)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Abs(p)
}

// IsRepo checks if a path is a git repository (has .git dir or file).
func IsRepo(p string) bool {
	info, err := os.Stat(filepath.Join(p, ".git"))
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree, submodule)
	return info.IsDir() || info.Mode().IsRegular()
}

// ResolveRepo resolves a path and validates that it is a git repository.
// Symlinks are resolved so callers always work with the canonical location.
func ResolveRepo(p string) (string, error) {
	abs, err := Resolve(p)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &RepositoryNotFoundError{Path: abs}
		}
		return "", err
	}

	if !IsRepo(resolved) {
		return "", &RepositoryNotFoundError{Path: resolved}
	}
	return resolved, nil
}

// Find walks root and returns the git repositories beneath it, in lexical
// order. Repositories are not descended into, so nested checkouts (vendored
// repos, submodule worktrees) are not listed separately.
//
// When ignoreFile is non-empty, a file of that name at root lists glob
// patterns of paths to prune, one per line. Lines starting with # are
// comments; a leading ! re-includes a previously ignored match.
func Find(root, ignoreFile string) ([]string, error) {
	rootAbs, err := Resolve(root)
	if err != nil {
		return nil, err
	}

	var rules []ignoreRule
	if ignoreFile != "" {
		rules, err = parseIgnoreFile(filepath.Join(rootAbs, ignoreFile))
		if err != nil {
			return nil, err
		}
	}

	var repos []string
	err = filepath.WalkDir(rootAbs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == rootAbs {
				return fmt.Errorf("scan %s: %w", rootAbs, err)
			}
			// Unreadable subdirectories don't abort the scan
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != rootAbs {
			rel, relErr := filepath.Rel(rootAbs, p)
			if relErr == nil && ignoredPath(rel, rules) {
				return fs.SkipDir
			}
		}
		if IsRepo(p) {
			repos = append(repos, p)
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repos, nil
}

type ignoreRule struct {
	pattern string
	negate  bool
}

func parseIgnoreFile(p string) ([]ignoreRule, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var rules []ignoreRule
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule := ignoreRule{pattern: line}
		if strings.HasPrefix(line, "!") {
			rule.negate = true
			rule.pattern = strings.TrimSpace(line[1:])
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ignoredPath applies the rules in order; the last matching rule wins,
// mirroring gitignore precedence.
func ignoredPath(relPath string, rules []ignoreRule) bool {
	rel := filepath.ToSlash(relPath)
	skip := false
	for _, r := range rules {
		if matchesRule(rel, r.pattern) {
			skip = !r.negate
		}
	}
	return skip
}

// matchesRule matches a pattern against the full relative path, its
// basename, and each path segment, so "archived-*" catches both
// "archived-x" and "team/archived-x".
func matchesRule(rel, pattern string) bool {
	if ok, _ := path.Match(pattern, rel); ok {
		return true
	}
	if ok, _ := path.Match(pattern, path.Base(rel)); ok {
		return true
	}
	for _, seg := range strings.Split(rel, "/") {
		if ok, _ := path.Match(pattern, seg); ok {
			return true
		}
	}
	return false
}
