// Package template applies a user template directory into a repository.
//
// Each top-level entry of the template is either symlinked or copied into
// the repository root, governed by worktree.userTemplate.mode plus per-path
// overrides. Existing targets are never overwritten, so user customization
// survives re-application.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/workflow"
)

// Config keys consumed by this package.
const (
	pathKey = "worktree.userTemplate.path"
	modeKey = "worktree.userTemplate.mode"
	copyKey = "worktree.userTemplate.copy"
	linkKey = "worktree.userTemplate.link"
)

// DefaultDir is the template directory used when none is configured.
const DefaultDir = "~/.config/git/user-template"

// ErrNoTemplateDir indicates no template directory exists.
var ErrNoTemplateDir = errors.New("no template directory found")

// Mode selects how a template entry lands in the repository.
type Mode string

const (
	ModeLink Mode = "link"
	ModeCopy Mode = "copy"
)

// Applied records one template entry that was placed into the repository.
type Applied struct {
	Path string // path relative to the template root
	Mode Mode
}

// Resolve returns the template source directory: the explicit argument
// wins, then the worktree.userTemplate.path config, then DefaultDir. The
// first existing directory is returned; ErrNoTemplateDir when none exists.
func Resolve(ctx context.Context, dir, explicit string) (string, error) {
	configured, err := git.ConfigGet(ctx, dir, pathKey, "")
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{explicit, configured, DefaultDir} {
		if candidate == "" {
			continue
		}
		resolved, err := expandHome(candidate)
		if err != nil {
			return "", err
		}
		if info, err := os.Stat(resolved); err == nil && info.IsDir() {
			return resolved, nil
		}
	}
	return "", ErrNoTemplateDir
}

func expandHome(p string) (string, error) {
	if p == "~" || len(p) > 1 && p[0] == '~' && p[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		if p == "~" {
			return home, nil
		}
		return filepath.Join(home, p[2:]), nil
	}
	return filepath.Abs(p)
}

// Apply places the resolved template's top-level entries into repo.
// A missing template directory is a no-op, not an error. The global mode
// must be configured as exactly "link" or "copy"; per-path overrides in
// worktree.userTemplate.link and worktree.userTemplate.copy force a
// specific entry to that mode. Entries whose target already exists are
// skipped. Returns the entries that were applied.
func Apply(ctx context.Context, repo, explicit string) ([]Applied, error) {
	source, err := Resolve(ctx, repo, explicit)
	if errors.Is(err, ErrNoTemplateDir) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	mode, err := globalMode(ctx, repo)
	if err != nil {
		return nil, err
	}
	linkPaths, err := git.ConfigGetAll(ctx, repo, linkKey)
	if err != nil {
		return nil, err
	}
	copyPaths, err := git.ConfigGetAll(ctx, repo, copyKey)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	l := log.FromContext(ctx)
	var applied []Applied
	for _, entry := range entries {
		name := entry.Name()
		target := filepath.Join(repo, name)

		// Lstat so a dangling symlink still counts as existing
		if _, err := os.Lstat(target); err == nil {
			l.Debug("template: target exists, skipping", "path", name)
			continue
		}

		entryMode := mode
		switch {
		case slices.Contains(linkPaths, name):
			entryMode = ModeLink
		case slices.Contains(copyPaths, name):
			entryMode = ModeCopy
		}

		src := filepath.Join(source, name)
		switch entryMode {
		case ModeLink:
			// Directories are linked whole, not walked, so template
			// additions show up in already-applied repositories.
			err = os.Symlink(src, target)
		case ModeCopy:
			err = copyEntry(src, target)
		}
		if err != nil {
			return applied, fmt.Errorf("apply %s: %w", name, err)
		}
		applied = append(applied, Applied{Path: name, Mode: entryMode})
	}
	return applied, nil
}

// globalMode reads worktree.userTemplate.mode and requires it to be exactly
// "link" or "copy". Anything else, including unset, is a configuration
// error: template application never proceeds with an ambiguous default.
func globalMode(ctx context.Context, repo string) (Mode, error) {
	raw, err := git.ConfigGet(ctx, repo, modeKey, "")
	if err != nil {
		return "", err
	}
	switch Mode(raw) {
	case ModeLink, ModeCopy:
		return Mode(raw), nil
	}
	return "", &workflow.ConfigError{
		Key:    modeKey,
		Reason: fmt.Sprintf("must be %q or %q, got %q", ModeLink, ModeCopy, raw),
	}
}

// copyEntry copies a file or directory tree, preserving directory
// structure and file permission bits. Existing files are never overwritten.
func copyEntry(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		_, err := copyFile(src, dst)
		return err
	}

	return filepath.WalkDir(src, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		_, err = copyFile(p, target)
		return err
	})
}

// copyFile copies src to dst, creating parent directories as needed.
// Uses O_CREATE|O_EXCL so an existing file is skipped, never overwritten.
// Preserves the source file's permission bits. Returns whether the file
// was copied.
func copyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer dstFile.Close()

	srcFile, err := os.Open(src)
	if err != nil {
		os.Remove(dst) // clean up empty dst
		return false, err
	}
	defer srcFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst) // clean up partial dst
		return false, err
	}

	return true, nil
}
