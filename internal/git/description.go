package git

import (
	"context"
	"strings"
)

// descriptionKey returns the config key storing a branch's description.
// This is the same key `git branch --edit-description` writes.
func descriptionKey(branch string) string {
	return "branch." + branch + ".description"
}

// BranchDescription returns the stored description for a branch,
// empty when none is set.
func BranchDescription(ctx context.Context, dir, branch string) (string, error) {
	return ConfigGet(ctx, dir, descriptionKey(branch), "")
}

// SetBranchDescription stores a description for a branch.
func SetBranchDescription(ctx context.Context, dir, branch, text string) error {
	return ConfigSet(ctx, dir, descriptionKey(branch), text)
}

// ClearBranchDescription removes a branch's description.
// A branch without one is not an error.
func ClearBranchDescription(ctx context.Context, dir, branch string) error {
	return ConfigUnsetAll(ctx, dir, descriptionKey(branch))
}

// AllBranchDescriptions returns every stored branch description keyed by
// branch name. Entries are read NUL-delimited so multi-line descriptions
// survive intact.
func AllBranchDescriptions(ctx context.Context, dir string) (map[string]string, error) {
	out, err := outputGit(ctx, dir, "config", "-z", "--get-regexp", `^branch\..*\.description$`)
	if err != nil {
		// Exit code 1 means no keys matched
		if hasExitCode(err, 1) {
			return nil, nil
		}
		return nil, err
	}

	descriptions := make(map[string]string)
	for entry := range strings.SplitSeq(out, "\x00") {
		if entry == "" {
			continue
		}
		// With -z the key and value are separated by a newline
		key, value, ok := strings.Cut(entry, "\n")
		if !ok {
			continue
		}
		branch := strings.TrimSuffix(strings.TrimPrefix(key, "branch."), ".description")
		descriptions[branch] = value
	}
	return descriptions, nil
}
