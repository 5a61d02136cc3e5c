package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/ui"
)

// runSwitch switches to the branch matching pattern. A single match
// switches directly; several matches open the fuzzy picker on a TTY and
// are an error otherwise.
func runSwitch(ctx context.Context, repo, pattern, remote string) error {
	out := output.FromContext(ctx)

	branches, err := git.FindBranches(ctx, repo, pattern, remote)
	if err != nil {
		return err
	}

	var branch string
	switch len(branches) {
	case 0:
		return fmt.Errorf("no branch matches %q", pattern)
	case 1:
		branch = branches[0]
	default:
		branch, err = pickBranch(ctx, repo, branches)
		if err != nil {
			return err
		}
		if branch == "" {
			return nil // cancelled
		}
	}

	if err := git.Switch(ctx, repo, branch); err != nil {
		return err
	}
	out.Printf("Switched to %s\n", branch)
	return nil
}

// pickBranch selects one of several candidate branches. Descriptions are
// shown alongside the names when present.
func pickBranch(ctx context.Context, repo string, branches []string) (string, error) {
	if !ui.IsInteractive() {
		return "", fmt.Errorf("pattern matches several branches:\n  %s", strings.Join(branches, "\n  "))
	}

	descriptions, err := git.AllBranchDescriptions(ctx, repo)
	if err != nil {
		return "", err
	}

	items := make([]ui.Item, len(branches))
	for i, b := range branches {
		items[i] = ui.Item{
			Label:       b,
			Description: summaryLine(descriptions[b]),
		}
	}

	result, err := ui.Pick("Switch to branch:", items)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", nil
	}
	return result.Item.Label, nil
}

// summaryLine returns the first line of a branch description.
func summaryLine(text string) string {
	if text == "" {
		return ""
	}
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
