package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/wfcli/wf/internal/desc"
	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/ticket"
	"github.com/wfcli/wf/internal/ui/static"
)

// branchInfo is the per-branch listing record, also used for JSON output.
type branchInfo struct {
	Name    string `json:"name"`
	Current bool   `json:"current"`
	Ticket  string `json:"ticket,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// runBranches lists branches matching pattern.
func runBranches(ctx context.Context, repo, pattern, remote string, withDescriptions, jsonOutput bool) error {
	out := output.FromContext(ctx)

	branches, err := git.FindBranches(ctx, repo, pattern, remote)
	if err != nil {
		return err
	}

	// Plain listing is the default: one name per line, pipeable.
	if !withDescriptions && !jsonOutput {
		for _, b := range branches {
			out.Println(b)
		}
		return nil
	}

	infos, err := collectBranchInfo(ctx, repo, branches)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	var rows [][]string
	for _, info := range infos {
		rows = append(rows, static.BranchTableRow(info.Name, info.Current, info.Ticket, "", info.Summary))
	}
	out.Print(static.RenderTable(static.BranchTableHeaders, rows))
	return nil
}

// collectBranchInfo looks up the current branch, descriptions and tickets
// for each branch name.
func collectBranchInfo(ctx context.Context, repo string, branches []string) ([]branchInfo, error) {
	current, err := git.CurrentBranch(ctx, repo)
	if err != nil && !errors.Is(err, git.ErrDetachedHead) {
		return nil, err
	}

	descriptions, err := git.AllBranchDescriptions(ctx, repo)
	if err != nil {
		return nil, err
	}

	infos := make([]branchInfo, 0, len(branches))
	for _, b := range branches {
		info := branchInfo{Name: b, Current: b == current}

		if text := descriptions[b]; text != "" {
			d := desc.Parse(text)
			info.Summary = summaryLine(d.Summary)
			if t, ok := d.Get("Ticket"); ok {
				info.Ticket = t
			}
		}
		if info.Ticket == "" {
			if t, ok := ticket.ExtractFromBranch(b); ok {
				info.Ticket = t
			}
		}

		infos = append(infos, info)
	}
	return infos, nil
}
