package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/paths"
	"github.com/wfcli/wf/internal/ui/static"
)

// repoInfo is the per-repository listing record, also used for JSON output.
type repoInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Branch string `json:"branch"`
	Dirty  bool   `json:"dirty"`
	Origin string `json:"origin,omitempty"`
}

// runRepos scans the configured repo_dir for repositories and lists them.
func runRepos(ctx context.Context, root, sortBy string, jsonOutput bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if root == "" {
		return fmt.Errorf("no repo_dir configured (set it in the config file, see 'wf config path')")
	}
	root, err := paths.Resolve(root)
	if err != nil {
		return err
	}

	found, err := paths.Find(root, cfg.IgnoreFile)
	if err != nil {
		return err
	}

	infos := make([]repoInfo, 0, len(found))
	for _, repo := range found {
		info, err := describeRepo(ctx, repo)
		if err != nil {
			// A broken repo should not break the listing.
			l.Printf("Warning: %s: %v\n", repo, err)
			continue
		}
		infos = append(infos, info)
	}

	sortRepos(infos, sortBy)

	if jsonOutput {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		out.Printf("No repositories found under %s\n", root)
		return nil
	}

	var rows [][]string
	for _, info := range infos {
		rows = append(rows, static.RepoTableRow(info.Name, info.Branch, info.Path, info.Dirty))
	}
	out.Print(static.RenderTable(static.RepoTableHeaders, rows))
	return nil
}

// describeRepo collects the listing record for one repository.
func describeRepo(ctx context.Context, repo string) (repoInfo, error) {
	info := repoInfo{Name: filepath.Base(repo), Path: repo}

	branch, err := git.CurrentBranch(ctx, repo)
	switch {
	case errors.Is(err, git.ErrDetachedHead):
		info.Branch = "(detached)"
	case err != nil:
		return info, err
	default:
		info.Branch = branch
	}

	dirty, err := git.IsDirty(ctx, repo)
	if err != nil {
		return info, err
	}
	info.Dirty = dirty

	origin, err := git.OriginURL(ctx, repo)
	if err != nil {
		return info, err
	}
	info.Origin = origin

	return info, nil
}

func sortRepos(infos []repoInfo, sortBy string) {
	switch sortBy {
	case "branch":
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Branch != infos[j].Branch {
				return infos[i].Branch < infos[j].Branch
			}
			return infos[i].Name < infos[j].Name
		})
	default: // name
		sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	}
}
