package main

import (
	"context"

	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/output"
)

// runCommits lists commits on HEAD matching the filter, newest first.
func runCommits(ctx context.Context, repo string, filter git.CommitFilter, mine bool) error {
	out := output.FromContext(ctx)

	if mine {
		email, err := git.UserEmail(ctx, repo)
		if err != nil {
			return err
		}
		filter.Author = email
	}

	commits, err := git.Commits(ctx, repo, filter)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		out.Println("No commits found")
		return nil
	}

	for _, c := range commits {
		out.Printf("%s  %s\n", shortHash(c.Hash), c.Subject)
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
