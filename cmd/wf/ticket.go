package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/wfcli/wf/internal/log"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/ticket"
)

// runTicketShow prints the ticket associated with a branch, searching the
// branch name, description trailers, upstream name and first commit.
func runTicketShow(ctx context.Context, repo, branch string) error {
	out := output.FromContext(ctx)

	t, ok, err := ticket.FromRepo(ctx, repo, branch)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w for %s", ticket.ErrNoTicket, branch)
	}
	out.Println(t)
	return nil
}

func runTicketNormalize(ctx context.Context, repo, raw string) error {
	normalized, err := ticket.Normalize(ctx, repo, raw)
	if err != nil {
		return err
	}
	output.FromContext(ctx).Println(normalized)
	return nil
}

// runTicketURL prints the browsable URL for a ticket. An empty raw ticket
// means the current branch's ticket.
func runTicketURL(ctx context.Context, repo, raw string, copyToClipboard bool) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	if raw == "" {
		branch, err := resolveBranchArg(ctx, repo, "")
		if err != nil {
			return err
		}
		t, ok, err := ticket.FromRepo(ctx, repo, branch)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w for %s", ticket.ErrNoTicket, branch)
		}
		raw = t
	}

	url, err := ticket.URL(ctx, repo, raw)
	if err != nil {
		return err
	}
	out.Println(url)

	if copyToClipboard {
		if err := clipboard.WriteAll(url); err != nil {
			l.Printf("Warning: could not copy to clipboard: %v\n", err)
		} else {
			l.Println("Copied to clipboard")
		}
	}
	return nil
}
