package main

import (
	"context"
	"fmt"

	"github.com/wfcli/wf/internal/desc"
	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/output"
	"github.com/wfcli/wf/internal/ticket"
)

// loadDescription reads and parses the branch's description. A missing
// description parses to an empty Description.
func loadDescription(ctx context.Context, repo, branch string) (*desc.Description, error) {
	text, err := git.BranchDescription(ctx, repo, branch)
	if err != nil {
		return nil, err
	}
	return desc.Parse(text), nil
}

// storeDescription writes the description back to git config.
func storeDescription(ctx context.Context, repo, branch string, d *desc.Description) error {
	return git.SetBranchDescription(ctx, repo, branch, d.Format())
}

func runDescShow(ctx context.Context, repo, branch string) error {
	out := output.FromContext(ctx)

	text, err := git.BranchDescription(ctx, repo, branch)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no description on %s", branch)
	}
	out.Println(text)
	return nil
}

// runDescSet updates the summary, keeping existing trailers. With a ticket
// it replaces the whole description with a freshly seeded one.
func runDescSet(ctx context.Context, repo, branch, summary, rawTicket string) error {
	var d *desc.Description
	if rawTicket != "" {
		normalized, err := ticket.Normalize(ctx, repo, rawTicket)
		if err != nil {
			return err
		}
		d = desc.Build(summary, normalized, nil)
	} else {
		var err error
		if d, err = loadDescription(ctx, repo, branch); err != nil {
			return err
		}
		d.Summary = summary
	}
	if err := storeDescription(ctx, repo, branch, d); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Description set on %s\n", branch)
	return nil
}

func runDescAdd(ctx context.Context, repo, branch, key, value string) error {
	d, err := loadDescription(ctx, repo, branch)
	if err != nil {
		return err
	}
	d.Add(key, value)
	if err := storeDescription(ctx, repo, branch, d); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("%s added on %s\n", key, branch)
	return nil
}

func runDescReplace(ctx context.Context, repo, branch, key, value string) error {
	d, err := loadDescription(ctx, repo, branch)
	if err != nil {
		return err
	}
	d.Replace(key, value)
	if err := storeDescription(ctx, repo, branch, d); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("%s replaced on %s\n", key, branch)
	return nil
}

// runDescTicket normalizes the ticket and records it as a Ticket trailer.
func runDescTicket(ctx context.Context, repo, branch, rawTicket string) error {
	normalized, err := ticket.Normalize(ctx, repo, rawTicket)
	if err != nil {
		return err
	}

	d, err := loadDescription(ctx, repo, branch)
	if err != nil {
		return err
	}
	d.Add("Ticket", normalized)
	if err := storeDescription(ctx, repo, branch, d); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Ticket %s recorded on %s\n", normalized, branch)
	return nil
}

func runDescClear(ctx context.Context, repo, branch string) error {
	if err := git.ClearBranchDescription(ctx, repo, branch); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Description cleared from %s\n", branch)
	return nil
}
