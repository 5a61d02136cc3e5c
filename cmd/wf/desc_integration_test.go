//go:build integration

package main

import (
	"strings"
	"testing"
)

// TestDescSetAndShow covers the summary round trip through git config.
//
// Scenario: `wf desc set "Rework login"` then `wf desc show`
// Expected: summary stored in branch.main.description and printed back
func TestDescSetAndShow(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, buf := testContext(t)

	if err := runDescSet(ctx, repo, "main", "Rework login", ""); err != nil {
		t.Fatalf("runDescSet() error = %v", err)
	}

	stored := runGitCommand(t, repo, "config", "branch.main.description")
	if strings.TrimSpace(stored) != "Rework login" {
		t.Errorf("stored description = %q, want %q", strings.TrimSpace(stored), "Rework login")
	}

	buf.Reset()
	if err := runDescShow(ctx, repo, "main"); err != nil {
		t.Fatalf("runDescShow() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Rework login" {
		t.Errorf("show output = %q, want %q", got, "Rework login")
	}
}

// TestDescTicket normalizes a bare number against the configured prefix
// and records it as a Ticket trailer below the summary.
func TestDescTicket(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "config", "workflow.ticket.prefix", "PROJ")

	ctx, _ := testContext(t)

	if err := runDescSet(ctx, repo, "main", "Rework login", ""); err != nil {
		t.Fatalf("runDescSet() error = %v", err)
	}
	if err := runDescTicket(ctx, repo, "main", "42"); err != nil {
		t.Fatalf("runDescTicket() error = %v", err)
	}

	stored := runGitCommand(t, repo, "config", "branch.main.description")
	want := "Rework login\n\nTicket: PROJ-42"
	if strings.TrimSpace(stored) != want {
		t.Errorf("stored description = %q, want %q", strings.TrimSpace(stored), want)
	}
}

// TestDescSetSeedsTicket replaces an existing description wholesale when a
// ticket is given alongside the summary.
func TestDescSetSeedsTicket(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "config", "workflow.ticket.prefix", "PROJ")
	runGitCommand(t, repo, "config", "branch.main.description", "old summary\n\nReviewer: alice")

	ctx, _ := testContext(t)

	if err := runDescSet(ctx, repo, "main", "Rework login", "7"); err != nil {
		t.Fatalf("runDescSet() error = %v", err)
	}

	stored := runGitCommand(t, repo, "config", "branch.main.description")
	want := "Rework login\n\nTicket: PROJ-7"
	if strings.TrimSpace(stored) != want {
		t.Errorf("stored description = %q, want %q", strings.TrimSpace(stored), want)
	}
}

// TestDescClear removes the description; a second clear stays quiet.
func TestDescClear(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "config", "branch.main.description", "something")

	ctx, _ := testContext(t)

	if err := runDescClear(ctx, repo, "main"); err != nil {
		t.Fatalf("runDescClear() error = %v", err)
	}
	if err := runDescClear(ctx, repo, "main"); err != nil {
		t.Errorf("second runDescClear() error = %v, want nil", err)
	}

	if err := runDescShow(ctx, repo, "main"); err == nil {
		t.Error("runDescShow() after clear should report no description")
	}
}
