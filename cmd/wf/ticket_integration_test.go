//go:build integration

package main

import (
	"strings"
	"testing"
)

// TestTicketNormalize expands a bare number with the configured prefix.
func TestTicketNormalize(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "config", "workflow.ticket.prefix", "PROJ")

	ctx, buf := testContext(t)

	if err := runTicketNormalize(ctx, repo, "42"); err != nil {
		t.Fatalf("runTicketNormalize() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "PROJ-42" {
		t.Errorf("output = %q, want %q", got, "PROJ-42")
	}
}

// TestTicketShowFromBranchName extracts the ticket from the branch name.
func TestTicketShowFromBranchName(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "switch", "-c", "proj-9-login")

	ctx, buf := testContext(t)

	if err := runTicketShow(ctx, repo, "proj-9-login"); err != nil {
		t.Fatalf("runTicketShow() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "PROJ-9" {
		t.Errorf("output = %q, want %q", got, "PROJ-9")
	}
}

// TestTicketURL builds the URL from the configured pattern.
func TestTicketURL(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	runGitCommand(t, repo, "config", "workflow.ticket.urlPattern", "https://tracker.example.com/browse/%(ticket)")

	ctx, buf := testContext(t)

	if err := runTicketURL(ctx, repo, "PROJ-42", false); err != nil {
		t.Fatalf("runTicketURL() error = %v", err)
	}
	want := "https://tracker.example.com/browse/PROJ-42"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestTicketURLMissingPattern is a configuration error naming the key.
func TestTicketURLMissingPattern(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, _ := testContext(t)

	err := runTicketURL(ctx, repo, "PROJ-42", false)
	if err == nil {
		t.Fatal("runTicketURL() expected error without urlPattern")
	}
	if !strings.Contains(err.Error(), "workflow.ticket.urlPattern") {
		t.Errorf("error should name the config key, got %v", err)
	}
}
