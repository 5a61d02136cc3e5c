// Package ticket normalizes ticket identifiers, builds browsable ticket
// URLs and extracts tickets from branch names and their descriptions.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wfcli/wf/internal/desc"
	"github.com/wfcli/wf/internal/git"
	"github.com/wfcli/wf/internal/workflow"
)

// ErrNoTicket indicates no ticket could be found for a branch. Callers that
// treat "no ticket" as an expected case should use the ok-returning
// functions instead.
var ErrNoTicket = errors.New("no ticket found")

var (
	bareNumberRe = regexp.MustCompile(`^\d+$`)
	prefixedRe   = regexp.MustCompile(`^([A-Za-z]+)-(\d+)$`)
	hashRe       = regexp.MustCompile(`^#\d+$`)
	extractRe    = regexp.MustCompile(`[A-Za-z]+-\d+|#\d+`)
)

// Normalize canonicalizes ticket to PREFIX-number form. A prefixed ticket
// has its prefix upper-cased; a bare number gets the configured
// workflow.ticket.prefix prepended; an issue-style #number passes through
// unchanged. A bare number with no configured prefix is a configuration
// error. Normalize is idempotent.
func Normalize(ctx context.Context, dir, ticket string) (string, error) {
	ticket = strings.TrimSpace(ticket)

	if m := prefixedRe.FindStringSubmatch(ticket); m != nil {
		return strings.ToUpper(m[1]) + "-" + m[2], nil
	}

	if hashRe.MatchString(ticket) {
		return ticket, nil
	}

	if bareNumberRe.MatchString(ticket) {
		prefix, err := workflow.TicketPrefix(ctx, dir)
		if err != nil {
			return "", err
		}
		if prefix == "" {
			return "", &workflow.ConfigError{
				Key:    "workflow.ticket.prefix",
				Reason: fmt.Sprintf("no prefix configured for bare ticket number %q", ticket),
			}
		}
		return strings.ToUpper(prefix) + "-" + ticket, nil
	}

	return "", fmt.Errorf("invalid ticket %q: want a number or PREFIX-number", ticket)
}

// URL substitutes the normalized ticket into the configured
// workflow.ticket.urlPattern. A missing pattern is a configuration error.
func URL(ctx context.Context, dir, ticket string) (string, error) {
	normalized, err := Normalize(ctx, dir, ticket)
	if err != nil {
		return "", err
	}

	pattern, err := workflow.TicketURLPattern(ctx, dir)
	if err != nil {
		return "", err
	}
	if pattern == "" {
		return "", &workflow.ConfigError{
			Key:    "workflow.ticket.urlPattern",
			Reason: "no URL pattern configured",
		}
	}

	return workflow.ExpandFormat(pattern, map[string]string{"ticket": normalized}), nil
}

// ExtractFromBranch returns the first ticket-shaped token in the branch
// name, upper-cased, and whether one was found. Absence is an expected
// case, not an error.
func ExtractFromBranch(branch string) (string, bool) {
	match := extractRe.FindString(branch)
	if match == "" {
		return "", false
	}
	return strings.ToUpper(match), true
}

// FromRepo searches for a branch's ticket in order: the branch name, the
// branch description's Ticket trailers, the upstream branch name, and the
// subject of the first branch-only commit.
func FromRepo(ctx context.Context, dir, branch string) (string, bool, error) {
	if ticket, ok := ExtractFromBranch(branch); ok {
		return ticket, true, nil
	}

	text, err := git.BranchDescription(ctx, dir, branch)
	if err != nil {
		return "", false, err
	}
	for _, value := range desc.Parse(text).GetAll("Ticket") {
		if ticket, ok := ExtractFromBranch(value); ok {
			return ticket, true, nil
		}
	}

	upstream, err := git.UpstreamBranch(ctx, dir, branch)
	if err != nil {
		return "", false, err
	}
	if ticket, ok := ExtractFromBranch(upstream); ok {
		return ticket, true, nil
	}

	subject, err := firstSubject(ctx, dir, branch)
	if err != nil {
		return "", false, err
	}
	if ticket, ok := ExtractFromBranch(subject); ok {
		return ticket, true, nil
	}

	return "", false, nil
}

// firstSubject returns the subject of the branch's first own commit,
// using the remote HEAD's branch as base when it can be determined.
func firstSubject(ctx context.Context, dir, branch string) (string, error) {
	for _, base := range []string{"origin/HEAD", "main", "master"} {
		subject, err := git.FirstBranchCommit(ctx, dir, branch, base)
		if err == nil {
			return subject, nil
		}
	}
	return "", nil
}

// BranchMatches reports whether the branch belongs to the given ticket.
// The normalized ticket token is looked for in the branch name itself;
// when checkDetails is set and that fails, the branch's description
// trailers, upstream branch name and first own commit subject are
// inspected too.
func BranchMatches(ctx context.Context, dir, branch, ticket string, checkDetails bool) (bool, error) {
	normalized, err := Normalize(ctx, dir, ticket)
	if err != nil {
		return false, err
	}

	if containsToken(branch, normalized) {
		return true, nil
	}
	if !checkDetails {
		return false, nil
	}

	text, err := git.BranchDescription(ctx, dir, branch)
	if err != nil {
		return false, err
	}
	for _, value := range desc.Parse(text).GetAll("Ticket") {
		if strings.EqualFold(strings.TrimSpace(value), normalized) {
			return true, nil
		}
	}

	upstream, err := git.UpstreamBranch(ctx, dir, branch)
	if err != nil {
		return false, err
	}
	if containsToken(upstream, normalized) {
		return true, nil
	}

	subject, err := firstSubject(ctx, dir, branch)
	if err != nil {
		return false, err
	}
	return containsToken(subject, normalized), nil
}

// containsToken matches the ticket case-insensitively and requires the
// trailing digit run to end at a non-digit boundary, so PROJ-12 does not
// match a PROJ-123 branch.
func containsToken(s, ticket string) bool {
	lower, token := strings.ToLower(s), strings.ToLower(ticket)
	for i := 0; ; {
		j := strings.Index(lower[i:], token)
		if j < 0 {
			return false
		}
		end := i + j + len(token)
		if end == len(lower) || lower[end] < '0' || lower[end] > '9' {
			return true
		}
		i = i + j + 1
	}
}
