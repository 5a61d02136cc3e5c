package static

import (
	"github.com/wfcli/wf/internal/ui/styles"
)

// BranchTableHeaders are the column headers used by branch listings.
var BranchTableHeaders = []string{"", "BRANCH", "TICKET", "DESCRIPTION"}

// BranchTableRow builds a table row for a branch listing.
// The first column marks the currently checked out branch.
func BranchTableRow(name string, current bool, ticket, ticketURL, description string) []string {
	marker := ""
	branch := name
	if current {
		marker = styles.BranchSymbol()
		branch = styles.AccentStyle.Render(name)
	}

	return []string{
		marker,
		branch,
		styles.FormatTicketRef(ticket, ticketURL),
		description,
	}
}

// RepoTableHeaders are the column headers used by repository listings.
var RepoTableHeaders = []string{"REPO", "BRANCH", "PATH"}

// RepoTableRow builds a table row for a repository listing.
// A repository with uncommitted changes gets a marker appended to the
// branch cell.
func RepoTableRow(name, branch, path string, dirty bool) []string {
	if dirty {
		branch += " " + styles.WarningStyle.Render(styles.DirtySymbol())
	}
	return []string{name, branch, path}
}
