// Package static renders non-interactive output for branch and repository
// listings: borderless aligned tables plus the row builders feeding them.
package static

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// RenderTable renders headers and rows as a borderless table with bold
// headers; lipgloss/table sizes the columns from the content. No rows
// renders as empty output.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	header := cell.Bold(true)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String() + "\n"
}
