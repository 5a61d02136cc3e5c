package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	Ok     string
	Failed string
	Skip   string
	Dirty  string
	Branch string
	Ticket string
}

// Default symbols (ASCII-safe)
var defaultSymbols = Symbols{
	Ok:     "✓",
	Failed: "✗",
	Skip:   "○",
	Dirty:  "*",
	Branch: "»",
	Ticket: "#",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Ok:     "", // nf-fa-check
	Failed: "", // nf-fa-times
	Skip:   "", // nf-fa-dot_circle_o
	Dirty:  "", // nf-fa-asterisk
	Branch: "", // nf-pl-branch
	Ticket: "", // nf-fa-tag
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// OkSymbol returns the symbol for successful steps
func OkSymbol() string {
	return currentSymbols.Ok
}

// FailedSymbol returns the symbol for failed steps
func FailedSymbol() string {
	return currentSymbols.Failed
}

// SkipSymbol returns the symbol for skipped steps
func SkipSymbol() string {
	return currentSymbols.Skip
}

// DirtySymbol returns the symbol marking a repository with uncommitted changes
func DirtySymbol() string {
	return currentSymbols.Dirty
}

// BranchSymbol returns the symbol prefixing branch names
func BranchSymbol() string {
	return currentSymbols.Branch
}

// TicketSymbol returns the symbol prefixing ticket references
func TicketSymbol() string {
	return currentSymbols.Ticket
}

// FormatStepStatus returns a colored symbol plus status word for a setup
// step outcome. status should be "ok", "skipped", or "failed".
func FormatStepStatus(status string) string {
	switch status {
	case "ok":
		return SuccessStyle.Render(currentSymbols.Ok + " ok")
	case "skipped":
		return MutedStyle.Render(currentSymbols.Skip + " skipped")
	case "failed":
		return ErrorStyle.Render(currentSymbols.Failed + " failed")
	default:
		return status
	}
}

// FormatTicketRef returns a colored ticket reference with an OSC 8
// hyperlink when a URL is available. Returns empty string for an
// empty ticket.
func FormatTicketRef(ticket, url string) string {
	if ticket == "" {
		return ""
	}

	var style lipgloss.Style
	if url != "" {
		style = PrimaryStyle
	} else {
		style = NormalStyle
	}

	text := currentSymbols.Ticket + " " + ticket

	if url != "" {
		styled := style.Underline(true).Render(text)
		return ansi.SetHyperlink(url) + styled + ansi.ResetHyperlink()
	}
	return style.Render(text)
}
