package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/wfcli/wf/internal/ui/styles"
)

// Item is a selectable entry in the picker.
type Item struct {
	Label       string // primary text, matched by the filter
	Description string // optional secondary text shown dimmed
}

// PickResult contains the result of a picker run.
type PickResult struct {
	Item      Item
	Index     int // index into the original items slice
	Cancelled bool
}

// itemSource implements fuzzy.Source for items.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

// pickerModel is the bubbletea model for fuzzy item selection.
type pickerModel struct {
	title     string
	items     []Item
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  int // index into items, -1 if none
	cancelled bool
	done      bool
	maxHeight int
}

func newPickerModel(title string, items []Item) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(40)

	filtered := make([]fuzzy.Match, len(items))
	for i := range items {
		filtered[i] = fuzzy.Match{
			Str:   items[i].Label,
			Index: i,
		}
	}

	return pickerModel{
		title:     title,
		items:     items,
		filtered:  filtered,
		textInput: ti,
		selected:  -1,
		maxHeight: 10,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
			}
			m.done = true
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	// Handle text input
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	// Re-filter on input changes
	m.filtered = m.filterItems(m.textInput.Value())

	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

func (m pickerModel) filterItems(query string) []fuzzy.Match {
	if query == "" {
		all := make([]fuzzy.Match, len(m.items))
		for i := range m.items {
			all[i] = fuzzy.Match{
				Str:   m.items[i].Label,
				Index: i,
			}
		}
		return all
	}

	// Results are sorted by score, best match first
	return fuzzy.FindFrom(query, itemSource(m.items))
}

func (m pickerModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var sb strings.Builder

	sb.WriteString(m.title + "\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		// Calculate visible range, keeping the cursor centered
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			match := m.filtered[i]
			item := m.items[match.Index]

			if i == m.cursor {
				sb.WriteString(styles.AccentStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(m.renderLabel(item.Label, match.MatchedIndexes, i == m.cursor))
			if item.Description != "" {
				sb.WriteString(styles.MutedStyle.Render(" (" + item.Description + ")"))
			}
			sb.WriteString("\n")
		}

		// Show scroll indicator
		if len(m.filtered) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return tea.NewView(sb.String())
}

// renderLabel highlights matched characters in the label.
func (m pickerModel) renderLabel(label string, matchedIndexes []int, isSelected bool) string {
	base := styles.NormalStyle
	if isSelected {
		base = styles.AccentStyle
	}

	if len(matchedIndexes) == 0 {
		return base.Render(label)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result strings.Builder
	for i, r := range []rune(label) {
		if matchSet[i] {
			result.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			result.WriteString(base.Render(string(r)))
		}
	}
	return result.String()
}

// Pick shows an interactive fuzzy search picker over the given items.
// The TUI renders to stderr so stdout remains available for piping.
func Pick(title string, items []Item) (PickResult, error) {
	if len(items) == 0 {
		return PickResult{Cancelled: true}, nil
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	model := newPickerModel(title, items)
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	m := finalModel.(pickerModel)
	if m.cancelled || m.selected < 0 {
		return PickResult{Cancelled: true}, nil
	}
	return PickResult{Item: m.items[m.selected], Index: m.selected}, nil
}
