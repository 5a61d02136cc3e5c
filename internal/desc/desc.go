// Package desc parses and formats structured branch descriptions.
//
// A description is a free-text summary (possibly several paragraphs), a
// blank-line separator, then trailer lines of the form "Key: value", the
// same shape git itself uses for commit trailers. Keys are matched
// case-insensitively but keep their original casing on output. Some keys
// (Ticket) are multi-valued.
package desc

import (
	"strings"
)

// Trailer is a single Key: value line.
type Trailer struct {
	Key   string
	Value string
}

// Description is a parsed branch description: a summary plus ordered
// trailers.
type Description struct {
	Summary  string
	Trailers []Trailer
}

// Parse splits text into summary and trailers.
//
// The trailer block is the run of lines after the last blank line, and only
// when its first line has the Key: value shape; everything before it,
// including further paragraphs and blank lines, is the summary. Within the
// block, a line without the Key: value shape continues the previous
// trailer's value, joined by a single space, so long values can wrap. Text
// whose final paragraph is free prose is all summary.
func Parse(text string) *Description {
	d := &Description{}
	if strings.TrimSpace(text) == "" {
		return d
	}

	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			start = i + 1
		}
	}
	if _, _, ok := splitTrailer(lines[start]); !ok {
		// No trailing trailer block
		d.Summary = strings.TrimSpace(text)
		return d
	}

	d.Summary = strings.TrimSpace(strings.Join(lines[:start], "\n"))
	for _, line := range lines[start:] {
		key, value, ok := splitTrailer(line)
		if !ok {
			// Continuation of the previous trailer's value
			n := len(d.Trailers)
			d.Trailers[n-1].Value += " " + strings.TrimSpace(line)
			continue
		}
		d.Trailers = append(d.Trailers, Trailer{Key: key, Value: value})
	}
	return d
}

// splitTrailer splits "Key: value" on the first colon. The key must be
// non-empty and contain no spaces; the value is left-trimmed.
func splitTrailer(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found || key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimLeft(value, " \t"), true
}

// Get returns the first value for key, matched case-insensitively,
// and whether it was present.
func (d *Description) Get(key string) (string, bool) {
	for _, t := range d.Trailers {
		if strings.EqualFold(t.Key, key) {
			return t.Value, true
		}
	}
	return "", false
}

// GetAll returns all values for key in insertion order.
func (d *Description) GetAll(key string) []string {
	var values []string
	for _, t := range d.Trailers {
		if strings.EqualFold(t.Key, key) {
			values = append(values, t.Value)
		}
	}
	return values
}

// Add appends a trailer, preserving multi-valued semantics.
func (d *Description) Add(key, value string) {
	d.Trailers = append(d.Trailers, Trailer{Key: key, Value: value})
}

// Replace removes every trailer matching key (any casing) and inserts one
// new entry at the position of the first removed trailer, or appends when
// none existed.
func (d *Description) Replace(key, value string) {
	insert := -1
	kept := d.Trailers[:0]
	for _, t := range d.Trailers {
		if strings.EqualFold(t.Key, key) {
			if insert < 0 {
				insert = len(kept)
			}
			continue
		}
		kept = append(kept, t)
	}
	d.Trailers = kept
	if insert < 0 {
		insert = len(d.Trailers)
	}
	d.Trailers = append(d.Trailers[:insert],
		append([]Trailer{{Key: key, Value: value}}, d.Trailers[insert:]...)...)
}

// Format renders the description back to text. It is the exact inverse of
// Parse for any description built through Get/Add/Replace: parsing the
// result and formatting again yields the same text.
func (d *Description) Format() string {
	var b strings.Builder
	b.WriteString(d.Summary)
	if d.Summary != "" && len(d.Trailers) > 0 {
		b.WriteString("\n\n")
	}
	for i, t := range d.Trailers {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Key)
		b.WriteString(": ")
		b.WriteString(t.Value)
	}
	return b.String()
}

// Build seeds a description with a summary and an optional Ticket trailer,
// plus any extra single-valued trailers.
func Build(summary, ticket string, extras map[string]string) *Description {
	d := &Description{Summary: summary}
	if ticket != "" {
		d.Add("Ticket", ticket)
	}
	for key, value := range extras {
		d.Replace(key, value)
	}
	return d
}
