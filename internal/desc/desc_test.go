package desc

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantSummary string
		wantTrail   []Trailer
	}{
		{
			name:        "summary only",
			text:        "Fix login flow",
			wantSummary: "Fix login flow",
		},
		{
			name:        "summary and trailers",
			text:        "Fix login flow\n\nTicket: PROJ-123\nType: bugfix",
			wantSummary: "Fix login flow",
			wantTrail: []Trailer{
				{Key: "Ticket", Value: "PROJ-123"},
				{Key: "Type", Value: "bugfix"},
			},
		},
		{
			name: "trailers only",
			text: "Ticket: PROJ-123\nOwner: alice",
			wantTrail: []Trailer{
				{Key: "Ticket", Value: "PROJ-123"},
				{Key: "Owner", Value: "alice"},
			},
		},
		{
			name:        "continuation line joins previous value",
			text:        "Summary\n\nNote: a long value that\nwraps onto a second line",
			wantSummary: "Summary",
			wantTrail: []Trailer{
				{Key: "Note", Value: "a long value that wraps onto a second line"},
			},
		},
		{
			name:        "value keeps embedded colons",
			text:        "Summary\n\nUrl: https://example.com/x",
			wantSummary: "Summary",
			wantTrail: []Trailer{
				{Key: "Url", Value: "https://example.com/x"},
			},
		},
		{
			name:        "multi-line summary without trailers",
			text:        "First line\nsecond line",
			wantSummary: "First line\nsecond line",
		},
		{
			name:        "multi-paragraph summary without trailers",
			text:        "Fix the flaky login test\n\nThe retry loop masked the real timeout.",
			wantSummary: "Fix the flaky login test\n\nThe retry loop masked the real timeout.",
		},
		{
			name:        "multi-paragraph summary with trailer block",
			text:        "First paragraph\n\nSecond paragraph\n\nTicket: PROJ-1",
			wantSummary: "First paragraph\n\nSecond paragraph",
			wantTrail: []Trailer{
				{Key: "Ticket", Value: "PROJ-1"},
			},
		},
		{
			name:        "final paragraph of prose is not a trailer block",
			text:        "Summary\n\nthis closing paragraph has\nno Key: value lines up front",
			wantSummary: "Summary\n\nthis closing paragraph has\nno Key: value lines up front",
		},
		{
			name: "empty",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Parse(tt.text)
			if d.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", d.Summary, tt.wantSummary)
			}
			if !slices.Equal(d.Trailers, tt.wantTrail) {
				t.Errorf("Trailers = %v, want %v", d.Trailers, tt.wantTrail)
			}
		})
	}
}

func TestGetAll_InsertionOrder(t *testing.T) {
	t.Parallel()
	d := &Description{Summary: "s"}
	d.Add("Ticket", "PROJ-1")
	d.Add("Type", "feature")
	d.Add("ticket", "PROJ-2")
	d.Add("TICKET", "PROJ-3")

	got := d.GetAll("Ticket")
	want := []string{"PROJ-1", "PROJ-2", "PROJ-3"}
	if !slices.Equal(got, want) {
		t.Errorf("GetAll(Ticket) = %v, want %v (case-insensitive, insertion order)", got, want)
	}

	if v, ok := d.Get("tIcKeT"); !ok || v != "PROJ-1" {
		t.Errorf("Get(tIcKeT) = %q, %v, want PROJ-1, true", v, ok)
	}
	if _, ok := d.Get("Missing"); ok {
		t.Error("Get(Missing) = true, want false")
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	t.Run("replaces at first occurrence position", func(t *testing.T) {
		t.Parallel()
		d := &Description{}
		d.Add("Ticket", "PROJ-1")
		d.Add("Type", "feature")
		d.Add("ticket", "PROJ-2")

		d.Replace("Ticket", "PROJ-9")
		want := []Trailer{
			{Key: "Ticket", Value: "PROJ-9"},
			{Key: "Type", Value: "feature"},
		}
		if !slices.Equal(d.Trailers, want) {
			t.Errorf("Trailers = %v, want %v", d.Trailers, want)
		}
	})

	t.Run("appends when key absent", func(t *testing.T) {
		t.Parallel()
		d := &Description{}
		d.Add("Type", "feature")
		d.Replace("Owner", "alice")
		want := []Trailer{
			{Key: "Type", Value: "feature"},
			{Key: "Owner", Value: "alice"},
		}
		if !slices.Equal(d.Trailers, want) {
			t.Errorf("Trailers = %v, want %v", d.Trailers, want)
		}
	})
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() *Description
	}{
		{"summary only", func() *Description {
			return &Description{Summary: "Fix login flow"}
		}},
		{"trailers only", func() *Description {
			d := &Description{}
			d.Add("Ticket", "PROJ-1")
			d.Add("Ticket", "PROJ-2")
			return d
		}},
		{"combined", func() *Description {
			d := &Description{Summary: "Fix login flow"}
			d.Add("Ticket", "PROJ-1")
			d.Replace("Type", "bugfix")
			return d
		}},
		{"long value built from a continuation", func() *Description {
			return Parse("Summary\n\nNote: wraps onto\na second line")
		}},
		{"multi-paragraph summary", func() *Description {
			d := &Description{Summary: "First paragraph\n\nSecond paragraph"}
			d.Add("Ticket", "PROJ-1")
			return d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text := tt.build().Format()
			if got := Parse(text).Format(); got != text {
				t.Errorf("Parse(Format()).Format() = %q, want %q", got, text)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	d := Build("Add search", "PROJ-42", map[string]string{"Type": "feature"})
	if d.Summary != "Add search" {
		t.Errorf("Summary = %q, want %q", d.Summary, "Add search")
	}
	if v, _ := d.Get("Ticket"); v != "PROJ-42" {
		t.Errorf("Get(Ticket) = %q, want PROJ-42", v)
	}
	if v, _ := d.Get("Type"); v != "feature" {
		t.Errorf("Get(Type) = %q, want feature", v)
	}
}
