package ui

import (
	"strings"
	"testing"

	"status-trace/internal/timeline"
)

func TestApplyEntriesNewestFirst(t *testing.T) {
	m := NewModel(t.TempDir())
	m.applyEntries([]timeline.Entry{
		{Timestamp: "2024-01-01 09:00:00", Body: "oldest"},
		{Timestamp: "2024-01-01 10:00:00", Body: "middle"},
		{Timestamp: "2024-01-01 11:00:00", Body: "newest"},
	})

	if len(m.entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(m.entries))
	}
	if m.entries[0].Body != "newest" || m.entries[2].Body != "oldest" {
		t.Fatalf("entries not reversed: %q first, %q last", m.entries[0].Body, m.entries[2].Body)
	}
	if m.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d, want 0", m.selectedIdx)
	}
	if m.status != "3 entries" {
		t.Errorf("status = %q", m.status)
	}
}

func TestApplyEntriesEmpty(t *testing.T) {
	m := NewModel(t.TempDir())
	m.applyEntries(nil)
	if m.selectedIdx != -1 {
		t.Errorf("selectedIdx = %d, want -1", m.selectedIdx)
	}
	if m.status != "Empty timeline" {
		t.Errorf("status = %q", m.status)
	}
}

func TestEntryItemRendering(t *testing.T) {
	item := entryItem{e: timeline.Entry{
		Timestamp: "2024-01-01 12:00:00",
		Body:      "first line of the entry\nsecond line",
	}}
	if item.Title() != "2024-01-01 12:00:00" {
		t.Errorf("title = %q", item.Title())
	}
	if item.Description() != "first line of the entry" {
		t.Errorf("description = %q", item.Description())
	}

	long := entryItem{e: timeline.Entry{Body: strings.Repeat("x", 200)}}
	if desc := long.Description(); len(desc) > 70 {
		t.Errorf("description not truncated: %d chars", len(desc))
	}
	if (entryItem{}).Title() != "(undated entry)" {
		t.Error("missing fallback title")
	}
}

func TestEntryMarkdownRoundTrip(t *testing.T) {
	e := timeline.Entry{Timestamp: "2024-01-01 12:00:00", Body: "**Session Summary**: did things."}
	md := entryMarkdown(e)
	want := timeline.EntryMarker + "2024-01-01 12:00:00\n\n**Session Summary**: did things.\n"
	if md != want {
		t.Errorf("entryMarkdown = %q, want %q", md, want)
	}
}
