package timeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUpdateCreatesStatusFile(t *testing.T) {
	dir := t.TempDir()
	payload := "**Session Summary**: Basic test session. Tools: Read, Write."

	if err := Update(dir, payload); err != nil {
		t.Fatalf("update: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, StatusFileName))
	if err != nil {
		t.Fatalf("status file not created: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Project Status") {
		t.Errorf("fresh file should start with the header, got %q", content[:40])
	}
	if strings.Count(content, EntryMarker) != 1 {
		t.Errorf("expected 1 entry marker, got %d", strings.Count(content, EntryMarker))
	}
	if !strings.Contains(content, payload) {
		t.Error("summary missing from file")
	}
}

func TestUpdateAppendsInCallOrder(t *testing.T) {
	dir := t.TempDir()
	first := "**Session Summary**: First session. Tools: Read."
	second := "**Session Summary**: Second session. Tools: Write."

	if err := Update(dir, first); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := Update(dir, second); err != nil {
		t.Fatalf("second update: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, StatusFileName))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if got := strings.Count(content, EntryMarker); got != 2 {
		t.Fatalf("expected 2 entry markers, got %d", got)
	}
	if strings.Count(content, first) != 1 || strings.Count(content, second) != 1 {
		t.Fatal("each summary should appear exactly once")
	}
	if strings.Index(content, first) > strings.Index(content, second) {
		t.Fatal("entries out of call order")
	}
	if strings.Count(content, "# Project Status") != 1 {
		t.Fatal("header must be written only once")
	}
}

func TestUpdateRejectsNonexistentDirectory(t *testing.T) {
	deep := filepath.Join(t.TempDir(), "does", "not", "exist")

	err := Update(deep, "anything")
	if err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
	if _, statErr := os.Stat(deep); !os.IsNotExist(statErr) {
		t.Fatal("update must not create the target path")
	}
}

func TestUpdateRejectsFileTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a-file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Update(path, "anything"); err == nil {
		t.Fatal("expected error when target is a file")
	}
}

func TestUpdateUnicodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := "**Session Summary**: símböls and üñíčødé — even emoji ✅ and quotes \"«»\"."

	if err := Update(dir, payload); err != nil {
		t.Fatalf("update: %v", err)
	}
	entries, err := Entries(dir)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Body != payload {
		t.Fatalf("unicode content altered:\nwrote: %q\nread:  %q", payload, entries[0].Body)
	}
}

func TestUpdateThreeSequentialEntries(t *testing.T) {
	dir := t.TempDir()
	payloads := []string{
		"**Session Summary**: Sequential test 1. Tools: Read.",
		"**Session Summary**: Sequential test 2. Tools: Write.",
		"**Session Summary**: Sequential test 3. Tools: Edit.",
	}
	for _, p := range payloads {
		if err := Update(dir, p); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	entries, err := Entries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, p := range payloads {
		if entries[i].Body != p {
			t.Errorf("entry %d body=%q, want %q", i, entries[i].Body, p)
		}
	}
}

func TestBuildEntry(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 5, 9, 0, time.Local)
	got := BuildEntry("hello", now)
	want := "\n" + EntryMarker + "2026-08-30 14:05:09\n\nhello\n"
	if got != want {
		t.Fatalf("entry mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestEntriesMissingFile(t *testing.T) {
	entries, err := Entries(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestEntriesParsesTimestamps(t *testing.T) {
	dir := t.TempDir()
	if err := Update(dir, "timed entry"); err != nil {
		t.Fatal(err)
	}
	entries, err := Entries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].When.IsZero() {
		t.Fatalf("heading timestamp %q did not parse", entries[0].Timestamp)
	}
	if time.Since(entries[0].When) > time.Minute {
		t.Fatalf("parsed timestamp %v is not recent", entries[0].When)
	}
}

func TestEntriesMultilineBody(t *testing.T) {
	dir := t.TempDir()
	payload := "line one\n\nline three with **markup**"
	if err := Update(dir, payload); err != nil {
		t.Fatal(err)
	}
	entries, err := Entries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Body != payload {
		t.Fatalf("multiline body altered: %q", entries[0].Body)
	}
}
