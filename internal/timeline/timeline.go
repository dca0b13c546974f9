// Package timeline appends session summaries to a project's
// PROJECT_STATUS.md file. The file is append-only: entries are never
// rewritten or reordered.
package timeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// StatusFileName is the status file maintained inside each project
	// directory.
	StatusFileName = "PROJECT_STATUS.md"

	// EntryMarker starts every appended entry heading.
	EntryMarker = "## Session Export - "

	// TimestampLayout keeps entry headings lexically sortable.
	TimestampLayout = "2006-01-02 15:04:05"

	fileHeader = "# Project Status\n\nSession timeline, most recent entry last.\n"
)

// ErrNoStatusDir reports that the target directory does not exist. Update
// never creates directories; the project directory must already be there.
var ErrNoStatusDir = errors.New("status directory does not exist")

// Update appends one timestamped entry containing summary to the status file
// inside dir, creating the file (with its header) on first use. A nil return
// means the entry was written; any failure is reported as an error, never a
// panic.
func Update(dir, summary string) error {
	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoStatusDir, dir)
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNoStatusDir, dir)
	}

	path := filepath.Join(dir, StatusFileName)
	fresh := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fresh = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open status file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	if fresh {
		b.WriteString(fileHeader)
	}
	b.WriteString(BuildEntry(summary, time.Now()))

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append status entry: %w", err)
	}
	return nil
}

// BuildEntry renders one timeline entry: a marker heading with the timestamp
// followed by the summary text verbatim.
func BuildEntry(summary string, now time.Time) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(EntryMarker + now.Format(TimestampLayout) + "\n\n")
	b.WriteString(summary)
	b.WriteString("\n")
	return b.String()
}
