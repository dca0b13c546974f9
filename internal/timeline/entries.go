package timeline

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one parsed timeline block: the heading timestamp (raw and, when it
// parses, decoded) plus the body text that follows it.
type Entry struct {
	Timestamp string
	When      time.Time
	Body      string
}

// Entries reads the status file in dir back into its entries, oldest first.
// A missing file is not an error; it reads as zero entries.
func Entries(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, StatusFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	var body []string
	open := false

	flush := func() {
		if !open {
			return
		}
		entries[len(entries)-1].Body = strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, EntryMarker) {
			flush()
			raw := strings.TrimSpace(strings.TrimPrefix(line, EntryMarker))
			e := Entry{Timestamp: raw}
			if ts, err := time.ParseInLocation(TimestampLayout, raw, time.Local); err == nil {
				e.When = ts
			}
			entries = append(entries, e)
			open = true
			continue
		}
		if open {
			body = append(body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}
