package activity

import "sort"

// Record aggregates everything observed in one session's event logs. Every
// field has a usable zero value so a missing or unreadable session still
// yields a valid record.
type Record struct {
	ToolsUsed         map[string]struct{}
	FilesModified     map[string]struct{}
	CommandsRun       []string
	LastPrompt        string
	KeyActions        []string
	TestResults       string
	ErrorsEncountered bool
}

func NewRecord() Record {
	return Record{
		ToolsUsed:     make(map[string]struct{}),
		FilesModified: make(map[string]struct{}),
	}
}

// Empty reports whether the record holds no observed activity at all.
func (r Record) Empty() bool {
	return len(r.ToolsUsed) == 0 &&
		len(r.FilesModified) == 0 &&
		len(r.CommandsRun) == 0 &&
		r.LastPrompt == "" &&
		len(r.KeyActions) == 0 &&
		r.TestResults == "" &&
		!r.ErrorsEncountered
}

// SortedTools returns the tool names in a stable order for display.
func (r Record) SortedTools() []string {
	out := make([]string, 0, len(r.ToolsUsed))
	for name := range r.ToolsUsed {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SortedFiles returns the modified file paths in a stable order for display.
func (r Record) SortedFiles() []string {
	out := make([]string, 0, len(r.FilesModified))
	for path := range r.FilesModified {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
