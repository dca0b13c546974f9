// Package summary turns a session activity record into a one-line
// description using ordered keyword heuristics. The first matching rule wins;
// the final rule always matches, so Generate is total.
package summary

import (
	"fmt"
	"path/filepath"
	"strings"

	"status-trace/internal/activity"
)

type rule struct {
	name   string
	match  func(activity.Record) bool
	render func(activity.Record) string
}

// Rule order is the documented policy: UI work shadows documentation work,
// which shadows hook work. Reordering is a data change, not a logic change.
var rules = []rule{
	{
		name:   "ui-component",
		match:  matchesUIWork,
		render: renderUIWork,
	},
	{
		name:   "documentation",
		match:  matchesDocWork,
		render: renderDocWork,
	},
	{
		name:   "hook-development",
		match:  matchesHookWork,
		render: renderHookWork,
	},
	{
		name:   "generic",
		match:  func(activity.Record) bool { return true },
		render: renderGeneric,
	},
}

// Generate produces a non-empty description of the session. It is a pure
// function of the record.
func Generate(rec activity.Record) string {
	for _, r := range rules {
		if r.match(rec) {
			return r.render(rec)
		}
	}
	// The generic rule always matches; this is unreachable.
	return "Session activity recorded"
}

var componentExtensions = map[string]struct{}{
	".tsx":    {},
	".jsx":    {},
	".vue":    {},
	".svelte": {},
}

func matchesUIWork(rec activity.Record) bool {
	for path := range rec.FilesModified {
		if _, ok := componentExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return true
		}
	}
	return promptMentions(rec, "component", "frontend", "ui ", " ui", "button", "widget")
}

func renderUIWork(rec activity.Record) string {
	n := countFilesWithExt(rec, componentExtensions)
	if n > 0 {
		return fmt.Sprintf("Worked on UI components (%d component %s)", n, plural(n, "file", "files"))
	}
	return "Worked on UI components"
}

func matchesDocWork(rec activity.Record) bool {
	for path := range rec.FilesModified {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".rst":
			return true
		}
	}
	return promptMentions(rec, "document", "readme", "docs")
}

func renderDocWork(rec activity.Record) string {
	return "Updated documentation"
}

func matchesHookWork(rec activity.Record) bool {
	for path := range rec.FilesModified {
		if strings.Contains(strings.ToLower(filepath.ToSlash(path)), "hook") {
			return true
		}
	}
	return promptMentions(rec, "hook")
}

func renderHookWork(rec activity.Record) string {
	return "Worked on hook development"
}

func renderGeneric(rec activity.Record) string {
	if rec.Empty() {
		return "Session completed with no recorded activity"
	}

	var b strings.Builder
	switch {
	case len(rec.FilesModified) > 0:
		fmt.Fprintf(&b, "Modified %d %s using %d %s",
			len(rec.FilesModified), plural(len(rec.FilesModified), "file", "files"),
			len(rec.ToolsUsed), plural(len(rec.ToolsUsed), "tool", "tools"))
	case len(rec.ToolsUsed) > 0:
		fmt.Fprintf(&b, "Session activity with %d %s",
			len(rec.ToolsUsed), plural(len(rec.ToolsUsed), "tool", "tools"))
	default:
		b.WriteString("General session activity")
	}

	if len(rec.KeyActions) > 0 {
		b.WriteString("; " + strings.Join(rec.KeyActions, ", "))
	}
	if rec.TestResults != "" {
		b.WriteString("; " + rec.TestResults)
	}
	if rec.ErrorsEncountered {
		b.WriteString("; errors encountered")
	}
	return b.String()
}

func promptMentions(rec activity.Record, terms ...string) bool {
	prompt := strings.ToLower(rec.LastPrompt)
	if prompt == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(prompt, term) {
			return true
		}
	}
	return false
}

func countFilesWithExt(rec activity.Record, exts map[string]struct{}) int {
	n := 0
	for path := range rec.FilesModified {
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
