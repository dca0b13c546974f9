// Package fixture fabricates session logs and activity records for the QA
// checks, the benchmark suite, and tests.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"status-trace/internal/activity"
)

// NewSessionID returns a unique session identifier in the same shape real
// agent sessions use.
func NewSessionID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

// ToolEvents fabricates n pre-tool-use events rotating through five tool
// names, each touching its own file.
func ToolEvents(n int) []map[string]any {
	tools := []string{"Read", "Write", "Edit", "Bash", "Grep"}
	events := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, map[string]any{
			"tool_name": tools[i%len(tools)],
			"tool_input": map[string]any{
				"file_path": fmt.Sprintf("/tmp/test_file_%d.py", i),
			},
			"timestamp": fmt.Sprintf("2024-01-01T12:%02d:00", i%60),
		})
	}
	return events
}

// PromptEvents fabricates user-prompt-submit events; the last one carries
// the given prompt.
func PromptEvents(lastPrompt string) []map[string]any {
	return []map[string]any{
		{"prompt": "earlier question", "timestamp": "2024-01-01T11:00:00"},
		{"prompt": lastPrompt, "timestamp": "2024-01-01T12:00:00"},
	}
}

// WriteSessionLog writes one log file for sessionID under root, creating the
// session directory as needed.
func WriteSessionLog(root, sessionID, logName string, events []map[string]any) error {
	dir := filepath.Join(root, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, logName), data, 0o644); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}

// Grade selects one of the canned activity records below.
type Grade string

const (
	GradeSimple  Grade = "simple"
	GradeMedium  Grade = "medium"
	GradeComplex Grade = "complex"
)

// RecordOfGrade returns an activity record of increasing richness, mirroring
// the sessions the benchmark suite has always exercised.
func RecordOfGrade(g Grade) activity.Record {
	rec := activity.NewRecord()
	switch g {
	case GradeSimple:
		rec.ToolsUsed["Read"] = struct{}{}
		rec.FilesModified["test.py"] = struct{}{}
		rec.LastPrompt = "simple test"

	case GradeMedium:
		for _, t := range []string{"Read", "Write", "Edit", "Bash"} {
			rec.ToolsUsed[t] = struct{}{}
		}
		for i := 0; i < 10; i++ {
			rec.FilesModified[fmt.Sprintf("file%d.py", i)] = struct{}{}
		}
		for i := 0; i < 5; i++ {
			rec.CommandsRun = append(rec.CommandsRun, fmt.Sprintf("command %d", i))
		}
		rec.LastPrompt = "medium complexity test with multiple operations"
		rec.KeyActions = []string{"managed tasks", "searched web"}
		rec.TestResults = "tests run"

	case GradeComplex:
		for _, t := range []string{"Read", "Write", "Edit", "Bash", "Magic", "WebSearch", "Task", "TodoWrite"} {
			rec.ToolsUsed[t] = struct{}{}
		}
		for i := 0; i < 20; i++ {
			rec.FilesModified[fmt.Sprintf("component%d.tsx", i)] = struct{}{}
		}
		for i := 0; i < 10; i++ {
			rec.FilesModified[fmt.Sprintf("doc%d.md", i)] = struct{}{}
		}
		for i := 0; i < 20; i++ {
			rec.CommandsRun = append(rec.CommandsRun, fmt.Sprintf("complex command %d", i))
		}
		rec.LastPrompt = "complex test with many operations including UI components, documentation, testing, and task delegation"
		rec.KeyActions = []string{"managed tasks", "searched web", "delegated to sub-agent"}
		rec.TestResults = "comprehensive tests run"
		rec.ErrorsEncountered = true
	}
	return rec
}

// SummarySize selects one of the canned summary payloads below.
type SummarySize string

const (
	SummarySmall  SummarySize = "small"
	SummaryMedium SummarySize = "medium"
	SummaryLarge  SummarySize = "large"
)

// SummaryOfSize returns a summary string of roughly the size the benchmark
// suite expects for each bucket.
func SummaryOfSize(size SummarySize) string {
	switch size {
	case SummaryMedium:
		var b strings.Builder
		b.WriteString("**Session Summary**: ")
		b.WriteString(strings.Repeat("Medium test session. ", 20))
		b.WriteString("Tools: " + toolList(10) + ".")
		return b.String()
	case SummaryLarge:
		var b strings.Builder
		b.WriteString("**Session Summary**: ")
		b.WriteString(strings.Repeat("Large test session. ", 100))
		b.WriteString("Tools: " + toolList(50) + ". Files: " + fileList(30) + ".")
		return b.String()
	default:
		return "**Session Summary**: Small test session. Tools: Read, Write."
	}
}

func toolList(n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("Tool%d", i))
	}
	return strings.Join(parts, ", ")
}

func fileList(n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("file%d.py", i))
	}
	return strings.Join(parts, ", ")
}
