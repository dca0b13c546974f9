package qa

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"status-trace/internal/activity"
	"status-trace/internal/fixture"
	"status-trace/internal/summary"
	"status-trace/internal/timeline"
)

// Checks returns the full suite: unit checks of each pipeline stage,
// integration checks of the composed pipeline, and edge-case checks.
func Checks() []Check {
	return []Check{
		{Name: "timeline basic creation", Kind: "unit", Essential: true, Run: checkTimelineBasicCreation},
		{Name: "timeline append", Kind: "unit", Essential: true, Run: checkTimelineAppend},
		{Name: "invalid directory handling", Kind: "unit", Run: checkInvalidDirectory},
		{Name: "empty session analysis", Kind: "unit", Run: checkEmptySessionAnalysis},
		{Name: "summary generation patterns", Kind: "unit", Run: checkSummaryPatterns},
		{Name: "full pipeline simulation", Kind: "integration", Essential: true, Run: checkFullPipeline},
		{Name: "large session latency", Kind: "integration", Run: checkLargeSessionLatency},
		{Name: "special characters in paths", Kind: "edge", Run: checkSpecialCharacterPaths},
		{Name: "sequential timeline updates", Kind: "edge", Run: checkSequentialUpdates},
		{Name: "malformed session data", Kind: "edge", Run: checkMalformedSessionData},
	}
}

func checkTimelineBasicCreation(env *Env) (string, error) {
	dir, err := env.TempDir("basic_creation")
	if err != nil {
		return "", err
	}
	payload := "**Session Summary**: Basic check session. Tools: Read, Write."

	if err := timeline.Update(dir, payload); err != nil {
		return "", fmt.Errorf("timeline update failed: %w", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, timeline.StatusFileName))
	if err != nil {
		return "", fmt.Errorf("status file not created: %w", err)
	}
	if !strings.Contains(string(content), payload) {
		return "", fmt.Errorf("summary not found in status file")
	}
	return fmt.Sprintf("file created with %d bytes", len(content)), nil
}

func checkTimelineAppend(env *Env) (string, error) {
	dir, err := env.TempDir("append")
	if err != nil {
		return "", err
	}
	first := "**Session Summary**: First session. Tools: Read."
	second := "**Session Summary**: Second session. Tools: Write."

	if err := timeline.Update(dir, first); err != nil {
		return "", fmt.Errorf("first update failed: %w", err)
	}
	if err := timeline.Update(dir, second); err != nil {
		return "", fmt.Errorf("second update failed: %w", err)
	}

	entries, err := timeline.Entries(dir)
	if err != nil {
		return "", fmt.Errorf("read entries back: %w", err)
	}
	if len(entries) != 2 {
		return "", fmt.Errorf("expected 2 entries, found %d", len(entries))
	}
	if entries[0].Body != first || entries[1].Body != second {
		return "", fmt.Errorf("entries out of order or missing content")
	}
	return "2 entries appended in call order", nil
}

func checkInvalidDirectory(env *Env) (string, error) {
	invalid := "/nonexistent/invalid/path/that/should/not/exist"
	if err := timeline.Update(invalid, "**Session Summary**: Error check."); err == nil {
		return "", fmt.Errorf("expected failure for nonexistent directory")
	}
	if _, err := os.Stat(invalid); !os.IsNotExist(err) {
		return "", fmt.Errorf("update must not create the target path")
	}
	return "nonexistent directory rejected without side effects", nil
}

func checkEmptySessionAnalysis(env *Env) (string, error) {
	root, err := env.TempDir("empty_analysis")
	if err != nil {
		return "", err
	}
	rec := activity.NewAnalyzer(root).Analyze("nonexistent_session_id")
	if len(rec.ToolsUsed) != 0 || len(rec.FilesModified) != 0 || rec.ErrorsEncountered {
		return "", fmt.Errorf("expected all-default record, got %d tools, %d files", len(rec.ToolsUsed), len(rec.FilesModified))
	}
	text := summary.Generate(rec)
	if text == "" {
		return "", fmt.Errorf("summary for empty session must not be empty")
	}
	return fmt.Sprintf("generated summary: %q", text), nil
}

func checkSummaryPatterns(env *Env) (string, error) {
	cases := []struct {
		name     string
		rec      activity.Record
		expected []string
	}{
		{
			name:     "ui component work",
			rec:      recordWith([]string{"Magic", "Write"}, []string{"Button.tsx", "Form.vue"}, "create a button component"),
			expected: []string{"component", "ui"},
		},
		{
			name:     "documentation work",
			rec:      recordWith([]string{"Write", "Edit"}, []string{"README.md", "api.md"}, "update the documentation"),
			expected: []string{"doc"},
		},
		{
			name:     "hook development",
			rec:      recordWith([]string{"Edit", "Bash"}, []string{"hooks/stop.go"}, "fix the stop hook"),
			expected: []string{"hook"},
		},
	}

	for _, tc := range cases {
		text := strings.ToLower(summary.Generate(tc.rec))
		matched := false
		for _, want := range tc.expected {
			if strings.Contains(text, want) {
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("%s: expected one of %v in %q", tc.name, tc.expected, text)
		}
	}
	return "all summary patterns matched their category", nil
}

func checkFullPipeline(env *Env) (string, error) {
	projectDir, err := env.TempDir("pipeline_project")
	if err != nil {
		return "", err
	}
	sessionsRoot, err := env.TempDir("pipeline_sessions")
	if err != nil {
		return "", err
	}

	sessionID := fixture.NewSessionID("qa")
	toolEvents := []map[string]any{
		{
			"tool_name":  "Edit",
			"tool_input": map[string]any{"file_path": filepath.Join(projectDir, "main.go")},
			"timestamp":  "2024-01-01T12:00:00",
		},
		{
			"tool_name":  "Bash",
			"tool_input": map[string]any{"command": "go test ./..."},
			"timestamp":  "2024-01-01T12:01:00",
		},
	}
	if err := fixture.WriteSessionLog(sessionsRoot, sessionID, "pre_tool_use.json", toolEvents); err != nil {
		return "", err
	}
	prompts := []map[string]any{
		{"prompt": "please verify the session hook end to end", "timestamp": "2024-01-01T12:00:00"},
	}
	if err := fixture.WriteSessionLog(sessionsRoot, sessionID, "user_prompt_submit.json", prompts); err != nil {
		return "", err
	}

	rec := activity.NewAnalyzer(sessionsRoot).Analyze(sessionID)
	text := summary.Generate(rec)
	detailed := fmt.Sprintf("**Session Summary**: %s. Tools used: %s.", text, strings.Join(rec.SortedTools(), ", "))

	if err := timeline.Update(projectDir, detailed); err != nil {
		return "", fmt.Errorf("timeline update failed: %w", err)
	}
	content, err := os.ReadFile(filepath.Join(projectDir, timeline.StatusFileName))
	if err != nil {
		return "", fmt.Errorf("status file missing: %w", err)
	}
	for _, tool := range []string{"Edit", "Bash"} {
		if !strings.Contains(string(content), tool) {
			return "", fmt.Errorf("tool %s missing from timeline entry", tool)
		}
	}
	return fmt.Sprintf("pipeline wrote summary %q", text), nil
}

func checkLargeSessionLatency(env *Env) (string, error) {
	dir, err := env.TempDir("large_session")
	if err != nil {
		return "", err
	}
	payload := fixture.SummaryOfSize(fixture.SummaryLarge)

	start := time.Now()
	if err := timeline.Update(dir, payload); err != nil {
		return "", fmt.Errorf("large update failed: %w", err)
	}
	elapsed := time.Since(start)
	if elapsed > 100*time.Millisecond {
		return "", fmt.Errorf("large update took %s, threshold 100ms", elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("%d-byte summary appended in %s", len(payload), elapsed.Round(time.Microsecond)), nil
}

func checkSpecialCharacterPaths(env *Env) (string, error) {
	base, err := env.TempDir("special_chars")
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "check with spaces & símböls")
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create special dir: %w", err)
	}

	payload := "**Session Summary**: Special characters. Files: file with spaces.txt, file_with_üñíčødé.js"
	if err := timeline.Update(dir, payload); err != nil {
		return "", fmt.Errorf("update in special-character directory failed: %w", err)
	}

	entries, err := timeline.Entries(dir)
	if err != nil {
		return "", fmt.Errorf("read back: %w", err)
	}
	if len(entries) != 1 || entries[0].Body != payload {
		return "", fmt.Errorf("unicode content not preserved byte-for-byte")
	}
	return "unicode paths and content round-tripped", nil
}

func checkSequentialUpdates(env *Env) (string, error) {
	dir, err := env.TempDir("sequential")
	if err != nil {
		return "", err
	}
	payloads := []string{
		"**Session Summary**: Sequential check 1. Tools: Read.",
		"**Session Summary**: Sequential check 2. Tools: Write.",
		"**Session Summary**: Sequential check 3. Tools: Edit.",
	}
	for _, p := range payloads {
		if err := timeline.Update(dir, p); err != nil {
			return "", fmt.Errorf("sequential update failed: %w", err)
		}
	}

	entries, err := timeline.Entries(dir)
	if err != nil {
		return "", err
	}
	if len(entries) != len(payloads) {
		return "", fmt.Errorf("expected %d entries, found %d", len(payloads), len(entries))
	}
	for i, p := range payloads {
		if entries[i].Body != p {
			return "", fmt.Errorf("entry %d out of order", i)
		}
	}
	return fmt.Sprintf("%d sequential updates preserved order", len(payloads)), nil
}

func checkMalformedSessionData(env *Env) (string, error) {
	root, err := env.TempDir("malformed")
	if err != nil {
		return "", err
	}
	sessionID := fixture.NewSessionID("malformed")
	sessionDir := filepath.Join(root, sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return "", err
	}
	truncated := `{"invalid": json data without closing brace`
	if err := os.WriteFile(filepath.Join(sessionDir, "pre_tool_use.json"), []byte(truncated), 0o644); err != nil {
		return "", err
	}

	rec := activity.NewAnalyzer(root).Analyze(sessionID)
	if len(rec.ToolsUsed) != 0 || len(rec.FilesModified) != 0 {
		return "", fmt.Errorf("malformed log must contribute zero events")
	}
	return "malformed session data degraded to defaults", nil
}

func recordWith(tools, files []string, prompt string) activity.Record {
	rec := activity.NewRecord()
	for _, t := range tools {
		rec.ToolsUsed[t] = struct{}{}
	}
	for _, f := range files {
		rec.FilesModified[f] = struct{}{}
	}
	rec.LastPrompt = prompt
	return rec
}
