package activity

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	preToolUseLog   = "pre_tool_use.json"
	postToolUseLog  = "post_tool_use.json"
	promptSubmitLog = "user_prompt_submit.json"
)

// Analyzer reads per-session event logs from an explicit root directory.
// Every failure mode degrades to an emptier record; Analyze never fails.
type Analyzer struct {
	root string
}

func NewAnalyzer(sessionsRoot string) *Analyzer {
	return &Analyzer{root: filepath.Clean(sessionsRoot)}
}

// Analyze aggregates the session's logged events into a Record. A missing
// session directory, missing log file, or unparseable log contributes nothing
// rather than an error.
func (a *Analyzer) Analyze(sessionID string) Record {
	rec := NewRecord()
	if strings.TrimSpace(sessionID) == "" {
		return rec
	}
	dir := filepath.Join(a.root, sessionID)

	for _, obj := range loadObjects(filepath.Join(dir, preToolUseLog)) {
		evt, ok := toolEventFromObject(obj)
		if !ok {
			continue
		}
		a.applyToolEvent(&rec, evt)
	}

	for _, obj := range loadObjects(filepath.Join(dir, postToolUseLog)) {
		evt, ok := toolEventFromObject(obj)
		if !ok {
			continue
		}
		if evt.Failed {
			rec.ErrorsEncountered = true
		}
		if rec.TestResults == "" {
			if res := testResultsFromResponse(evt.Response); res != "" {
				rec.TestResults = res
			}
		}
	}

	var bestTS int64 = -1
	for _, obj := range loadObjects(filepath.Join(dir, promptSubmitLog)) {
		evt, ok := promptEventFromObject(obj)
		if !ok {
			continue
		}
		// Latest timestamp wins; untimestamped entries fall back to file order.
		if evt.TS != nil && *evt.TS >= bestTS {
			bestTS = *evt.TS
			rec.LastPrompt = evt.Prompt
		} else if bestTS < 0 {
			rec.LastPrompt = evt.Prompt
		}
	}

	if rec.TestResults == "" && commandsMentionTests(rec.CommandsRun) {
		rec.TestResults = "tests run"
	}
	return rec
}

func (a *Analyzer) applyToolEvent(rec *Record, evt toolEvent) {
	rec.ToolsUsed[evt.Name] = struct{}{}
	if evt.FilePath != "" {
		rec.FilesModified[evt.FilePath] = struct{}{}
	}
	if evt.Command != "" {
		rec.CommandsRun = append(rec.CommandsRun, evt.Command)
	}
	if action := keyActionForTool(evt.Name); action != "" {
		rec.KeyActions = appendUnique(rec.KeyActions, action)
	}
}

func keyActionForTool(name string) string {
	switch name {
	case "TodoWrite", "TodoRead":
		return "managed tasks"
	case "WebSearch", "WebFetch":
		return "searched web"
	case "Task":
		return "delegated to sub-agent"
	default:
		return ""
	}
}

func appendUnique(in []string, s string) []string {
	for _, have := range in {
		if have == s {
			return in
		}
	}
	return append(in, s)
}

func commandsMentionTests(commands []string) bool {
	for _, cmd := range commands {
		if strings.Contains(strings.ToLower(cmd), "test") {
			return true
		}
	}
	return false
}

func testResultsFromResponse(response string) string {
	lower := strings.ToLower(response)
	if !strings.Contains(lower, "test") {
		return ""
	}
	switch {
	case strings.Contains(lower, "fail"):
		return "tests failed"
	case strings.Contains(lower, "pass") || strings.Contains(lower, "ok"):
		return "tests passed"
	default:
		return "tests run"
	}
}

// loadObjects parses a log file as a JSON array of objects, falling back to
// one object per line for JSONL streams. Malformed content yields nil.
func loadObjects(path string) []map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var arr []map[string]any
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr
	}

	var out []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}
