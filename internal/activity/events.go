package activity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// toolEvent is one pre- or post-tool-use log entry, reduced to the fields the
// analyzer cares about.
type toolEvent struct {
	Name     string
	FilePath string
	Command  string
	TS       *int64
	Failed   bool
	Response string
}

// promptEvent is one user-prompt-submit log entry.
type promptEvent struct {
	Prompt string
	TS     *int64
}

func toolEventFromObject(obj map[string]any) (toolEvent, bool) {
	name := asString(firstByPath(obj,
		[]string{"tool_name"},
		[]string{"tool"},
		[]string{"name"},
	))
	if name == "" {
		return toolEvent{}, false
	}

	evt := toolEvent{
		Name: name,
		TS:   parseUnix(firstByPath(obj, []string{"timestamp"}, []string{"ts"}, []string{"time"})),
	}
	evt.FilePath = asString(firstByPath(obj,
		[]string{"tool_input", "file_path"},
		[]string{"tool_input", "notebook_path"},
		[]string{"tool_input", "path"},
	))
	evt.Command = asString(firstByPath(obj, []string{"tool_input", "command"}))
	evt.Failed = asString(firstByPath(obj, []string{"error"}, []string{"tool_error"})) != ""
	evt.Response = coerceText(firstByPath(obj, []string{"tool_response"}, []string{"tool_output"}))
	return evt, true
}

func promptEventFromObject(obj map[string]any) (promptEvent, bool) {
	prompt := coerceText(firstByPath(obj,
		[]string{"prompt"},
		[]string{"user_prompt"},
		[]string{"text"},
	))
	if prompt == "" {
		return promptEvent{}, false
	}
	return promptEvent{
		Prompt: prompt,
		TS:     parseUnix(firstByPath(obj, []string{"timestamp"}, []string{"ts"}, []string{"time"})),
	}, true
}

func firstByPath(obj map[string]any, path ...[]string) any {
	for _, p := range path {
		var cur any = obj
		ok := true
		for _, seg := range p {
			m, isMap := cur.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			var exists bool
			cur, exists = m[seg]
			if !exists {
				ok = false
				break
			}
		}
		if ok {
			return cur
		}
	}
	return nil
}

func parseUnix(v any) *int64 {
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		return normalizeUnix(t)
	case int:
		return normalizeUnix(int64(t))
	case float64:
		return normalizeUnix(int64(t))
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return normalizeUnix(i)
		}
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return nil
		}
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return normalizeUnix(i)
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, t); err == nil {
				x := ts.Unix()
				return &x
			}
		}
	}
	return nil
}

// normalizeUnix collapses millisecond timestamps to seconds.
func normalizeUnix(x int64) *int64 {
	if x > 1_000_000_000_000 {
		x /= 1000
	}
	return &x
}

func coerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	case map[string]any:
		for _, key := range []string{"text", "content", "output", "result", "message"} {
			if s := coerceText(t[key]); s != "" {
				return s
			}
		}
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
