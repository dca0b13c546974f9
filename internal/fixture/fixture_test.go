package fixture

import (
	"strings"
	"testing"

	"status-trace/internal/activity"
)

func TestNewSessionID(t *testing.T) {
	a := NewSessionID("qa")
	b := NewSessionID("qa")
	if a == b {
		t.Fatal("expected unique ids")
	}
	if !strings.HasPrefix(a, "qa-") {
		t.Fatalf("missing prefix: %q", a)
	}
	if NewSessionID("") == "" {
		t.Fatal("empty prefix should still yield an id")
	}
}

func TestToolEventsShape(t *testing.T) {
	events := ToolEvents(7)
	if len(events) != 7 {
		t.Fatalf("got %d events, want 7", len(events))
	}
	if events[0]["tool_name"] != "Read" || events[5]["tool_name"] != "Read" {
		t.Error("tool names should rotate through the fixed set")
	}
	input, ok := events[3]["tool_input"].(map[string]any)
	if !ok {
		t.Fatal("tool_input missing")
	}
	if input["file_path"] != "/tmp/test_file_3.py" {
		t.Errorf("unexpected file path: %v", input["file_path"])
	}
}

func TestWriteSessionLogRoundTrip(t *testing.T) {
	root := t.TempDir()
	sessionID := NewSessionID("roundtrip")

	if err := WriteSessionLog(root, sessionID, "pre_tool_use.json", ToolEvents(5)); err != nil {
		t.Fatalf("write log: %v", err)
	}
	if err := WriteSessionLog(root, sessionID, "user_prompt_submit.json", PromptEvents("do the thing")); err != nil {
		t.Fatalf("write prompts: %v", err)
	}

	rec := activity.NewAnalyzer(root).Analyze(sessionID)
	if len(rec.ToolsUsed) != 5 {
		t.Errorf("got %d tools, want 5", len(rec.ToolsUsed))
	}
	if len(rec.FilesModified) != 5 {
		t.Errorf("got %d files, want 5", len(rec.FilesModified))
	}
	if rec.LastPrompt != "do the thing" {
		t.Errorf("last prompt = %q", rec.LastPrompt)
	}
}

func TestRecordOfGrade(t *testing.T) {
	simple := RecordOfGrade(GradeSimple)
	if len(simple.ToolsUsed) != 1 || len(simple.FilesModified) != 1 {
		t.Error("simple record should carry one tool and one file")
	}

	complexRec := RecordOfGrade(GradeComplex)
	if len(complexRec.FilesModified) != 30 {
		t.Errorf("complex record has %d files, want 30", len(complexRec.FilesModified))
	}
	if !complexRec.ErrorsEncountered {
		t.Error("complex record should mark errors")
	}
	if len(complexRec.KeyActions) != 3 {
		t.Errorf("complex record has %d key actions, want 3", len(complexRec.KeyActions))
	}
}

func TestSummaryOfSizeOrdering(t *testing.T) {
	small := SummaryOfSize(SummarySmall)
	medium := SummaryOfSize(SummaryMedium)
	large := SummaryOfSize(SummaryLarge)

	if !(len(small) < len(medium) && len(medium) < len(large)) {
		t.Fatalf("sizes out of order: %d, %d, %d", len(small), len(medium), len(large))
	}
	for _, s := range []string{small, medium, large} {
		if !strings.HasPrefix(s, "**Session Summary**: ") {
			t.Errorf("summary missing prefix: %q", s[:30])
		}
	}
}
