package bench

import (
	"bytes"
	"strings"
	"testing"
)

func TestSuiteRunCoversAllBuckets(t *testing.T) {
	results, err := NewSuite(1).Run()
	if err != nil {
		t.Fatalf("suite run: %v", err)
	}

	// 3 summary sizes + 4 event counts + 3 record grades, one iteration each.
	if len(results) != 10 {
		t.Fatalf("expected 10 measurements, got %d", len(results))
	}

	byCategory := map[string]int{}
	for _, r := range results {
		byCategory[r.Category]++
		if !r.OK() {
			t.Errorf("%s/%s failed: %v", r.Category, r.Label, r.Err)
		}
	}
	want := map[string]int{
		"timeline_updates":   3,
		"session_analysis":   4,
		"summary_generation": 3,
	}
	for category, n := range want {
		if byCategory[category] != n {
			t.Errorf("category %s: got %d measurements, want %d", category, byCategory[category], n)
		}
	}
}

func TestReportRendersAndPasses(t *testing.T) {
	results, err := NewSuite(2).Run()
	if err != nil {
		t.Fatalf("suite run: %v", err)
	}

	var buf bytes.Buffer
	pass := Report(&buf, results)
	out := buf.String()

	if !strings.Contains(out, "timeline updates") {
		t.Errorf("report missing category section:\n%s", out)
	}
	if !strings.Contains(out, "thresholds") {
		t.Error("report missing threshold line")
	}
	// These pipeline calls are microsecond-scale; the thresholds are meant
	// to be generous.
	if !pass {
		t.Errorf("expected thresholds to pass:\n%s", out)
	}
}

func TestSlowestFirst(t *testing.T) {
	in := []Result{
		{Label: "fast", Measurement: Measurement{Duration: 1}},
		{Label: "slow", Measurement: Measurement{Duration: 100}},
		{Label: "mid", Measurement: Measurement{Duration: 50}},
	}
	out := SlowestFirst(in)
	if out[0].Label != "slow" || out[2].Label != "fast" {
		t.Fatalf("unexpected order: %v, %v, %v", out[0].Label, out[1].Label, out[2].Label)
	}
	if in[0].Label != "fast" {
		t.Fatal("input slice must not be reordered")
	}
}
