package qa

import (
	"bytes"
	"strings"
	"testing"
)

func TestAllChecksPass(t *testing.T) {
	checks := Checks()
	if len(checks) != 10 {
		t.Fatalf("got %d checks, want 10", len(checks))
	}

	results := NewRunner(nil, false).Run(checks)
	for _, res := range results {
		if !res.Passed {
			t.Errorf("%s failed: %s", res.Name, res.Details)
		}
	}
}

func TestEssentialSubset(t *testing.T) {
	quick := Essential(Checks())
	if len(quick) == 0 || len(quick) >= len(Checks()) {
		t.Fatalf("quick subset has %d checks", len(quick))
	}
	for _, c := range quick {
		if !c.Essential {
			t.Errorf("non-essential check in quick subset: %s", c.Name)
		}
	}
}

func TestRunnerVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(&buf, true)

	runner.Run([]Check{
		{Name: "always passes", Kind: "unit", Run: func(env *Env) (string, error) {
			return "ok", nil
		}},
	})

	out := buf.String()
	if !strings.Contains(out, "always passes") {
		t.Errorf("verbose log missing check name:\n%s", out)
	}
	if !strings.Contains(out, "PASS") {
		t.Errorf("verbose log missing verdict:\n%s", out)
	}
}

func TestReportSummarizesFailures(t *testing.T) {
	results := []Result{
		{Name: "good", Kind: "unit", Passed: true, Details: "ok"},
		{Name: "bad", Kind: "edge", Passed: false, Details: "directory vanished"},
	}

	var buf bytes.Buffer
	if Report(&buf, results) {
		t.Fatal("report should fail when any check failed")
	}
	out := buf.String()
	if !strings.Contains(out, "bad") || !strings.Contains(out, "directory vanished") {
		t.Errorf("report missing failure details:\n%s", out)
	}

	buf.Reset()
	if !Report(&buf, results[:1]) {
		t.Fatal("report should pass when every check passed")
	}
}
