package config

import (
	"strings"
	"testing"
)

func TestDetectSessionsRootPrecedence(t *testing.T) {
	t.Setenv("SESSION_LOG_DIR", "/env/sessions")

	got, err := DetectSessionsRoot("/explicit/sessions/")
	if err != nil {
		t.Fatalf("explicit root: %v", err)
	}
	if got != "/explicit/sessions" {
		t.Errorf("explicit value should win: %q", got)
	}

	got, err = DetectSessionsRoot("")
	if err != nil {
		t.Fatalf("env root: %v", err)
	}
	if got != "/env/sessions" {
		t.Errorf("env value should win over default: %q", got)
	}

	t.Setenv("SESSION_LOG_DIR", "")
	got, err = DetectSessionsRoot("")
	if err != nil {
		t.Fatalf("default root: %v", err)
	}
	if !strings.HasSuffix(got, ".claude/sessions") {
		t.Errorf("expected home-relative default, got %q", got)
	}
}

func TestDetectStatusDirPrecedence(t *testing.T) {
	t.Setenv("STATUS_DIR", "/env/status")

	got, err := DetectStatusDir("/explicit/status")
	if err != nil {
		t.Fatalf("explicit dir: %v", err)
	}
	if got != "/explicit/status" {
		t.Errorf("explicit value should win: %q", got)
	}

	got, err = DetectStatusDir("")
	if err != nil {
		t.Fatalf("env dir: %v", err)
	}
	if got != "/env/status" {
		t.Errorf("env value should win over cwd: %q", got)
	}

	t.Setenv("STATUS_DIR", "")
	got, err = DetectStatusDir("")
	if err != nil {
		t.Fatalf("cwd fallback: %v", err)
	}
	if got == "" {
		t.Error("cwd fallback returned empty path")
	}
}

func TestResolveFillsBothPaths(t *testing.T) {
	cfg, err := Resolve("/a/sessions", "/b/status")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.SessionsRoot != "/a/sessions" || cfg.StatusDir != "/b/status" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
