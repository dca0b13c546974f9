package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const DefaultGlamourStyle = "dark"

// AppConfig carries the resolved paths every command operates on.
type AppConfig struct {
	SessionsRoot string
	StatusDir    string
}

// Resolve fills in defaults for any path the caller left empty. Explicit
// values win over environment variables, which win over home-relative
// defaults.
func Resolve(sessionsRoot, statusDir string) (AppConfig, error) {
	var cfg AppConfig
	var err error

	cfg.SessionsRoot, err = DetectSessionsRoot(sessionsRoot)
	if err != nil {
		return cfg, err
	}
	cfg.StatusDir, err = DetectStatusDir(statusDir)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func DetectSessionsRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Clean(explicit), nil
	}
	if fromEnv := os.Getenv("SESSION_LOG_DIR"); fromEnv != "" {
		return filepath.Clean(fromEnv), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "sessions"), nil
}

func DetectStatusDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Clean(explicit), nil
	}
	if fromEnv := os.Getenv("STATUS_DIR"); fromEnv != "" {
		return filepath.Clean(fromEnv), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return cwd, nil
}
