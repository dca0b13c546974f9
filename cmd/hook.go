package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"status-trace/internal/activity"
	"status-trace/internal/config"
	"status-trace/internal/summary"
	"status-trace/internal/timeline"

	"github.com/spf13/cobra"
)

// maxHookStdinBytes caps the stop-hook payload read; real payloads are small
// JSON objects.
const maxHookStdinBytes = 1 << 20

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run the stop hook: summarize the ending session into the timeline",
	Long: `Reads the stop-hook JSON payload from stdin ({"session_id": ..., "cwd": ...}),
analyzes the session's event logs, and appends a summary entry to
PROJECT_STATUS.md.

The command always exits 0: a status write must never fail the surrounding
agent session. Failures are reported on stderr only.`,
	Run: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

// hookPayload is the stop event the agent delivers on stdin.
type hookPayload struct {
	SessionID string `json:"session_id"`
	Cwd       string `json:"cwd"`
}

func runHook(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr, "status-trace: ", 0)

	payload, err := readHookPayload(cmd.InOrStdin())
	if err != nil {
		logger.Printf("skipping timeline update: %v", err)
		return
	}

	statusDir := flagStatusDir
	if statusDir == "" {
		statusDir = payload.Cwd
	}
	cfg, err := config.Resolve(flagSessionsRoot, statusDir)
	if err != nil {
		logger.Printf("skipping timeline update: %v", err)
		return
	}

	rec := activity.NewAnalyzer(cfg.SessionsRoot).Analyze(payload.SessionID)
	entry := BuildHookSummary(rec)

	if err := timeline.Update(cfg.StatusDir, entry); err != nil {
		logger.Printf("timeline update failed: %v", err)
	}
}

func readHookPayload(r io.Reader) (hookPayload, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxHookStdinBytes))
	if err != nil {
		return hookPayload{}, fmt.Errorf("read hook payload: %w", err)
	}
	var payload hookPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return hookPayload{}, fmt.Errorf("decode hook payload: %w", err)
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		return hookPayload{}, fmt.Errorf("hook payload has no session_id")
	}
	return payload, nil
}

// BuildHookSummary renders the timeline entry body for a session record: the
// generated summary plus the tool list when one exists.
func BuildHookSummary(rec activity.Record) string {
	text := summary.Generate(rec)
	if len(rec.ToolsUsed) == 0 {
		return "**Session Summary**: " + text + "."
	}
	return fmt.Sprintf("**Session Summary**: %s. Tools used: %s.",
		text, strings.Join(rec.SortedTools(), ", "))
}
