package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "status-trace",
	Short: "Session stop hook that maintains a project status timeline",
	Long: `status-trace turns logged agent-session events into one-line summaries and
appends them to PROJECT_STATUS.md in the project directory. It also ships the
QA checks and performance benchmarks for that pipeline, and a TUI for browsing
the accumulated timeline.`,
}

var (
	flagSessionsRoot string
	flagStatusDir    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSessionsRoot, "sessions-root", "", "session log root (default $SESSION_LOG_DIR or ~/.claude/sessions)")
	rootCmd.PersistentFlags().StringVar(&flagStatusDir, "status-dir", "", "directory holding PROJECT_STATUS.md (default $STATUS_DIR or cwd)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
