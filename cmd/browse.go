package cmd

import (
	"fmt"

	"status-trace/internal/config"
	"status-trace/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the project status timeline in a TUI",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagSessionsRoot, flagStatusDir)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewModel(cfg.StatusDir), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run timeline browser: %w", err)
	}
	return nil
}
