package cmd

import (
	"fmt"
	"os"

	"status-trace/internal/qa"

	"github.com/spf13/cobra"
)

var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Run the stop hook QA checks",
	RunE:  runQA,
}

var (
	qaVerbose bool
	qaQuick   bool
)

func init() {
	qaCmd.Flags().BoolVarP(&qaVerbose, "verbose", "v", false, "log each check as it runs")
	qaCmd.Flags().BoolVarP(&qaQuick, "quick", "q", false, "run only the essential checks")
	rootCmd.AddCommand(qaCmd)
}

func runQA(cmd *cobra.Command, args []string) error {
	checks := qa.Checks()
	if qaQuick {
		checks = qa.Essential(checks)
	}

	runner := qa.NewRunner(cmd.OutOrStdout(), qaVerbose)
	results := runner.Run(checks)

	fmt.Fprintln(cmd.OutOrStdout())
	if !qa.Report(cmd.OutOrStdout(), results) {
		os.Exit(1)
	}
	return nil
}
