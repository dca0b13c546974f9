package cmd

import (
	"fmt"
	"os"

	"status-trace/internal/bench"

	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the pipeline performance benchmarks",
	RunE:  runBench,
}

var (
	benchIterations int
	benchQuick      bool
)

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "i", 5, "iterations per benchmark bucket")
	benchCmd.Flags().BoolVarP(&benchQuick, "quick", "q", false, "run fewer iterations")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	iterations := benchIterations
	if benchQuick {
		iterations = 3
	}

	fmt.Fprintf(cmd.OutOrStdout(), "running %d iterations per bucket\n\n", iterations)
	results, err := bench.NewSuite(iterations).Run()
	if err != nil {
		return err
	}

	if !bench.Report(cmd.OutOrStdout(), results) {
		os.Exit(1)
	}
	return nil
}
