package main

import (
	"fmt"
	"time"

	"majbench/internal/majority"
	"majbench/internal/perf"

	"github.com/spf13/cobra"
)

var (
	stressMax  int
	stressRuns int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Stress test with large inputs",
	Long: `Runs the engine at fractions of a maximum size (max/10, max/5, max/2,
max) to check behavior under large inputs.`,
	RunE: runStress,
}

func init() {
	rootCmd.AddCommand(stressCmd)
	stressCmd.Flags().IntVar(&stressMax, "max", 1000000, "Maximum input size")
	stressCmd.Flags().IntVar(&stressRuns, "runs", 3, "Trials per size")
}

func runStress(cmd *cobra.Command, args []string) error {
	if stressMax < 10 {
		return fmt.Errorf("--max must be at least 10, got %d", stressMax)
	}
	if stressRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", stressRuns)
	}

	sizes := []int{stressMax / 10, stressMax / 5, stressMax / 2, stressMax}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running stress test: sizes=%v runs=%d\n\n", sizes, stressRuns)

	start := time.Now()
	t := getTracker()
	for _, size := range sizes {
		fmt.Fprintf(out, "Testing size %d...\n", size)
		samples := t.RunTrials(size, true, stressRuns)
		summary, err := perf.Summarize(majority.AlgorithmName, size, samples)
		if err != nil {
			fmt.Fprintf(out, "  no successful trials\n")
			continue
		}
		fmt.Fprintln(out, summary)
	}

	fmt.Fprintf(out, "\nStress test completed in %d ms\n", time.Since(start).Milliseconds())
	return nil
}
