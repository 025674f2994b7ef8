package main

import (
	"fmt"

	"majbench/internal/majority"
	"majbench/internal/perf"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a canned demonstration of the algorithm",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Algorithm Demonstration ===")

	fmt.Fprintln(out, "\n1. Array with majority element:")
	values := []int{1, 1, 2, 1, 3, 1, 4}
	fmt.Fprintf(out, "Input: %v\n", values)
	fmt.Fprintf(out, "Result: %s\n", majority.FindMajority(values))

	fmt.Fprintln(out, "\n2. Array without majority element:")
	values = []int{1, 2, 3, 4, 5}
	fmt.Fprintf(out, "Input: %v\n", values)
	fmt.Fprintf(out, "Result: %s\n", majority.FindMajority(values))

	fmt.Fprintln(out, "\n3. Performance test:")
	t := getTracker()
	for _, size := range []int{1000, 10000, 100000} {
		samples := t.RunTrials(size, true, 5)
		summary, err := perf.Summarize(majority.AlgorithmName, size, samples)
		if err != nil {
			continue
		}
		fmt.Fprintln(out, summary)
	}

	return nil
}
