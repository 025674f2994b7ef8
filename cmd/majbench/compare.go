package main

import (
	"fmt"
	"io"
	"time"

	"majbench/internal/perf"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	compareSizes string
	compareRuns  int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare majority vs no-majority performance",
	Long: `Runs the same size sweep twice, once over sequences with a guaranteed
majority element and once without, and prints both summary groups. The
no-majority case skips verification early exit, so it shows the worst-case
comparison count.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareSizes, "sizes", "", "Comma-separated input sizes (default from config)")
	compareCmd.Flags().IntVar(&compareRuns, "runs", 0, "Trials per configuration (default from config)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	var sizes []int
	var err error
	if compareSizes != "" {
		sizes, err = parseSizes(compareSizes)
		if err != nil {
			return err
		}
	} else {
		sizes = viper.GetIntSlice("sizes")
	}

	runs := compareRuns
	if runs <= 0 {
		runs = viper.GetInt("runs")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running comparison: sizes=%v runs=%d\n", sizes, runs)

	start := time.Now()
	comparison := getTracker().CompareMajorityVsNone(sizes, runs)

	fmt.Fprintf(out, "Comparison completed in %d ms\n", time.Since(start).Milliseconds())
	printComparison(out, comparison)
	return nil
}

func printComparison(out io.Writer, c perf.Comparison) {
	fmt.Fprintln(out, "\nWithMajority:")
	for _, ss := range c.WithMajority {
		fmt.Fprintf(out, "  %s\n", ss.Summary)
	}
	fmt.Fprintln(out, "\nWithoutMajority:")
	for _, ss := range c.WithoutMajority {
		fmt.Fprintf(out, "  %s\n", ss.Summary)
	}
}
