package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"majbench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	benchSizes    string
	benchRuns     int
	benchMajority bool
	benchMin      int
	benchMax      int
	benchStep     int
	benchParallel bool
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run a benchmark sweep across input sizes",
	Long: `Runs repeated trials of the majority vote engine for each input size and
prints the aggregated summary statistics. With no flags this is the quick
benchmark (sizes 100, 1000, 10000, 100000; 10 runs each, with majority).
Use --min/--max/--step for a comprehensive range sweep.`,
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.Flags().StringVar(&benchSizes, "sizes", "", "Comma-separated input sizes (default from config)")
	benchmarkCmd.Flags().IntVar(&benchRuns, "runs", 0, "Trials per size (default from config)")
	benchmarkCmd.Flags().BoolVar(&benchMajority, "majority", true, "Generate sequences with a guaranteed majority element")
	benchmarkCmd.Flags().IntVar(&benchMin, "min", 0, "Range sweep: minimum size")
	benchmarkCmd.Flags().IntVar(&benchMax, "max", 0, "Range sweep: maximum size")
	benchmarkCmd.Flags().IntVar(&benchStep, "step", 0, "Range sweep: step between sizes")
	benchmarkCmd.Flags().BoolVar(&benchParallel, "parallel", false, "Run each size on its own worker goroutine")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	sizes, err := benchmarkSizes()
	if err != nil {
		return err
	}

	runs := benchRuns
	if runs <= 0 {
		runs = viper.GetInt("runs")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running benchmark: sizes=%v runs=%d majority=%t\n\n", sizes, runs, benchMajority)

	start := time.Now()
	t := getTracker()

	if benchParallel || viper.GetBool("parallel") {
		results := t.RunMatrixParallel(sizes, benchMajority, runs)
		ui.RenderSummaryTable(out, results)
	} else {
		results := t.RunMatrix(sizes, benchMajority, runs)
		ui.RenderSummaryTable(out, results)
	}

	fmt.Fprintf(out, "\nBenchmark completed in %d ms\n", time.Since(start).Milliseconds())
	return nil
}

// benchmarkSizes resolves the size list from the range flags, the --sizes
// flag, or the configured defaults, in that order.
func benchmarkSizes() ([]int, error) {
	if benchMin > 0 || benchMax > 0 || benchStep > 0 {
		if benchMin <= 0 || benchMax < benchMin || benchStep <= 0 {
			return nil, fmt.Errorf("range sweep requires --min > 0, --max >= --min and --step > 0")
		}
		var sizes []int
		for size := benchMin; size <= benchMax; size += benchStep {
			sizes = append(sizes, size)
		}
		return sizes, nil
	}

	if benchSizes != "" {
		return parseSizes(benchSizes)
	}

	return viper.GetIntSlice("sizes"), nil
}

// parseSizes parses a comma-separated list of positive sizes.
func parseSizes(input string) ([]int, error) {
	parts := strings.Split(input, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		size, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("sizes must be positive, got %d", size)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
