package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"majbench/internal/majority"
	"majbench/internal/perf"
	"majbench/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// askOneFunc allows mocking survey prompts in tests.
var askOneFunc = survey.AskOne

var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Interactive benchmark menu",
	Long:  `A menu-driven shell around the engine, aggregator and result store.`,
	RunE:  runCLI,
}

func init() {
	rootCmd.AddCommand(cliCmd)
}

func runCLI(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderStyle.Render("Boyer-Moore Majority Vote Benchmark Runner"))

	for {
		printMenu(out)

		var choice string
		if err := askOneFunc(&survey.Input{Message: "Enter your choice:"}, &choice); err != nil {
			// EOF or interrupt ends the session
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			menuSingleTest(out)
		case "2":
			menuQuickBenchmark(out)
		case "3":
			menuComprehensiveBenchmark(out)
		case "4":
			menuComparisonTest(out)
		case "5":
			menuInteractiveTest(out)
		case "6":
			menuDisplayResults(out)
		case "7":
			menuExportResults(out)
		case "8":
			menuMemoryStats(out)
		case "9":
			menuStressTest(out)
		case "0":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\n=== Main Menu ===")
	fmt.Fprintln(out, "1. Run Single Test")
	fmt.Fprintln(out, "2. Quick Benchmark")
	fmt.Fprintln(out, "3. Comprehensive Benchmark")
	fmt.Fprintln(out, "4. Comparison Test (Majority vs No Majority)")
	fmt.Fprintln(out, "5. Interactive Test")
	fmt.Fprintln(out, "6. Display Results")
	fmt.Fprintln(out, "7. Export Results")
	fmt.Fprintln(out, "8. Memory Statistics")
	fmt.Fprintln(out, "9. Stress Test")
	fmt.Fprintln(out, "0. Exit")
}

// promptInt asks for a single integer. Malformed input is an error the menu
// handlers report without ending the session.
func promptInt(message string) (int, error) {
	var raw string
	if err := askOneFunc(&survey.Input{Message: message}, &raw); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", strings.TrimSpace(raw))
	}
	return v, nil
}

func promptBool(message string) (bool, error) {
	answer := false
	err := askOneFunc(&survey.Confirm{Message: message, Default: true}, &answer)
	return answer, err
}

func reportMenuError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", ui.ErrorStyle.Render("Error:"), err)
	fmt.Fprintln(out, "Please try again.")
}

func menuSingleTest(out io.Writer) {
	size, err := promptInt("Array size:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	wantMajority, err := promptBool("Should the array have a majority element?")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	runs, err := promptInt("Number of runs:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	if runs <= 0 {
		reportMenuError(out, fmt.Errorf("runs must be positive, got %d", runs))
		return
	}

	fmt.Fprintln(out, "\nRunning test...")
	start := time.Now()
	samples := getTracker().RunTrials(size, wantMajority, runs)
	fmt.Fprintf(out, "Test completed in %d ms\n", time.Since(start).Milliseconds())
	fmt.Fprintf(out, "Results for %d runs:\n", len(samples))

	if summary, err := perf.Summarize(majority.AlgorithmName, size, samples); err == nil {
		fmt.Fprintln(out, summary)
	}
}

func menuQuickBenchmark(out io.Writer) {
	sizes := viper.GetIntSlice("sizes")
	runs := viper.GetInt("runs")
	fmt.Fprintf(out, "\nRunning quick benchmark: sizes=%v runs=%d\n", sizes, runs)

	start := time.Now()
	results := getTracker().RunMatrix(sizes, true, runs)
	fmt.Fprintf(out, "Benchmark completed in %d ms\n\n", time.Since(start).Milliseconds())
	ui.RenderSummaryTable(out, results)
}

func menuComprehensiveBenchmark(out io.Writer) {
	minSize, err := promptInt("Minimum size:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	maxSize, err := promptInt("Maximum size:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	step, err := promptInt("Step size:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	runs, err := promptInt("Runs per size:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	wantMajority, err := promptBool("Should arrays have majority elements?")
	if err != nil {
		reportMenuError(out, err)
		return
	}

	if minSize <= 0 || maxSize < minSize || step <= 0 || runs <= 0 {
		reportMenuError(out, fmt.Errorf("need min > 0, max >= min, step > 0 and runs > 0"))
		return
	}

	var sizes []int
	for size := minSize; size <= maxSize; size += step {
		sizes = append(sizes, size)
	}

	fmt.Fprintf(out, "\nRunning comprehensive benchmark: sizes=%v runs=%d\n", sizes, runs)
	start := time.Now()
	results := getTracker().RunMatrix(sizes, wantMajority, runs)
	fmt.Fprintf(out, "Benchmark completed in %d ms\n\n", time.Since(start).Milliseconds())
	ui.RenderSummaryTable(out, results)
}

func menuComparisonTest(out io.Writer) {
	var raw string
	if err := askOneFunc(&survey.Input{Message: "Array sizes (comma-separated):"}, &raw); err != nil {
		reportMenuError(out, err)
		return
	}
	sizes, err := parseSizes(raw)
	if err != nil {
		reportMenuError(out, err)
		return
	}
	runs, err := promptInt("Runs per configuration:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	if runs <= 0 {
		reportMenuError(out, fmt.Errorf("runs must be positive, got %d", runs))
		return
	}

	fmt.Fprintf(out, "\nRunning comparison: sizes=%v runs=%d\n", sizes, runs)
	start := time.Now()
	comparison := getTracker().CompareMajorityVsNone(sizes, runs)
	fmt.Fprintf(out, "Comparison completed in %d ms\n", time.Since(start).Milliseconds())
	printComparison(out, comparison)
}

func menuInteractiveTest(out io.Writer) {
	fmt.Fprintln(out, "\n=== Interactive Test ===")
	for {
		var raw string
		if err := askOneFunc(&survey.Input{
			Message: "Array elements (comma-separated, or 'quit' to exit):",
		}, &raw); err != nil {
			return
		}
		if strings.EqualFold(strings.TrimSpace(raw), "quit") {
			return
		}

		values, err := majority.ParseSequence(raw)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", ui.ErrorStyle.Render("Invalid input:"), err)
			continue
		}

		fmt.Fprintf(out, "Array: %v\n", values)
		result := majority.FindMajority(values)
		if result.HasError() {
			fmt.Fprintf(out, "%s %v\n", ui.ErrorStyle.Render("Error:"), result.Err)
			continue
		}
		fmt.Fprintf(out, "Result: %s\n", result)
	}
}

func menuDisplayResults(out io.Writer) {
	fmt.Fprintln(out, "\n=== Stored Results ===")
	if store.Len() == 0 {
		fmt.Fprintln(out, "No results stored.")
		return
	}
	fmt.Fprint(out, perf.ExportReport(store))
}

func menuExportResults(out io.Writer) {
	if store.Len() == 0 {
		fmt.Fprintln(out, "No results stored.")
		return
	}

	var filename string
	if err := askOneFunc(&survey.Input{Message: "Filename (without extension):"}, &filename); err != nil {
		reportMenuError(out, err)
		return
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = fmt.Sprintf("benchmark_results_%d", time.Now().UnixMilli())
	}

	csvPath := filename + ".csv"
	reportPath := filename + ".txt"

	if err := writeFileFunc(csvPath, []byte(perf.ExportCSV(store)), 0644); err != nil {
		reportMenuError(out, err)
		return
	}
	if err := writeFileFunc(reportPath, []byte(perf.ExportReport(store)), 0644); err != nil {
		reportMenuError(out, err)
		return
	}

	fmt.Fprintf(out, "Results exported to %s and %s\n", csvPath, reportPath)
}

func menuMemoryStats(out io.Writer) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	const mb = 1024 * 1024
	fmt.Fprintln(out, "\n=== Memory Statistics ===")
	fmt.Fprintf(out, "Memory Usage: Alloc=%d MB, TotalAlloc=%d MB, Sys=%d MB, NumGC=%d\n",
		ms.Alloc/mb, ms.TotalAlloc/mb, ms.Sys/mb, ms.NumGC)
}

func menuStressTest(out io.Writer) {
	maxSize, err := promptInt("Maximum array size for stress test:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	runs, err := promptInt("Number of test runs:")
	if err != nil {
		reportMenuError(out, err)
		return
	}
	if maxSize < 10 || runs <= 0 {
		reportMenuError(out, fmt.Errorf("need max >= 10 and runs > 0"))
		return
	}

	sizes := []int{maxSize / 10, maxSize / 5, maxSize / 2, maxSize}
	fmt.Fprintf(out, "\nRunning stress test: sizes=%v runs=%d\n", sizes, runs)

	start := time.Now()
	t := getTracker()
	for _, size := range sizes {
		fmt.Fprintf(out, "Testing size %d...\n", size)
		samples := t.RunTrials(size, true, runs)
		if summary, err := perf.Summarize(majority.AlgorithmName, size, samples); err == nil {
			fmt.Fprintln(out, summary)
		}
	}
	fmt.Fprintf(out, "Stress test completed in %d ms\n", time.Since(start).Milliseconds())
}
