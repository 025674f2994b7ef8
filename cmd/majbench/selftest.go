package main

import (
	"errors"
	"fmt"

	"majbench/internal/majority"
	"majbench/internal/ui"

	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the built-in scenario checks",
	Long: `Feeds a fixed set of scenarios through the engine and verifies the
outcomes. Exits non-zero if any check fails.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

type scenarioCheck struct {
	name  string
	check func() error
}

func runSelftest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Basic Scenario Checks ===")

	checks := []scenarioCheck{
		{"majority present [1,1,2,1,3,1,4]", func() error {
			return expectMajority([]int{1, 1, 2, 1, 3, 1, 4}, 1)
		}},
		{"no majority [1,2,3,4,5]", func() error {
			return expectNoMajority([]int{1, 2, 3, 4, 5})
		}},
		{"negative majority [-1,-1,-1,2,3]", func() error {
			return expectMajority([]int{-1, -1, -1, 2, 3}, -1)
		}},
		{"tie is not a majority [1,1,2,2]", func() error {
			return expectNoMajority([]int{1, 1, 2, 2})
		}},
		{"single element [42]", func() error {
			result := majority.FindMajority([]int{42})
			if err := expectMajority([]int{42}, 42); err != nil {
				return err
			}
			if result.Metrics.Comparisons != 0 {
				return fmt.Errorf("expected no comparisons, got %d", result.Metrics.Comparisons)
			}
			return nil
		}},
		{"nil input is an error", func() error {
			result := majority.FindMajority(nil)
			if !errors.Is(result.Err, majority.ErrNilInput) {
				return fmt.Errorf("expected nil-input error, got %v", result.Err)
			}
			if result.Metrics == nil {
				return fmt.Errorf("metrics missing on error path")
			}
			return nil
		}},
		{"empty input has no majority and no error", func() error {
			result := majority.FindMajority([]int{})
			if result.HasError() || result.HasMajority {
				return fmt.Errorf("unexpected result: %s", result)
			}
			return nil
		}},
		{"generator quirk: size 1 without majority still reports one", func() error {
			gen := majority.NewGenerator(1)
			values := gen.Generate(1, false)
			result := majority.FindMajority(values)
			if !result.HasMajority {
				return fmt.Errorf("single element should always be a majority, got %s", result)
			}
			return nil
		}},
	}

	failed := 0
	for _, c := range checks {
		if err := c.check(); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", ui.ErrorStyle.Render("FAIL"), c.name, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render("PASS"), c.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintf(out, "\nAll %d checks passed.\n", len(checks))
	return nil
}

func expectMajority(values []int, want int) error {
	result := majority.FindMajority(values)
	if result.HasError() {
		return result.Err
	}
	if !result.HasMajority || result.Candidate != want {
		return fmt.Errorf("expected majority %d, got %s", want, result)
	}
	return nil
}

func expectNoMajority(values []int) error {
	result := majority.FindMajority(values)
	if result.HasError() {
		return result.Err
	}
	if result.HasMajority {
		return fmt.Errorf("expected no majority, got %s", result)
	}
	return nil
}
