package main

import (
	"fmt"

	"majbench/internal/perf"
	"majbench/internal/ui"

	"github.com/spf13/cobra"
)

var (
	resultsRender bool
	resultsClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Display or clear the stored results",
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().BoolVar(&resultsRender, "render", false, "Render the report as styled markdown")
	resultsCmd.Flags().BoolVar(&resultsClear, "clear", false, "Empty the result store")
}

func runResults(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if resultsClear {
		store.Clear()
		fmt.Fprintln(out, "Result store cleared.")
		return nil
	}

	if store.Len() == 0 {
		fmt.Fprintln(out, "No results stored.")
		return nil
	}

	if resultsRender {
		rendered, err := ui.RenderMarkdown(perf.ExportMarkdown(store))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(out, rendered)
		return nil
	}

	fmt.Fprint(out, perf.ExportReport(store))
	return nil
}
