package main

import (
	"fmt"
	"os"

	"majbench/internal/perf"

	"github.com/spf13/cobra"
)

var (
	exportCSVPath    string
	exportReportPath string
)

// writeFileFunc allows mocking file writes in tests.
var writeFileFunc = os.WriteFile

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored results as CSV and a text report",
	Long: `Serializes the in-memory result store. With --csv and/or --report the
output is written to those files; with no flags both are printed to stdout.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Write CSV export to this file")
	exportCmd.Flags().StringVar(&exportReportPath, "report", "", "Write text report to this file")
}

func runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if store.Len() == 0 {
		fmt.Fprintln(out, "No results stored.")
		return nil
	}

	csvData := perf.ExportCSV(store)
	reportData := perf.ExportReport(store)

	if exportCSVPath == "" && exportReportPath == "" {
		fmt.Fprintln(out, "CSV Data:")
		fmt.Fprint(out, csvData)
		fmt.Fprintln(out, "\nReport Data:")
		fmt.Fprint(out, reportData)
		return nil
	}

	if exportCSVPath != "" {
		if err := writeFileFunc(exportCSVPath, []byte(csvData), 0644); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
		fmt.Fprintf(out, "CSV results exported to %s\n", exportCSVPath)
	}

	if exportReportPath != "" {
		if err := writeFileFunc(exportReportPath, []byte(reportData), 0644); err != nil {
			return fmt.Errorf("failed to write report export: %w", err)
		}
		fmt.Fprintf(out, "Report exported to %s\n", exportReportPath)
	}

	return nil
}
