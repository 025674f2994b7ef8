package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"majbench/internal/perf"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// RenderSummaryTable writes a tabwriter table of size summaries.
func RenderSummaryTable(w io.Writer, summaries []perf.SizeSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tRUNS\tAVG MS\tSTDDEV\tMIN MS\tMAX MS\tCOMPARISONS\tACCESSES\tALLOCS")
	for _, ss := range summaries {
		s := ss.Summary
		fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\t%.1f\t%.1f\n",
			s.InputSize, s.RunCount, s.AvgTimeMs, s.StdDevTimeMs,
			s.MinTimeMs, s.MaxTimeMs, s.AvgComparisons, s.AvgAccesses, s.AvgAllocations)
	}
	tw.Flush()
}

// RenderMarkdown renders a markdown document for the terminal via glamour.
// On dumb terminals the raw markdown is returned unchanged.
func RenderMarkdown(markdown string) (string, error) {
	if termenv.ColorProfile() == termenv.Ascii {
		return markdown, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(110),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
