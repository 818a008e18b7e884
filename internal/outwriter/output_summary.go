package outwriter

import (
	"fmt"
	"io"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// WriteRunSummary writes the human-readable run summary to its fixed
// location next to the per-commit report.
func WriteRunSummary(summary schema.RunSummary, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeSummaryText(w, summary)
	}, "Wrote summary")
}

// writeSummaryText renders the summary in a stable key/value layout.
func writeSummaryText(w io.Writer, summary schema.RunSummary) error {
	author := summary.Author
	if author == "" {
		author = "(all authors)"
	}

	rework := "unavailable (no follow-up commits in window)"
	if summary.ReworkAvailable {
		rework = schema.FormatRate(summary.ReworkRate)
	}

	lines := []string{
		"AI pairing acceptance summary",
		"=============================",
		fmt.Sprintf("Window (days):         %d", summary.WindowDays),
		fmt.Sprintf("Author filter:         %s", author),
		fmt.Sprintf("Reference:             %s", summary.Reference),
		fmt.Sprintf("Commits scanned:       %d", summary.CommitsScanned),
		fmt.Sprintf("Total lines added:     %d", summary.TotalAdded),
		fmt.Sprintf("Lines survived:        %d", summary.TotalSurvived),
		fmt.Sprintf("Overall survival:      %s (%s)", schema.FormatRate(summary.SurvivalRate), contract.GetPlainLabel(summary.SurvivalRate)),
		fmt.Sprintf("Avg immediate rework:  %s", rework),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
