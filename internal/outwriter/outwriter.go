// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRows prints the per-commit report using the configured output format.
func (ow *OutWriter) WriteRows(rows []schema.CommitRow, cfg *contract.Config, duration time.Duration) error {
	return WriteRowResults(rows, cfg, duration)
}

// WriteSummary writes the run summary to its fixed location.
func (ow *OutWriter) WriteSummary(summary schema.RunSummary) error {
	return WriteRunSummary(summary, contract.SummaryFileName)
}
