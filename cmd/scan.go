package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/apkasten906/ai-pairing-metrics/core"
	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/internal/outwriter"
	"github.com/spf13/cobra"
)

// scanCmd runs the acceptance scan against a repository.
var scanCmd = &cobra.Command{
	Use:   "scan [repo-path]",
	Short: "Measure added-line survival and immediate rework for recent commits.",
	Long: `Scan recent non-merge commits and measure corrected acceptance.

For every commit in the window, the scan extracts the added lines from the
commit's diff and answers two questions:
- Survival: is each added line still present at the reference revision?
- Immediate rework: when another commit touches the same file shortly
  after, did the added lines survive that follow-up?

The per-commit report lands in the output file (CSV by default) and a
plain-text summary is written alongside it.

Examples:
  # Scan the last 30 days of the current repository
  pairmetrics scan

  # Scan a specific repository and author
  pairmetrics scan ~/src/backend --author "Alice" --window-days 14

  # Strip comment noise and require some substance per line
  pairmetrics scan --ignore-comments --min-line-length 5

  # Measure survival against a release branch instead of HEAD
  pairmetrics scan --reference origin/release-2025-06

  # Export for further analysis
  pairmetrics scan --output parquet --output-file metrics.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runScan(rootCtx); err != nil {
			contract.LogFatal("Cannot run acceptance scan", err)
		}
	},
}

// runScan executes the scan and writes all outputs. Nothing is written
// until the whole scan has succeeded.
func runScan(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "🔎 Scanning %s (window: %d days, reference: %s)\n", cfg.RepoPath, cfg.WindowDays, cfg.Reference)

	client := contract.NewLocalGitClient()
	result, err := core.ExecuteScan(ctx, cfg, client, iocache.Store())
	if err != nil {
		return err
	}

	writer := outwriter.NewOutWriter()
	if err := writer.WriteRows(result.Rows, cfg, result.Elapsed); err != nil {
		return err
	}
	if err := writer.WriteSummary(result.Summary); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "🔎 Scanned %d commits in %v (%d snapshot lookups, %d cache misses)\n",
		result.Summary.CommitsScanned, result.Elapsed, result.CacheLookups, result.CacheMisses)
	return nil
}
