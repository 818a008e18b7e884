package core

import (
	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// BuildRow assembles the result record for one commit. Rates are rounded
// here, once, so every writer and the summary see identical values.
func BuildRow(commit schema.Commit, filesTouched, linesAdded, survived int, rework ReworkOutcome) schema.CommitRow {
	return schema.CommitRow{
		Commit:         commit.Hash,
		Date:           commit.When,
		FilesTouched:   filesTouched,
		LinesAdded:     linesAdded,
		SurvivedInHEAD: survived,
		SurvivalRate:   schema.Rate(survived, linesAdded),
		ReworkKnown:    rework.Known,
		ReworkRate:     rework.Rate(),
	}
}

// Summarize rolls the per-commit rows into run totals. The overall
// survival rate is computed from the summed line counts, so commits are
// weighted by their size. The overall rework rate is a simple mean over
// the commits where rework was observable; unknown rows are excluded
// rather than counted as zero.
func Summarize(cfg *contract.Config, refHash string, rows []schema.CommitRow) schema.RunSummary {
	summary := schema.RunSummary{
		WindowDays:     cfg.WindowDays,
		Author:         cfg.Author,
		Reference:      refHash,
		CommitsScanned: len(rows),
	}

	var reworkSum float64
	var reworkCount int
	for _, row := range rows {
		summary.TotalAdded += row.LinesAdded
		summary.TotalSurvived += row.SurvivedInHEAD
		if row.ReworkKnown {
			reworkSum += row.ReworkRate
			reworkCount++
		}
	}

	summary.SurvivalRate = schema.Rate(summary.TotalSurvived, summary.TotalAdded)
	if reworkCount > 0 {
		summary.ReworkAvailable = true
		summary.ReworkRate = schema.Round4(reworkSum / float64(reworkCount))
	}
	return summary
}
