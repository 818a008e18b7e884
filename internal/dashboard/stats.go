package dashboard

import (
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Stats holds the aggregate figures shown in each dataset's chart
// subtitles.
type Stats struct {
	Commits       int
	TotalAdded    int
	TotalSurvived int
	Survival      float64 // overall, weighted by line counts
	Rework        float64 // mean of known per-commit rates
	ReworkKnown   bool
	Quality       float64 // mean per-commit quality index
}

// ComputeStats aggregates a dataset's rows. Unknown rework rates are
// excluded from the rework average but contribute to quality as zero, the
// same conventions the scan summary uses.
func ComputeStats(rows []schema.CommitRow) Stats {
	stats := Stats{Commits: len(rows)}

	var reworkSum, qualitySum float64
	var reworkCount int
	for _, row := range rows {
		stats.TotalAdded += row.LinesAdded
		stats.TotalSurvived += row.SurvivedInHEAD
		qualitySum += schema.QualityIndex(row.SurvivalRate, row.ReworkRate, row.ReworkKnown)
		if row.ReworkKnown {
			reworkSum += row.ReworkRate
			reworkCount++
		}
	}

	stats.Survival = schema.Rate(stats.TotalSurvived, stats.TotalAdded)
	if reworkCount > 0 {
		stats.ReworkKnown = true
		stats.Rework = schema.Round4(reworkSum / float64(reworkCount))
	}
	if len(rows) > 0 {
		stats.Quality = schema.Round4(qualitySum / float64(len(rows)))
	}
	return stats
}
