// Package schema has configs, models and shared helpers for all parts of pairmetrics.
package schema

import "time"

// Commit identifies a single non-merge commit returned by the enumerator.
// It is sourced once per run and never mutated afterwards.
type Commit struct {
	Hash    string    // Full commit hash
	When    time.Time // Author timestamp (from unix seconds)
	Author  string    // Author name as recorded by Git
	Subject string    // First line of the commit message
}

// AddedLine is a single line of text added by a commit, scoped to the
// processing of that one commit.
type AddedLine struct {
	Path string // File path relative to the repository root
	Text string // Raw line text without the leading '+' marker
}

// CommitRow is the per-commit result record written to the report.
// Rates are pre-rounded to four decimals at construction time.
type CommitRow struct {
	Commit         string    `json:"commit"`           // Commit hash
	Date           time.Time `json:"date"`             // Commit timestamp
	FilesTouched   int       `json:"files_touched"`    // Distinct files with qualifying added lines
	LinesAdded     int       `json:"lines_added"`      // Added lines after filtering
	SurvivedInHEAD int       `json:"survived_in_head"` // Added lines still present at the reference revision
	SurvivalRate   float64   `json:"survival_rate"`    // SurvivedInHEAD / LinesAdded, 0 when LinesAdded is 0
	ReworkKnown    bool      `json:"rework_known"`     // False when no touched file had a next commit in the window
	ReworkRate     float64   `json:"rework_rate"`      // missing / checked across qualifying files; meaningless when unknown
}

// RunSummary holds the totals over all CommitRows of one run.
type RunSummary struct {
	WindowDays      int     `json:"window_days"`       // Length of the enumeration window
	Author          string  `json:"author"`            // Author filter, empty when unfiltered
	Reference       string  `json:"reference"`         // Revision survival was measured against
	TotalAdded      int     `json:"total_added"`       // Sum of LinesAdded across rows
	TotalSurvived   int     `json:"total_survived"`    // Sum of SurvivedInHEAD across rows
	SurvivalRate    float64 `json:"survival_rate"`     // TotalSurvived / TotalAdded, 0 when TotalAdded is 0
	ReworkRate      float64 `json:"rework_rate"`       // Simple mean of per-commit rates where known
	ReworkAvailable bool    `json:"rework_available"`  // False when no row had a known rework rate
	CommitsScanned  int     `json:"commits_scanned"`   // Number of commits processed
}
