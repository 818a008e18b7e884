// Package parquet provides data structures and functions for exporting
// per-commit acceptance data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitMetrics represents one scanned commit's acceptance metrics in the
// Parquet export. Rates carry the same four-decimal rounding as every
// other output format.
type CommitMetrics struct {
	// Commit is the full commit hash
	Commit string `parquet:"commit,snappy"`

	// Date is the commit's author timestamp (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// FilesTouched is the number of distinct files with qualifying added lines
	FilesTouched int32 `parquet:"files_touched,snappy"`

	// LinesAdded is the number of added lines after filtering
	LinesAdded int32 `parquet:"lines_added,snappy"`

	// SurvivedInHead is the number of added lines still present at the reference revision
	SurvivedInHead int32 `parquet:"survived_in_head,snappy"`

	// SurvivalRate is SurvivedInHead / LinesAdded
	SurvivalRate float64 `parquet:"survival_rate,snappy"`

	// ReworkRate is the immediate rework rate (nullable, nil when unobservable)
	ReworkRate *float64 `parquet:"rework_rate,optional,snappy"`
}

// ConvertCommitRows converts schema.CommitRow to CommitMetrics for Parquet
// export. An unknown rework rate becomes a null, not a zero.
func ConvertCommitRows(rows []schema.CommitRow) []CommitMetrics {
	result := make([]CommitMetrics, len(rows))
	for i, row := range rows {
		var reworkRate *float64
		if row.ReworkKnown {
			rate := row.ReworkRate
			reworkRate = &rate
		}
		result[i] = CommitMetrics{
			Commit:         row.Commit,
			Date:           row.Date,
			FilesTouched:   int32(row.FilesTouched),
			LinesAdded:     int32(row.LinesAdded),
			SurvivedInHead: int32(row.SurvivedInHEAD),
			SurvivalRate:   row.SurvivalRate,
			ReworkRate:     reworkRate,
		}
	}
	return result
}

// WriteCommitRowsParquet writes a slice of CommitMetrics structs to a Parquet file.
func WriteCommitRowsParquet(data []CommitMetrics, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CommitMetrics struct tags
	writer := parquet.NewGenericWriter[CommitMetrics](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
