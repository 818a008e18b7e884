package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/parquet"
	"github.com/apkasten906/ai-pairing-metrics/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Report column names. The CSV header is a stable contract consumed by the
// dashboard builder; renaming a column breaks existing CSVs.
var csvHeader = []string{
	"Commit",
	"Date",
	"FilesTouched",
	"LinesAdded",
	"SurvivedInHEAD",
	"SurvivalRate",
	"ReworkUnknown",
	"ImmediateReworkRate",
}

// WriteRowResults outputs the per-commit report, dispatching based on the
// output format configured.
func WriteRowResults(rows []schema.CommitRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRowJSONResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRowTable(rows, cfg, duration, w)
		}, "Wrote table")
	case schema.ParquetOut:
		if err := parquet.WriteCommitRowsParquet(parquet.ConvertCommitRows(rows), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to CSV, the format the dashboard builder ingests
		if err := writeRowCSVResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	return nil
}

// writeRowJSONResults handles opening the file and calling the JSON writer.
func writeRowJSONResults(rows []schema.CommitRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRows(w, rows)
	}, "Wrote JSON")
}

// writeRowCSVResults handles opening the file and calling the CSV writer.
func writeRowCSVResults(rows []schema.CommitRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRows(csvWriter, rows)
	}, "Wrote CSV")
}

// writeRowTable generates and writes the human-readable table.
func writeRowTable(rows []schema.CommitRow, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Commit", "Date", "Files", "Added", "Survived", "Rate", "Label", "Rework"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	hashWidth := getMaxTableHashWidth()
	var data [][]string
	for _, r := range rows {
		label := contract.GetPlainLabel(r.SurvivalRate)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.SurvivalRate)
		}
		data = append(data, []string{
			truncateHash(r.Commit, hashWidth),
			r.Date.Format(contract.DateTimeFormat),
			strconv.Itoa(r.FilesTouched),
			strconv.Itoa(r.LinesAdded),
			strconv.Itoa(r.SurvivedInHEAD),
			schema.FormatRate(r.SurvivalRate),
			label,
			formatReworkRate(r),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalAdded := 0
	totalSurvived := 0
	for _, r := range rows {
		totalAdded += r.LinesAdded
		totalSurvived += r.SurvivedInHEAD
	}
	if _, err := fmt.Fprintf(writer, "Scanned %d commits (lines added: %d, survived: %d)\n", len(rows), totalAdded, totalSurvived); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scan completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRows writes the per-commit report in CSV format.
// An unknown rework rate is written as an empty cell, not as 0.
func writeCSVResultsForRows(w *csv.Writer, rows []schema.CommitRow) error {
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		reworkRate := ""
		if r.ReworkKnown {
			reworkRate = schema.FormatRate(r.ReworkRate)
		}
		rec := []string{
			r.Commit,
			r.Date.Format(contract.DateTimeFormat),
			strconv.Itoa(r.FilesTouched),
			strconv.Itoa(r.LinesAdded),
			strconv.Itoa(r.SurvivedInHEAD),
			schema.FormatRate(r.SurvivalRate),
			strconv.FormatBool(!r.ReworkKnown),
			reworkRate,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRows writes the per-commit report in JSON format.
func writeJSONResultsForRows(w io.Writer, rows []schema.CommitRow) error {
	// 1. Prepare the data structure for JSON with the label added
	type JSONCommitRow struct {
		Label string `json:"label"`
		schema.CommitRow
	}

	output := make([]JSONCommitRow, len(rows))
	for i, r := range rows {
		output[i] = JSONCommitRow{
			Label:     contract.GetPlainLabel(r.SurvivalRate),
			CommitRow: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// formatReworkRate renders a row's rework rate for the table, keeping the
// unknown case visibly distinct from a known zero.
func formatReworkRate(r schema.CommitRow) string {
	if !r.ReworkKnown {
		return "n/a"
	}
	return schema.FormatRate(r.ReworkRate)
}

// truncateHash shortens a commit hash for display. Abbreviated hashes are
// display-only; files always carry the full hash.
func truncateHash(hash string, width int) string {
	if len(hash) <= width {
		return hash
	}
	return hash[:width]
}
