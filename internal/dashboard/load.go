package dashboard

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Columns the loader requires in a metrics CSV. They match the header the
// scan writer emits.
var requiredColumns = []string{
	"Commit",
	"Date",
	"FilesTouched",
	"LinesAdded",
	"SurvivedInHEAD",
	"SurvivalRate",
	"ImmediateReworkRate",
}

// LoadRows reads a per-commit metrics CSV back into rows. An empty
// ImmediateReworkRate cell marks the rate as unknown, mirroring how the
// scan writer emits it.
func LoadRows(path string) ([]schema.CommitRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metrics CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("metrics CSV %s is empty", path)
	}

	index, err := columnIndex(records[0], path)
	if err != nil {
		return nil, err
	}

	rows := make([]schema.CommitRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columnIndex maps required column names to their positions.
func columnIndex(header []string, path string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("metrics CSV %s is missing column %q", path, name)
		}
	}
	return index, nil
}

// parseRecord converts one CSV record into a row.
func parseRecord(record []string, index map[string]int) (schema.CommitRow, error) {
	cell := func(name string) string { return record[index[name]] }

	date, err := time.Parse(contract.DateTimeFormat, cell("Date"))
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("bad date %q: %w", cell("Date"), err)
	}
	filesTouched, err := strconv.Atoi(cell("FilesTouched"))
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("bad FilesTouched %q: %w", cell("FilesTouched"), err)
	}
	linesAdded, err := strconv.Atoi(cell("LinesAdded"))
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("bad LinesAdded %q: %w", cell("LinesAdded"), err)
	}
	survived, err := strconv.Atoi(cell("SurvivedInHEAD"))
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("bad SurvivedInHEAD %q: %w", cell("SurvivedInHEAD"), err)
	}
	survivalRate, err := strconv.ParseFloat(cell("SurvivalRate"), 64)
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("bad SurvivalRate %q: %w", cell("SurvivalRate"), err)
	}

	row := schema.CommitRow{
		Commit:         cell("Commit"),
		Date:           date,
		FilesTouched:   filesTouched,
		LinesAdded:     linesAdded,
		SurvivedInHEAD: survived,
		SurvivalRate:   survivalRate,
	}

	if rework := strings.TrimSpace(cell("ImmediateReworkRate")); rework != "" {
		rate, err := strconv.ParseFloat(rework, 64)
		if err != nil {
			return schema.CommitRow{}, fmt.Errorf("bad ImmediateReworkRate %q: %w", rework, err)
		}
		row.ReworkKnown = true
		row.ReworkRate = rate
	}
	return row, nil
}
