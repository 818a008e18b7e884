package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

func sampleRows() []schema.CommitRow {
	return []schema.CommitRow{
		{
			Commit:         "abc123abc123abc123abc123abc123abc123abc1",
			Date:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			FilesTouched:   2,
			LinesAdded:     10,
			SurvivedInHEAD: 9,
			SurvivalRate:   0.9,
			ReworkKnown:    true,
			ReworkRate:     0.1,
		},
		{
			Commit:         "def456def456def456def456def456def456def4",
			Date:           time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			FilesTouched:   1,
			LinesAdded:     4,
			SurvivedInHEAD: 1,
			SurvivalRate:   0.25,
			ReworkKnown:    false,
		},
	}
}

func TestWriteCSVResultsForRows(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForRows(w, sampleRows())
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])

	// Known rework: rate present, ReworkUnknown false
	assert.Contains(t, lines[1], "abc123")
	assert.Contains(t, lines[1], "0.9000")
	assert.Contains(t, lines[1], "false,0.1000")

	// Unknown rework: trailing cell is empty, not "0.0000"
	assert.Contains(t, lines[2], "def456")
	assert.True(t, strings.HasSuffix(lines[2], "true,"))
}

func TestWriteCSVResultsForRowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForRows(w, nil)
	require.NoError(t, err)
	w.Flush()

	// Header only
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "SurvivalRate")
}

func TestWriteJSONResultsForRows(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForRows(&buf, sampleRows())
	require.NoError(t, err)

	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "High", result[0]["label"])
	assert.Equal(t, 0.9, result[0]["survival_rate"])
	assert.Equal(t, true, result[0]["rework_known"])

	assert.Equal(t, "Low", result[1]["label"])
	assert.Equal(t, false, result[1]["rework_known"])
}

func TestWriteRowTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		UseColors:    false,
		CacheBackend: schema.SQLiteBackend,
	}

	var buf bytes.Buffer
	err := writeRowTable(sampleRows(), cfg, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "abc123")
	assert.Contains(t, output, "0.9000")
	assert.Contains(t, output, "High")
	assert.Contains(t, output, "Low")
	assert.Contains(t, output, "n/a") // unknown rework
	assert.Contains(t, output, "Scanned 2 commits (lines added: 14, survived: 10)")
	assert.Contains(t, output, "Scan completed in 100ms. Cache backend: sqlite")
}

func TestWriteSummaryText(t *testing.T) {
	summary := schema.RunSummary{
		WindowDays:      30,
		Author:          "",
		Reference:       "refhash",
		TotalAdded:      100,
		TotalSurvived:   81,
		SurvivalRate:    0.81,
		ReworkRate:      0.12,
		ReworkAvailable: true,
		CommitsScanned:  7,
	}

	var buf bytes.Buffer
	err := writeSummaryText(&buf, summary)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Window (days):         30")
	assert.Contains(t, output, "Author filter:         (all authors)")
	assert.Contains(t, output, "Reference:             refhash")
	assert.Contains(t, output, "Overall survival:      0.8100 (High)")
	assert.Contains(t, output, "Avg immediate rework:  0.1200")
}

func TestWriteSummaryTextReworkUnavailable(t *testing.T) {
	summary := schema.RunSummary{
		WindowDays: 30,
		Author:     "Alice",
		Reference:  "refhash",
	}

	var buf bytes.Buffer
	err := writeSummaryText(&buf, summary)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Author filter:         Alice")
	assert.Contains(t, output, "Avg immediate rework:  unavailable (no follow-up commits in window)")
}

func TestTruncateHash(t *testing.T) {
	assert.Equal(t, "abc123abc123", truncateHash("abc123abc123abc123abc123abc123abc123abc1", 12))
	assert.Equal(t, "short", truncateHash("short", 12))
}
