package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

const sampleCSV = `Commit,Date,FilesTouched,LinesAdded,SurvivedInHEAD,SurvivalRate,ReworkUnknown,ImmediateReworkRate
abc123,2025-06-01T12:00:00Z,2,10,9,0.9000,false,0.1000
def456,2025-06-02T09:30:00Z,1,4,1,0.2500,true,
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestLoadRows(t *testing.T) {
	rows, err := LoadRows(writeSampleCSV(t))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "abc123", rows[0].Commit)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, 10, rows[0].LinesAdded)
	assert.Equal(t, 9, rows[0].SurvivedInHEAD)
	assert.InDelta(t, 0.9, rows[0].SurvivalRate, 1e-9)
	assert.True(t, rows[0].ReworkKnown)
	assert.InDelta(t, 0.1, rows[0].ReworkRate, 1e-9)

	// Blank rework cell round-trips as unknown.
	assert.False(t, rows[1].ReworkKnown)
}

func TestLoadRowsMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Commit,Date\nabc,2025-06-01T12:00:00Z\n"), 0o644))

	_, err := LoadRows(path)
	assert.ErrorContains(t, err, "missing column")
}

func TestLoadRowsMissingFile(t *testing.T) {
	_, err := LoadRows(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorContains(t, err, "failed to open metrics CSV")
}

func TestParseDatasetArg(t *testing.T) {
	tests := []struct {
		name         string
		entry        string
		expectedName string
		expectedPath string
		wantErr      bool
	}{
		{
			name:         "simple entry",
			entry:        "Team A=a.csv",
			expectedName: "Team A",
			expectedPath: "a.csv",
		},
		{
			name:         "path may contain equals",
			entry:        "Run=out/run=1.csv",
			expectedName: "Run",
			expectedPath: "out/run=1.csv",
		},
		{
			name:    "missing separator",
			entry:   "just-a-path.csv",
			wantErr: true,
		},
		{
			name:    "empty name",
			entry:   "=a.csv",
			wantErr: true,
		},
		{
			name:    "empty path",
			entry:   "Team A=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, path, err := ParseDatasetArg(tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedPath, path)
		})
	}
}

func TestComputeStats(t *testing.T) {
	rows := []schema.CommitRow{
		{LinesAdded: 10, SurvivedInHEAD: 9, SurvivalRate: 0.9, ReworkKnown: true, ReworkRate: 0.1},
		{LinesAdded: 10, SurvivedInHEAD: 5, SurvivalRate: 0.5, ReworkKnown: false},
	}

	stats := ComputeStats(rows)
	assert.Equal(t, 2, stats.Commits)
	assert.Equal(t, 20, stats.TotalAdded)
	assert.Equal(t, 14, stats.TotalSurvived)
	assert.InDelta(t, 0.7, stats.Survival, 1e-9)

	// Only the known row feeds the rework average.
	assert.True(t, stats.ReworkKnown)
	assert.InDelta(t, 0.1, stats.Rework, 1e-9)

	// Quality: (0.9*0.9 + 0.5*1.0) / 2 = 0.655
	assert.InDelta(t, 0.655, stats.Quality, 1e-9)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Commits)
	assert.False(t, stats.ReworkKnown)
	assert.InDelta(t, 0.0, stats.Quality, 1e-9)
}

func TestBuildSingleCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dashboard.html")
	cfg := &contract.Config{
		DashboardCSV: writeSampleCSV(t),
		DashboardOut: out,
	}

	require.NoError(t, Build(cfg))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "Metrics: Survival Rate per Commit")
	assert.Contains(t, html, "Metrics: Immediate Rework Rate")
	assert.Contains(t, html, "Metrics: Quality Index per Commit")
	assert.Contains(t, html, "Metrics: Commit Size vs Survival")
}

func TestBuildMultipleDatasets(t *testing.T) {
	csvPath := writeSampleCSV(t)
	out := filepath.Join(t.TempDir(), "dashboard.html")
	cfg := &contract.Config{
		Datasets:     []string{"Team A=" + csvPath, "Team B=" + csvPath},
		DashboardOut: out,
	}

	require.NoError(t, Build(cfg))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "Team A: Survival Rate per Commit")
	assert.Contains(t, html, "Team B: Survival Rate per Commit")
}

func TestBuildBadDataset(t *testing.T) {
	cfg := &contract.Config{
		Datasets:     []string{"no-separator"},
		DashboardOut: filepath.Join(t.TempDir(), "dashboard.html"),
	}
	assert.ErrorContains(t, Build(cfg), "invalid dataset")
}
