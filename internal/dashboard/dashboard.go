// Package dashboard renders acceptance metrics CSVs into a single
// self-contained HTML page of charts, suitable for sharing without a server.
package dashboard

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Dataset is one named metrics CSV shown on the dashboard. Multiple
// datasets let one page compare runs, e.g. different authors or windows.
type Dataset struct {
	Name string
	Rows []schema.CommitRow
}

// Build loads the configured dataset(s) and writes the dashboard HTML to
// cfg.DashboardOut.
func Build(cfg *contract.Config) error {
	datasets, err := resolveDatasets(cfg)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = "AI Pairing Acceptance Dashboard"
	page.SetLayout(components.PageFlexLayout)

	for _, ds := range datasets {
		stats := ComputeStats(ds.Rows)
		page.AddCharts(
			buildSurvivalChart(ds, stats),
			buildReworkChart(ds, stats),
			buildQualityChart(ds, stats),
			buildScatterChart(ds),
		)
	}

	return writePage(page, cfg.DashboardOut)
}

// resolveDatasets turns the configured inputs into loaded datasets.
// Explicit --dataset entries win over the single --csv path.
func resolveDatasets(cfg *contract.Config) ([]Dataset, error) {
	if len(cfg.Datasets) > 0 {
		datasets := make([]Dataset, 0, len(cfg.Datasets))
		for _, entry := range cfg.Datasets {
			name, path, err := ParseDatasetArg(entry)
			if err != nil {
				return nil, err
			}
			rows, err := LoadRows(path)
			if err != nil {
				return nil, err
			}
			datasets = append(datasets, Dataset{Name: name, Rows: rows})
		}
		return datasets, nil
	}

	path := cfg.DashboardCSV
	if path == "" {
		path = contract.DefaultOutputFile
	}
	rows, err := LoadRows(path)
	if err != nil {
		return nil, err
	}
	return []Dataset{{Name: "Metrics", Rows: rows}}, nil
}

// ParseDatasetArg splits a "Display Name=path/to.csv" argument.
func ParseDatasetArg(entry string) (name string, path string, err error) {
	name, path, found := strings.Cut(entry, "=")
	if !found || strings.TrimSpace(name) == "" || strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("invalid dataset %q: expected 'Name=path/to.csv'", entry)
	}
	return strings.TrimSpace(name), strings.TrimSpace(path), nil
}

// writePage renders the page to the output file.
func writePage(page *components.Page, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create dashboard file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
