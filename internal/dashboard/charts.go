package dashboard

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Chart palette and layout. Rates share a fixed 0..1 axis so charts stay
// comparable across datasets.
const (
	chartWidth  = "900px"
	chartHeight = "420px"

	survivalColor = "#2f9e44"
	reworkColor   = "#e8590c"
	qualityColor  = "#1971c2"
	scatterColor  = "#862e9c"

	dateLabelFormat = "2006-01-02 15:04"

	// missingValue is the echarts sentinel for a gap in a series.
	missingValue = "-"
)

func buildSurvivalChart(ds Dataset, stats Stats) *charts.Line {
	line := newRateLine(
		fmt.Sprintf("%s: Survival Rate per Commit", ds.Name),
		fmt.Sprintf("Commits: %d · Lines added: %d · Overall survival: %s",
			stats.Commits, stats.TotalAdded, schema.FormatRate(stats.Survival)),
		ds.Rows,
	)

	data := make([]opts.LineData, len(ds.Rows))
	for i, row := range ds.Rows {
		data[i] = opts.LineData{Value: row.SurvivalRate}
	}
	line.AddSeries("Survival", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: survivalColor}),
	)
	return line
}

func buildReworkChart(ds Dataset, stats Stats) *charts.Line {
	subtitle := "Immediate rework: no follow-up commits observed"
	if stats.ReworkKnown {
		subtitle = fmt.Sprintf("Avg immediate rework: %s", schema.FormatRate(stats.Rework))
	}
	line := newRateLine(fmt.Sprintf("%s: Immediate Rework Rate", ds.Name), subtitle, ds.Rows)

	// Unknown rates render as gaps, not zeros.
	data := make([]opts.LineData, len(ds.Rows))
	for i, row := range ds.Rows {
		if row.ReworkKnown {
			data[i] = opts.LineData{Value: row.ReworkRate}
		} else {
			data[i] = opts.LineData{Value: missingValue}
		}
	}
	line.AddSeries("Rework", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: reworkColor}),
	)
	return line
}

func buildQualityChart(ds Dataset, stats Stats) *charts.Line {
	line := newRateLine(
		fmt.Sprintf("%s: Quality Index per Commit", ds.Name),
		fmt.Sprintf("survival x (1 - rework) · Avg: %s", schema.FormatRate(stats.Quality)),
		ds.Rows,
	)

	data := make([]opts.LineData, len(ds.Rows))
	for i, row := range ds.Rows {
		data[i] = opts.LineData{
			Value: schema.QualityIndex(row.SurvivalRate, row.ReworkRate, row.ReworkKnown),
		}
	}
	line.AddSeries("Quality", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: qualityColor}),
	)
	return line
}

func buildScatterChart(ds Dataset) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: Commit Size vs Survival", ds.Name),
			Subtitle: "Each point is one commit",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Lines added"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Survival rate", Min: 0, Max: 1}),
	)

	data := make([]opts.ScatterData, len(ds.Rows))
	for i, row := range ds.Rows {
		data[i] = opts.ScatterData{Value: []any{row.LinesAdded, row.SurvivalRate}}
	}
	scatter.AddSeries("Commits", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: scatterColor}),
	)
	return scatter
}

// newRateLine builds a line chart shell with the shared time axis and the
// fixed 0..1 rate axis.
func newRateLine(title, subtitle string, rows []schema.CommitRow) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Rate", Min: 0, Max: 1}),
	)
	line.SetXAxis(dateLabels(rows))
	return line
}

// dateLabels formats each row's commit timestamp for the X axis.
func dateLabels(rows []schema.CommitRow) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Date.Format(dateLabelFormat)
	}
	return labels
}
