// Package report writes an interactive HTML companion to the PNG charts.
package report

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/plot"
	"github.com/modelbench/benchgraph/stats"
)

// WriteHTML renders the overall bar, speed scatter and category heatmap
// into a single HTML page at path.
func WriteHTML(ds *dataset.Dataset, options plot.Options, path string) error {
	if ds == nil || len(ds.ModelStats) == 0 {
		return fmt.Errorf("%w: no model stats for report", dataset.ErrEmptyResult)
	}

	page := components.NewPage()
	page.PageTitle = "Benchmark Report"
	page.AddCharts(
		correctnessBar(ds, options),
		speedScatter(ds),
	)
	if hm := categoryHeatmap(ds, options); hm != nil {
		page.AddCharts(hm)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func correctnessBar(ds *dataset.Dataset, options plot.Options) *charts.Bar {
	ranks := stats.OverallStats(ds.ModelStats, options.TopNOverall)
	names := make([]string, len(ranks))
	values := make([]opts.BarData, len(ranks))
	for i, r := range ranks {
		names[i] = r.ModelID
		values[i] = opts.BarData{Value: r.PercentageCorrect}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Models by Correctness", len(ranks))}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Correctness (%)", Max: 100}),
	)
	bar.SetXAxis(names).AddSeries("Correctness %", values)
	return bar
}

func speedScatter(ds *dataset.Dataset) *charts.Scatter {
	points := make([]opts.ScatterData, 0, len(ds.ModelStats))
	for _, m := range ds.ModelStats {
		points = append(points, opts.ScatterData{
			Name:  m.ModelID,
			Value: []interface{}{m.AvgPromptEvalPerSecond, m.AvgTokensPerSecond},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Model Speeds (Prompt vs. Generation)"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Prompt eval t/s"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Generation t/s"}),
	)
	scatter.AddSeries("models", points)
	return scatter
}

func categoryHeatmap(ds *dataset.Dataset, options plot.Options) *charts.HeatMap {
	m, err := stats.CategoryMatrix(ds.ModelStats, ds.Runs, options.TopNOverall, options.MinSamples)
	if err != nil {
		return nil
	}

	var cells []opts.HeatMapData
	for i := range m.Rows {
		for j := range m.Cols {
			v := m.Cells[i][j]
			if math.IsNaN(v) {
				continue
			}
			// echarts rows grow upward, so invert the row index
			cells = append(cells, opts.HeatMapData{Value: [3]interface{}{j, len(m.Rows) - 1 - i, v}})
		}
	}
	rows := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		rows[len(m.Rows)-1-i] = r
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correctness by Category & Overall"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: m.Cols}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: rows}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: 100,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#b2182b", "#ffffff", "#2166ac"},
			},
		}),
	)
	hm.AddSeries("correctness", cells)
	return hm
}
