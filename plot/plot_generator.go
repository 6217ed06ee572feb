package plot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrRenderSkipped marks a chart that was skipped, not a fatal failure:
// required columns or non-empty rows were unavailable.
var ErrRenderSkipped = errors.New("chart render skipped")

// quantilePalette colors scatter points by correctness quantile, low to high.
var quantilePalette = []drawing.Color{
	drawing.ColorFromHex("440154"),
	drawing.ColorFromHex("3b528b"),
	drawing.ColorFromHex("21918c"),
	drawing.ColorFromHex("5ec962"),
	drawing.ColorFromHex("fde725"),
}

// QuantileColor returns the palette color for a bucket index.
func QuantileColor(bucket int) drawing.Color {
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= len(quantilePalette) {
		bucket = len(quantilePalette) - 1
	}
	return quantilePalette[bucket]
}

// DrawPercentageBar renders a bar chart of 0-100 percentage values with
// rotated item labels.
func DrawPercentageBar(labels []string, values []float64, title string) ([]byte, error) {
	if len(labels) == 0 || len(labels) != len(values) {
		return nil, fmt.Errorf("%w: no bars to draw", ErrRenderSkipped)
	}
	var bars []chart.Value
	for i := range labels {
		bars = append(bars, chart.Value{
			Value: values[i],
			Label: labels[i],
			Style: chart.Style{
				FillColor: drawing.ColorFromHex("3b528b").WithAlpha(220),
			},
		})
	}

	width, height := BarChartSize(len(bars))
	bar := chart.BarChart{
		Title: title,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: chart.ColorBlack,
			Padding: chart.Box{
				Top:    50,
				Bottom: 220,
			},
		},
		Width:    width,
		Height:   height,
		BarWidth: 40,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Correctness (%)",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 105.0,
			},
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
				FontSize:    12,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		XAxis: chart.Style{
			StrokeWidth:         2,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 88,
			FontSize:            10,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// ScatterGroup is one colored point set of a scatter plot.
type ScatterGroup struct {
	Name    string
	XValues []float64
	YValues []float64
	Color   drawing.Color
}

// DrawScatter renders grouped points; logX/logY switch the axis transform.
func DrawScatter(groups []ScatterGroup, title, xName, yName string, logX, logY bool) ([]byte, error) {
	total := 0
	var series []chart.Series
	for _, g := range groups {
		if len(g.XValues) == 0 {
			continue
		}
		total += len(g.XValues)
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: g.XValues,
			YValues: g.YValues,
			Style: chart.Style{
				StrokeWidth: 0,
				DotWidth:    7,
				DotColor:    g.Color,
			},
		})
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no points to draw", ErrRenderSkipped)
	}

	suffix := func(log bool) string {
		if log {
			return " (log scale)"
		}
		return ""
	}
	width, height := ScatterSize()
	graph := chart.Chart{
		Title: title,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: xName + suffix(logX),
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.1f", vf)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: yName + suffix(logY),
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.1f", vf)
				}
				return ""
			},
		},
		Series: series,
	}
	if logX {
		graph.XAxis.Range = &chart.LogarithmicRange{}
	}
	if logY {
		graph.YAxis.Range = &chart.LogarithmicRange{}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}
