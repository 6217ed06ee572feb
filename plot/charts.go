package plot

import (
	"fmt"
	"sort"

	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/stats"
)

// SpeedMetric selects which per-model speed column a chart plots.
type SpeedMetric int

const (
	PromptEvalSpeed SpeedMetric = iota
	TokenGenSpeed
)

func (m SpeedMetric) FileSlug() string {
	if m == PromptEvalSpeed {
		return "avg-prompt-eval-per-second"
	}
	return "avg-tokens-per-second"
}

func (m SpeedMetric) AxisName() string {
	if m == PromptEvalSpeed {
		return "Average Prompt Evaluation (tokens/s)"
	}
	return "Average Token Generation (tokens/s)"
}

func (m SpeedMetric) value(s dataset.ModelStat) float64 {
	if m == PromptEvalSpeed {
		return s.AvgPromptEvalPerSecond
	}
	return s.AvgTokensPerSecond
}

// Options carries the aggregation knobs shared by every chart.
type Options struct {
	TopNOverall     int
	TopNPerCategory int
	MinSamples      int
	QuantileBuckets int
	LogScaleRatio   float64
}

// OverallCorrectnessBar charts the top-N models by overall correctness.
func OverallCorrectnessBar(models []dataset.ModelStat, opts Options) ([]byte, error) {
	ranks := stats.OverallStats(models, opts.TopNOverall)
	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: no model stats", ErrRenderSkipped)
	}
	labels := make([]string, len(ranks))
	values := make([]float64, len(ranks))
	for i, r := range ranks {
		labels[i] = fmt.Sprintf("%s  %.1f%%", r.ModelID, r.PercentageCorrect)
		values[i] = r.PercentageCorrect
	}
	title := fmt.Sprintf("Top %d Models by Correctness", len(ranks))
	return DrawPercentageBar(labels, values, title)
}

// CategoryBar charts the top models within one category; models below the
// sample minimum are excluded.
func CategoryBar(runs []dataset.BenchmarkRun, category string, opts Options) ([]byte, error) {
	ranks := stats.CategoryStats(runs, category, opts.MinSamples, opts.TopNPerCategory)
	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: no models with >=%d samples in %q", ErrRenderSkipped, opts.MinSamples, category)
	}
	labels := make([]string, len(ranks))
	values := make([]float64, len(ranks))
	for i, r := range ranks {
		labels[i] = fmt.Sprintf("%s  %.1f%% (%d/%d)", r.ModelID, r.PercentageCorrect, r.CorrectCount, r.SampleCount)
		values[i] = r.PercentageCorrect
	}
	return DrawPercentageBar(labels, values, "Top Models for Category: "+category)
}

// SpeedScatter charts prompt-eval vs generation speed, colored by
// correctness quantile.
func SpeedScatter(models []dataset.ModelStat, opts Options) ([]byte, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: no model stats", ErrRenderSkipped)
	}
	xs := make([]float64, len(models))
	ys := make([]float64, len(models))
	pcts := make([]float64, len(models))
	for i, m := range models {
		xs[i] = m.AvgPromptEvalPerSecond
		ys[i] = m.AvgTokensPerSecond
		pcts[i] = m.PercentageCorrect
	}
	logX := stats.LogScaleDecision(xs, opts.LogScaleRatio)
	logY := stats.LogScaleDecision(ys, opts.LogScaleRatio)
	groups := quantileGroups(xs, ys, pcts, opts.QuantileBuckets, logX, logY)
	return DrawScatter(groups,
		"Model Speeds (Prompt vs. Generation)",
		PromptEvalSpeed.AxisName(), TokenGenSpeed.AxisName(),
		logX, logY)
}

// QualityScatter charts one speed metric against overall correctness.
func QualityScatter(models []dataset.ModelStat, metric SpeedMetric, opts Options) ([]byte, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: no model stats", ErrRenderSkipped)
	}
	xs := make([]float64, len(models))
	ys := make([]float64, len(models))
	for i, m := range models {
		xs[i] = metric.value(m)
		ys[i] = m.PercentageCorrect
	}
	logX := stats.LogScaleDecision(xs, opts.LogScaleRatio)
	groups := quantileGroups(xs, ys, ys, opts.QuantileBuckets, logX, false)
	title := fmt.Sprintf("%s vs. Overall Correctness", metric.AxisName())
	return DrawScatter(groups, title, metric.AxisName(), "Overall Correctness (%)", logX, false)
}

// CategoryHeatmap charts correctness per category for the top models, with
// the overall column first.
func CategoryHeatmap(models []dataset.ModelStat, runs []dataset.BenchmarkRun, opts Options) ([]byte, error) {
	m, err := stats.CategoryMatrix(models, runs, opts.TopNOverall, opts.MinSamples)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderSkipped, err)
	}
	title := fmt.Sprintf("Correctness by Category & Overall (Top %d Models, Cats >= %d Qs)", len(m.Rows), opts.MinSamples)
	return DrawHeatmap(m, title)
}

// quantileGroups splits points into colored groups by the quantile bucket of
// hueValues. Points incompatible with a requested log axis are dropped, the
// way the axis decision itself ignores them.
func quantileGroups(xs, ys, hueValues []float64, n int, logX, logY bool) []ScatterGroup {
	buckets := stats.QuantileBuckets(hueValues, n)
	byBucket := map[int]*ScatterGroup{}
	var order []int
	for i := range xs {
		if logX && xs[i] <= 0 {
			continue
		}
		if logY && ys[i] <= 0 {
			continue
		}
		b := buckets[i]
		g, ok := byBucket[b]
		if !ok {
			g = &ScatterGroup{
				Name:  fmt.Sprintf("Q%d", b+1),
				Color: QuantileColor(b),
			}
			byBucket[b] = g
			order = append(order, b)
		}
		g.XValues = append(g.XValues, xs[i])
		g.YValues = append(g.YValues, ys[i])
	}
	sort.Ints(order)
	groups := make([]ScatterGroup, 0, len(order))
	for _, b := range order {
		groups = append(groups, *byBucket[b])
	}
	return groups
}
