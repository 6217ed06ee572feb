package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbench/benchgraph/dataset"
)

func testOptions() Options {
	return Options{
		TopNOverall:     50,
		TopNPerCategory: 15,
		MinSamples:      3,
		QuantileBuckets: 5,
		LogScaleRatio:   20.0,
	}
}

func sampleModels() []dataset.ModelStat {
	return []dataset.ModelStat{
		{ModelID: "alpha", PercentageCorrect: 82.5, AvgPromptEvalPerSecond: 120.0, AvgTokensPerSecond: 45.5, TotalQuestions: 200},
		{ModelID: "beta", PercentageCorrect: 64.0, AvgPromptEvalPerSecond: 310.0, AvgTokensPerSecond: 90.0, TotalQuestions: 200},
		{ModelID: "gamma", PercentageCorrect: 40.0, AvgPromptEvalPerSecond: 95.0, AvgTokensPerSecond: 30.0, TotalQuestions: 200},
	}
}

func sampleRuns() []dataset.BenchmarkRun {
	var runs []dataset.BenchmarkRun
	for i := 0; i < 4; i++ {
		runs = append(runs, dataset.BenchmarkRun{ModelID: "alpha", Category: "Math", Correct: 1})
		runs = append(runs, dataset.BenchmarkRun{ModelID: "beta", Category: "Math", Correct: int64(i % 2)})
	}
	runs = append(runs, dataset.BenchmarkRun{ModelID: "alpha", Category: "Coding", Correct: 1})
	return runs
}

func TestOverallCorrectnessBar(t *testing.T) {
	data, err := OverallCorrectnessBar(sampleModels(), testOptions())
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestOverallCorrectnessBarNoModels(t *testing.T) {
	_, err := OverallCorrectnessBar(nil, testOptions())
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestCategoryBar(t *testing.T) {
	data, err := CategoryBar(sampleRuns(), "Math", testOptions())
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestCategoryBarBelowSampleMinimum(t *testing.T) {
	// Coding has a single run, under the minimum of 3
	_, err := CategoryBar(sampleRuns(), "Coding", testOptions())
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestSpeedScatter(t *testing.T) {
	data, err := SpeedScatter(sampleModels(), testOptions())
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestSpeedScatterNoModels(t *testing.T) {
	_, err := SpeedScatter(nil, testOptions())
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestQualityScatterBothMetrics(t *testing.T) {
	for _, metric := range []SpeedMetric{PromptEvalSpeed, TokenGenSpeed} {
		data, err := QualityScatter(sampleModels(), metric, testOptions())
		require.NoError(t, err)
		decodePNG(t, data)
	}
}

func TestCategoryHeatmap(t *testing.T) {
	data, err := CategoryHeatmap(sampleModels(), sampleRuns(), testOptions())
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestCategoryHeatmapNoModels(t *testing.T) {
	_, err := CategoryHeatmap(nil, sampleRuns(), testOptions())
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestSpeedMetricNames(t *testing.T) {
	assert.Equal(t, "avg-prompt-eval-per-second", PromptEvalSpeed.FileSlug())
	assert.Equal(t, "avg-tokens-per-second", TokenGenSpeed.FileSlug())
	assert.NotEqual(t, PromptEvalSpeed.AxisName(), TokenGenSpeed.AxisName())
}

func TestQuantileGroupsDropNonPositiveOnLogAxis(t *testing.T) {
	xs := []float64{0, 10, 100}
	ys := []float64{1, 2, 3}
	groups := quantileGroups(xs, ys, ys, 5, true, false)
	total := 0
	for _, g := range groups {
		total += len(g.XValues)
	}
	assert.Equal(t, 2, total)
}
