package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/plot"
)

func testDataset() *dataset.Dataset {
	ds := &dataset.Dataset{
		ModelStats: []dataset.ModelStat{
			{ModelID: "alpha", PercentageCorrect: 82.5, AvgPromptEvalPerSecond: 120.0, AvgTokensPerSecond: 45.5, TotalQuestions: 200},
			{ModelID: "beta", PercentageCorrect: 64.0, AvgPromptEvalPerSecond: 310.0, AvgTokensPerSecond: 90.0, TotalQuestions: 200},
		},
	}
	for i := 0; i < 4; i++ {
		ds.Runs = append(ds.Runs, dataset.BenchmarkRun{ModelID: "alpha", Category: "Math", Correct: 1})
	}
	return ds
}

func testOptions() plot.Options {
	return plot.Options{TopNOverall: 50, TopNPerCategory: 15, MinSamples: 3, QuantileBuckets: 5, LogScaleRatio: 20.0}
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(testDataset(), testOptions(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "alpha")
	assert.Contains(t, html, "Benchmark Report")
}

func TestWriteHTMLNoModels(t *testing.T) {
	err := WriteHTML(&dataset.Dataset{}, testOptions(), filepath.Join(t.TempDir(), "report.html"))
	assert.ErrorIs(t, err, dataset.ErrEmptyResult)
}

func TestWriteHTMLWithoutRuns(t *testing.T) {
	ds := testDataset()
	ds.Runs = nil
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(ds, testOptions(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Model Speeds")
}
