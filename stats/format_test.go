package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelbench/benchgraph/dataset"
)

func TestSummaryTable(t *testing.T) {
	models := []dataset.ModelStat{
		{ModelID: "alpha", PercentageCorrect: 64.0, AvgPromptEvalPerSecond: 310.2, AvgTokensPerSecond: 90.0, TotalQuestions: 200},
		{ModelID: "beta", PercentageCorrect: 82.5, AvgPromptEvalPerSecond: 120.0, AvgTokensPerSecond: 45.5, TotalQuestions: 200},
	}

	out := SummaryTable(models)
	assert.Contains(t, out, "MODEL")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "82.5")
	assert.Contains(t, out, "310.2")
	// best model first
	assert.Less(t, strings.Index(out, "beta"), strings.Index(out, "alpha"))
}

func TestSummaryTableEmpty(t *testing.T) {
	out := SummaryTable(nil)
	assert.Contains(t, out, "MODEL")
}
