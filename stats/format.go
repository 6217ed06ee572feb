package stats

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/modelbench/benchgraph/dataset"
)

// SummaryTable renders a per-model overview for stdout, best first.
func SummaryTable(models []dataset.ModelStat) string {
	ranked := OverallStats(models, -1)
	byID := make(map[string]dataset.ModelStat, len(models))
	for _, m := range models {
		byID[m.ModelID] = m
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Model", "Correct %", "Prompt t/s", "Gen t/s", "Questions"})
	for _, r := range ranked {
		m := byID[r.ModelID]
		t.AppendRows([]table.Row{{
			m.ModelID,
			fmt.Sprintf("%.1f", m.PercentageCorrect),
			fmt.Sprintf("%.1f", m.AvgPromptEvalPerSecond),
			fmt.Sprintf("%.1f", m.AvgTokensPerSecond),
			m.TotalQuestions,
		}})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
