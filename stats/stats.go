package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/modelbench/benchgraph/dataset"
)

// OverallColumn is the first heatmap column, holding overall correctness.
const OverallColumn = "Overall"

// ModelRank is one entry of the overall ranking.
type ModelRank struct {
	ModelID           string
	PercentageCorrect float64
}

// CategoryRank is one entry of a per-category ranking.
type CategoryRank struct {
	ModelID           string
	PercentageCorrect float64
	CorrectCount      int64
	SampleCount       int64
}

// OverallStats ranks models by correctness, descending, truncated to n.
// Ties keep the input order.
func OverallStats(models []dataset.ModelStat, n int) []ModelRank {
	ranks := make([]ModelRank, 0, len(models))
	for _, m := range models {
		ranks = append(ranks, ModelRank{ModelID: m.ModelID, PercentageCorrect: m.PercentageCorrect})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].PercentageCorrect > ranks[j].PercentageCorrect
	})
	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// CategoryStats ranks models within one category, keeping only models with
// at least minSamples answered questions there, truncated to n.
func CategoryStats(runs []dataset.BenchmarkRun, category string, minSamples, n int) []CategoryRank {
	type agg struct {
		correct int64
		total   int64
	}
	order := []string{}
	byModel := map[string]*agg{}
	for _, r := range runs {
		if r.Category != category {
			continue
		}
		a, ok := byModel[r.ModelID]
		if !ok {
			a = &agg{}
			byModel[r.ModelID] = a
			order = append(order, r.ModelID)
		}
		a.total++
		if r.Correct != 0 {
			a.correct++
		}
	}

	ranks := make([]CategoryRank, 0, len(order))
	for _, id := range order {
		a := byModel[id]
		if a.total < int64(minSamples) {
			continue
		}
		ranks = append(ranks, CategoryRank{
			ModelID:           id,
			PercentageCorrect: dataset.DerivePercentage(a.correct, a.total),
			CorrectCount:      a.correct,
			SampleCount:       a.total,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].PercentageCorrect > ranks[j].PercentageCorrect
	})
	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// Categories lists the distinct categories present in runs, sorted.
func Categories(runs []dataset.BenchmarkRun) []string {
	set := map[string]struct{}{}
	for _, r := range runs {
		set[r.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Matrix is the heatmap pivot: rows are model IDs in overall-ranking order,
// columns are "Overall" followed by categories sorted ascending. Absent
// cells are NaN.
type Matrix struct {
	Rows  []string
	Cols  []string
	Cells [][]float64
}

// CategoryMatrix builds the heatmap data for the topM models. When no run
// row references a top model, or no (model, category) group reaches
// minSamples, the matrix degrades to the single Overall column.
func CategoryMatrix(models []dataset.ModelStat, runs []dataset.BenchmarkRun, topM, minSamples int) (*Matrix, error) {
	top := OverallStats(models, topM)
	if len(top) == 0 {
		return nil, fmt.Errorf("%w: no model stats for heatmap", dataset.ErrEmptyResult)
	}
	rowIdx := make(map[string]int, len(top))
	rows := make([]string, len(top))
	for i, r := range top {
		rows[i] = r.ModelID
		rowIdx[r.ModelID] = i
	}

	type agg struct {
		correct int64
		total   int64
	}
	groups := map[string]map[string]*agg{} // category -> model -> counts
	for _, r := range runs {
		if _, ok := rowIdx[r.ModelID]; !ok {
			continue
		}
		byModel, ok := groups[r.Category]
		if !ok {
			byModel = map[string]*agg{}
			groups[r.Category] = byModel
		}
		a, ok := byModel[r.ModelID]
		if !ok {
			a = &agg{}
			byModel[r.ModelID] = a
		}
		a.total++
		if r.Correct != 0 {
			a.correct++
		}
	}

	// Categories survive only while some model meets the sample minimum.
	cols := []string{OverallColumn}
	kept := map[string]map[string]*agg{}
	for category, byModel := range groups {
		for id, a := range byModel {
			if a.total >= int64(minSamples) {
				m, ok := kept[category]
				if !ok {
					m = map[string]*agg{}
					kept[category] = m
					cols = append(cols, category)
				}
				m[id] = a
			}
		}
	}
	sort.Strings(cols[1:])

	cells := make([][]float64, len(rows))
	for i := range cells {
		cells[i] = make([]float64, len(cols))
		cells[i][0] = top[i].PercentageCorrect
		for j := 1; j < len(cols); j++ {
			cells[i][j] = math.NaN()
		}
	}
	for j, category := range cols {
		if j == 0 {
			continue
		}
		for id, a := range kept[category] {
			cells[rowIdx[id]][j] = dataset.DerivePercentage(a.correct, a.total)
		}
	}
	return &Matrix{Rows: rows, Cols: cols, Cells: cells}, nil
}
