package dataset

import (
	"errors"
	"math"
)

const (
	TableModelStats    = "model_stats"
	TableBenchmarkRuns = "benchmark_runs"

	// UncategorizedLabel replaces NULL categories at load time.
	UncategorizedLabel = "Uncategorized"
)

var (
	// ErrDataUnavailable: dataset file or one of its tables is missing.
	ErrDataUnavailable = errors.New("dataset unavailable")
	// ErrSchemaMismatch: an expected column is absent.
	ErrSchemaMismatch = errors.New("dataset schema mismatch")
	// ErrEmptyResult: a query or filter produced zero rows.
	ErrEmptyResult = errors.New("empty result")
)

// ModelStat is one row of model_stats: aggregate results for a single model.
type ModelStat struct {
	ModelID                string  `gorm:"column:model_id"`
	PercentageCorrect      float64 `gorm:"column:percentage_correct"`
	AvgPromptEvalPerSecond float64 `gorm:"column:avg_prompt_eval_per_second"`
	AvgTokensPerSecond     float64 `gorm:"column:avg_tokens_per_second"`
	TotalQuestions         int64   `gorm:"column:total_questions"`
	CorrectAnswers         int64   `gorm:"column:correct_answers"`
}

// BenchmarkRun is one row of benchmark_runs: a single answered question.
type BenchmarkRun struct {
	ModelID  string `gorm:"column:model_id"`
	Category string `gorm:"column:category"`
	Correct  int64  `gorm:"column:correct"`
}

// Dataset is a read-only snapshot of both relations, loaded once per session.
type Dataset struct {
	ModelStats []ModelStat
	Runs       []BenchmarkRun
}

// DerivePercentage computes 100*correct/total rounded to one decimal.
// A zero total yields 0, never a division fault.
func DerivePercentage(correct, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(1000*float64(correct)/float64(total)) / 10
}
