package dataset

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Load reads both relations from the sqlite file at path. The snapshot is
// validated here so callers never re-check columns at use sites.
func Load(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, path)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer closeDB(db)

	models, err := loadModelStats(db)
	if err != nil {
		return nil, err
	}
	runs, err := loadRuns(db)
	if err != nil {
		return nil, err
	}
	return &Dataset{ModelStats: models, Runs: runs}, nil
}

func loadModelStats(db *gorm.DB) ([]ModelStat, error) {
	if !db.Migrator().HasTable(TableModelStats) {
		return nil, fmt.Errorf("%w: table %s missing", ErrDataUnavailable, TableModelStats)
	}
	for _, col := range []string{"model_id", "avg_prompt_eval_per_second", "avg_tokens_per_second", "total_questions"} {
		if !db.Migrator().HasColumn(TableModelStats, col) {
			return nil, fmt.Errorf("%w: %s.%s missing", ErrSchemaMismatch, TableModelStats, col)
		}
	}
	hasGiven := db.Migrator().HasColumn(TableModelStats, "percentage_correct")
	if !hasGiven && !db.Migrator().HasColumn(TableModelStats, "correct_answers") {
		return nil, fmt.Errorf("%w: %s needs percentage_correct or correct_answers", ErrSchemaMismatch, TableModelStats)
	}

	var rows []ModelStat
	if err := db.Table(TableModelStats).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, TableModelStats, err)
	}
	if !hasGiven {
		for i := range rows {
			rows[i].PercentageCorrect = DerivePercentage(rows[i].CorrectAnswers, rows[i].TotalQuestions)
		}
	}
	return rows, nil
}

// benchmarkRunRow keeps category nullable during scan only.
type benchmarkRunRow struct {
	ModelID  string  `gorm:"column:model_id"`
	Category *string `gorm:"column:category"`
	Correct  int64   `gorm:"column:correct"`
}

func loadRuns(db *gorm.DB) ([]BenchmarkRun, error) {
	if !db.Migrator().HasTable(TableBenchmarkRuns) {
		return nil, fmt.Errorf("%w: table %s missing", ErrDataUnavailable, TableBenchmarkRuns)
	}
	for _, col := range []string{"model_id", "correct"} {
		if !db.Migrator().HasColumn(TableBenchmarkRuns, col) {
			return nil, fmt.Errorf("%w: %s.%s missing", ErrSchemaMismatch, TableBenchmarkRuns, col)
		}
	}
	hasCategory := db.Migrator().HasColumn(TableBenchmarkRuns, "category")

	var raw []benchmarkRunRow
	if err := db.Table(TableBenchmarkRuns).Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, TableBenchmarkRuns, err)
	}
	runs := make([]BenchmarkRun, 0, len(raw))
	for _, r := range raw {
		category := UncategorizedLabel
		if hasCategory && r.Category != nil && *r.Category != "" {
			category = *r.Category
		}
		runs = append(runs, BenchmarkRun{ModelID: r.ModelID, Category: category, Correct: r.Correct})
	}
	return runs, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Println("dataset: close:", err)
		return
	}
	_ = sqlDB.Close()
}
