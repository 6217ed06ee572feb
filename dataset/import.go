package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const importBatchSize = 500

var columnTypes = map[string]string{
	"model_id":                   "TEXT",
	"category":                   "TEXT",
	"correct":                    "INTEGER",
	"total_questions":            "INTEGER",
	"correct_answers":            "INTEGER",
	"percentage_correct":         "REAL",
	"avg_prompt_eval_per_second": "REAL",
	"avg_tokens_per_second":      "REAL",
}

// ImportCSV builds or refreshes one table of a benchmark database from a CSV
// export. The target table is chosen from the header: a `correct` column
// means benchmark_runs, otherwise model_stats. Archived inputs (.zip, .gz,
// .lz4) are staged and unpacked first.
func ImportCSV(csvPath, dbPath string) (string, error) {
	staged, stagingDir, err := StageInput(csvPath)
	if err != nil {
		return "", err
	}
	if stagingDir != "" {
		defer os.RemoveAll(stagingDir)
	}

	f, err := os.Open(staged)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	headers, err := r.Read()
	if err != nil {
		return "", fmt.Errorf("read csv header: %v", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ToLower(headers[i]))
	}
	tableName := TableModelStats
	for _, h := range headers {
		if h == "correct" {
			tableName = TableBenchmarkRuns
		}
	}
	if !contains(headers, "model_id") {
		return "", fmt.Errorf("%w: csv has no model_id column", ErrSchemaMismatch)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return "", err
	}
	defer closeDB(db)

	fields := make([]string, len(headers))
	for i, h := range headers {
		typ, ok := columnTypes[h]
		if !ok {
			typ = "TEXT"
		}
		fields[i] = fmt.Sprintf("%s %s", h, typ)
	}
	if tx := db.Exec("DROP TABLE IF EXISTS " + tableName); tx.Error != nil {
		return "", tx.Error
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(fields, ", "))
	if tx := db.Exec(create); tx.Error != nil {
		return "", tx.Error
	}

	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(headers)), ",") + ")"
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", tableName, strings.Join(headers, ", "), placeholders)

	lines := 0
	batch := make([][]interface{}, 0, importBatchSize)
	flush := func() error {
		for _, row := range batch {
			if tx := db.Exec(insert, row...); tx.Error != nil {
				return tx.Error
			}
		}
		batch = batch[:0]
		return nil
	}
	for {
		values, err := r.Read()
		if err != nil {
			break
		}
		if len(values) != len(headers) {
			continue
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			if v == "" {
				row[i] = nil
			} else {
				row[i] = v
			}
		}
		batch = append(batch, row)
		lines++
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return "", err
			}
		}
	}
	if err := flush(); err != nil {
		return "", err
	}
	log.Printf("imported %d rows into %s", lines, tableName)
	return tableName, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
