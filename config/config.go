package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Defaults mirror the reference benchmark pipeline.
const (
	DefaultDBPath    = "benchmark.db"
	DefaultOutputDir = "benchmark_graphs"

	DefaultTopNOverall     = 50
	DefaultTopNPerCategory = 15
	DefaultMinSamples      = 3
	DefaultQuantileBuckets = 5
	DefaultLogScaleRatio   = 20.0
)

var defaultCategories = []string{
	"Computer Science", "Drupal", "History", "Math", "Logic", "Science",
	"Language", "Literature", "Philosophy", "Music", "Culture", "Economics",
	"Geography",
}

type Config struct {
	DBPath    string
	OutputDir string

	TopNOverall     int
	TopNPerCategory int
	MinSamples      int
	QuantileBuckets int
	LogScaleRatio   float64

	// Categories that get a dedicated top-models bar chart.
	Categories []string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loading .env on first use.
func GetConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		config = &Config{
			DBPath:          envString("BENCH_DB_PATH", DefaultDBPath),
			OutputDir:       envString("BENCH_OUTPUT_DIR", DefaultOutputDir),
			TopNOverall:     envInt("BENCH_TOP_N_OVERALL", DefaultTopNOverall),
			TopNPerCategory: envInt("BENCH_TOP_N_PER_CATEGORY", DefaultTopNPerCategory),
			MinSamples:      envInt("BENCH_MIN_SAMPLES", DefaultMinSamples),
			QuantileBuckets: envInt("BENCH_QUANTILE_BUCKETS", DefaultQuantileBuckets),
			LogScaleRatio:   envFloat("BENCH_LOG_SCALE_RATIO", DefaultLogScaleRatio),
			Categories:      envList("BENCH_CATEGORIES", defaultCategories),
		}
	})
	return config
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
