package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/modelbench/benchgraph/config"
	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/plot"
	"github.com/modelbench/benchgraph/report"
	"github.com/modelbench/benchgraph/stats"
)

// renderAll writes every configured chart, skipping (with a diagnostic) any
// chart whose inputs are unavailable, and returns the files written.
func renderAll(ds *dataset.Dataset, cfg *config.Config) []string {
	options := plot.Options{
		TopNOverall:     cfg.TopNOverall,
		TopNPerCategory: cfg.TopNPerCategory,
		MinSamples:      cfg.MinSamples,
		QuantileBuckets: cfg.QuantileBuckets,
		LogScaleRatio:   cfg.LogScaleRatio,
	}

	var written []string
	save := func(name string, png []byte, err error) {
		if err != nil {
			log.Printf("skipping %s: %v", name, err)
			return
		}
		path := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(path, png, 0644); err != nil {
			log.Printf("cannot write %s: %v", path, err)
			return
		}
		fmt.Println("saved:", path)
		written = append(written, path)
	}

	png, err := plot.OverallCorrectnessBar(ds.ModelStats, options)
	save("overall_model_correctness_top_n_bar.png", png, err)

	png, err = plot.SpeedScatter(ds.ModelStats, options)
	save("overall_model_speeds_scatter.png", png, err)

	for _, metric := range []plot.SpeedMetric{plot.PromptEvalSpeed, plot.TokenGenSpeed} {
		png, err = plot.QualityScatter(ds.ModelStats, metric, options)
		save(metric.FileSlug()+"_vs_quality.png", png, err)
	}

	png, err = plot.CategoryHeatmap(ds.ModelStats, ds.Runs, options)
	save(fmt.Sprintf("category_correctness_heatmap_top_%d.png", cfg.TopNOverall), png, err)

	available := map[string]bool{}
	for _, c := range stats.Categories(ds.Runs) {
		available[c] = true
	}
	for _, category := range cfg.Categories {
		if !available[category] {
			continue
		}
		png, err = plot.CategoryBar(ds.Runs, category, options)
		save(fmt.Sprintf("category_%s_top_models_bar.png", stats.SanitizeName(category)), png, err)
	}

	reportPath := filepath.Join(cfg.OutputDir, "report.html")
	if err := report.WriteHTML(ds, options, reportPath); err != nil {
		log.Printf("skipping %s: %v", reportPath, err)
	} else {
		fmt.Println("saved:", reportPath)
		written = append(written, reportPath)
	}
	return written
}
