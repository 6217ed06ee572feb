package main

import (
	"fmt"
	"log"
	"os"

	"github.com/modelbench/benchgraph/config"
	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/stats"
)

func main() {
	cfg := config.GetConfig()
	fmt.Println("loading dataset:", cfg.DBPath)

	// Only a completely absent dataset halts the run, before any chart.
	if _, err := os.Stat(cfg.DBPath); err != nil {
		log.Fatalf("dataset file %q not found", cfg.DBPath)
	}
	ds, err := dataset.Load(cfg.DBPath)
	if err != nil {
		log.Fatalln("cannot load dataset:", err)
	}
	if err := clearOutputDirectory(cfg.OutputDir); err != nil {
		log.Fatalln("cannot prepare output directory:", err)
	}

	fmt.Println(stats.SummaryTable(ds.ModelStats))

	written := renderAll(ds, cfg)
	log.Printf("done: %d charts saved to %s", len(written), cfg.OutputDir)
}

// clearOutputDirectory empties the chart directory, creating it when absent.
func clearOutputDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(dir + "/" + e.Name()); err != nil {
			return err
		}
	}
	return nil
}
