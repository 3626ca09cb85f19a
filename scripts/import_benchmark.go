// Manual benchmark dataset importer.
//
// The benchmark changes roughly once a year when a new panel dataset is
// released; there is no admin screen for it. Usage:
//
//	go run scripts/import_benchmark.go benchmark.json
//
// where benchmark.json looks like:
//
//	{"year": 2026, "source": "SMB digitalization panel", "values": {"security": 2.9, ...}}
package main

import (
	"digicheck_backend/internal/config"
	"digicheck_backend/internal/model"
	"digicheck_backend/pkg/database"
	"digicheck_backend/pkg/logger"
	"encoding/json"
	"log"
	"os"
)

type benchmarkFile struct {
	Year   int                           `json:"year"`
	Source string                        `json:"source"`
	Values map[model.CategoryKey]float64 `json:"values"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_benchmark <file.json>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read dataset: %v", err)
	}

	var in benchmarkFile
	if err := json.Unmarshal(data, &in); err != nil {
		log.Fatalf("failed to parse dataset: %v", err)
	}
	if in.Year == 0 || len(in.Values) == 0 {
		log.Fatal("dataset must carry a year and at least one category value")
	}
	for cat, v := range in.Values {
		if !cat.Valid() {
			log.Fatalf("unknown category %q", cat)
		}
		if v < 0 || v > 5 {
			log.Fatalf("category %q value %v outside [0,5]", cat, v)
		}
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	values, _ := json.Marshal(in.Values)
	bench := &model.Benchmark{
		Year:   in.Year,
		Source: in.Source,
		Values: values,
	}
	if err := db.Create(bench).Error; err != nil {
		log.Fatalf("failed to store benchmark: %v", err)
	}

	log.Printf("benchmark %d (%s) imported", in.Year, in.Source)
}
