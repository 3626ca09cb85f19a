// @title DigiCheck Backend API
// @version 1.0
// @description Scoring and recommendation backend for the digital-maturity assessment.

// @host localhost:8080
// @BasePath /api

package main

import (
	"digicheck_backend/internal/app"
	"digicheck_backend/internal/config"
	"digicheck_backend/pkg/configwatcher"
	"digicheck_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// Scoring thresholds are product-tuned; pick up edits without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
