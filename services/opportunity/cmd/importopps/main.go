package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/pkg/database"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/repo/persistent"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/usecase"
)

func main() {
	var (
		path           = flag.String("path", "", "path to a curated opportunities JSON file")
		updateExisting = flag.Bool("update-existing", false, "update rows that already exist instead of skipping them")
	)
	flag.Parse()

	log := logger.New()

	if *path == "" {
		log.Error("Usage: importopps --path <file.json> [--update-existing]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Error("Failed to read %s: %v", *path, err)
		os.Exit(1)
	}

	var items []usecase.CuratedItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Error("Failed to parse %s: %v", *path, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	oppRepo := persistent.NewOpportunityRepository(db)
	oppUseCase := usecase.NewOpportunityUseCase(oppRepo, nil, nil, log)

	stats, err := oppUseCase.ImportCurated(items, *updateExisting)
	if err != nil {
		log.Error("Import failed: %v", err)
		os.Exit(1)
	}

	log.Info("Import complete: created=%d updated=%d versions=%d skipped=%d",
		stats.Created, stats.Updated, stats.Versions, stats.Skipped)
}
