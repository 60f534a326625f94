package main

import (
	"context"
	"log"
	"time"

	"nextribe/internal/adapter/http/routes"
	"nextribe/internal/domain/progress"
	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/logger"
	"nextribe/internal/usecase"

	"go.uber.org/zap"
)

// Seeds the configured store with the demo countries, catalog and profiles.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = l.Sync() }()

	if cfg.Store.Driver == config.StoreMemory {
		l.Fatal("the memory store is seeded at startup; pick dynamodb or postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repos, closeStore, err := routes.BuildRepositories(ctx, cfg, l)
	if err != nil {
		l.Fatal("failed to open store", zap.Error(err))
	}
	defer closeStore()

	var engine *progress.Engine
	if cfg.Progress.Seed != 0 {
		engine = progress.NewSeeded(cfg.Progress.Seed)
	}
	report, err := usecase.NewSeeder(repos.Countries, repos.Opportunities, repos.Profiles, engine, nil, l).Run(ctx)
	if err != nil {
		l.Fatal("seed failed", zap.Error(err))
	}
	l.Info("seed finished",
		zap.String("store", cfg.Store.Driver),
		zap.Int("countries", report.Countries),
		zap.Int("opportunities", report.Opportunities),
		zap.Int("profiles", report.Profiles))
}
