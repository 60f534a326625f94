package main

import (
	"context"
	"flag"
	"log"
	"time"

	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/database"
	"nextribe/internal/infrastructure/logger"

	"go.uber.org/zap"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, reset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = l.Sync() }()

	if cfg.Postgres.URL == "" {
		l.Fatal("postgres.url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		l.Fatal("failed to connect", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, *command); err != nil {
		l.Fatal("migration failed", zap.String("command", *command), zap.Error(err))
	}
	l.Info("migration finished", zap.String("command", *command))
}
