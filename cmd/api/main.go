package main

import (
	"log"

	_ "nextribe/docs"
	"nextribe/internal/adapter/http/routes"
	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           Nextribe API
// @version         1.0
// @description     Expansion map, marketplace, share purchases and community dashboard.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
