package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "nextribe/docs"
	"nextribe/internal/adapter/http/handlers"
	"nextribe/internal/domain/currency"
	"nextribe/internal/domain/geography"
	"nextribe/internal/domain/progress"
	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/database"
	"nextribe/internal/infrastructure/logger"
	"nextribe/internal/infrastructure/metrics"
	"nextribe/internal/infrastructure/payments"
	"nextribe/internal/infrastructure/textgen"
	"nextribe/internal/usecase"
	"nextribe/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := BuildRepositories(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	formatter := currency.NewFormatter(nil, currency.ParseLocale(cfg.Currency.Locale))
	h, err := buildHandlers(ctx, cfg, repos, formatter, log)
	if err != nil {
		return err
	}

	router := NewRouter(h, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][server] listening", zap.Int("port", cfg.HTTP.Port), zap.String("store", cfg.Store.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middleware, docs, metrics and the /v1 API.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinMiddleware(log))
	router.Use(metrics.GinMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNextribeRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, repos Repositories, formatter *currency.Formatter, log *zap.Logger) (Handlers, error) {
	engine := progress.NewEngine(nil, progress.DefaultTables())
	if cfg.Progress.Seed != 0 {
		engine = progress.NewSeeded(cfg.Progress.Seed)
	}
	mapper := geography.NewMapper(geography.DefaultRegions())

	if repos.Ephemeral {
		report, err := usecase.NewSeeder(repos.Countries, repos.Opportunities, repos.Profiles, engine, mapper, log).Run(ctx)
		if err != nil {
			return Handlers{}, fmt.Errorf("seed memory store: %w", err)
		}
		log.Info("[store][memory] seeded",
			zap.Int("countries", report.Countries),
			zap.Int("opportunities", report.Opportunities),
			zap.Int("profiles", report.Profiles))
	}

	insights := usecase.NewInsightService(buildTextGenerator(ctx, cfg, log), log)
	countryUC := usecase.NewCountryUseCase(repos.Countries, engine, mapper, insights, usecase.CountryOptions{
		Stable:     cfg.Progress.Mode == config.ProgressModeStable,
		CacheSize:  cfg.Progress.CacheSize,
		CacheTTL:   cfg.Progress.CacheTTL,
		EnrichWait: cfg.HTTP.EnrichWait,
	}, log)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("[payment][gateway] mercado pago not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}
	purchaseUC := usecase.NewSharePurchaseUseCase(repos.Investments, repos.Opportunities, gateway, usecase.PaymentOptions{
		Mock:           cfg.Payments.Mock,
		AccessToken:    cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail: cfg.Payments.TestPayerEmail,
	}, log)

	return Handlers{
		Country:     handlers.NewCountryHandler(countryUC, log),
		Opportunity: handlers.NewOpportunityHandler(usecase.NewOpportunityUseCase(repos.Opportunities, log)),
		Purchase:    handlers.NewPurchaseHandler(purchaseUC, log),
		Profile:     handlers.NewProfileHandler(usecase.NewProfileUseCase(repos.Profiles, repos.Investments, formatter, log)),
		Dashboard:   handlers.NewDashboardHandler(usecase.NewDashboardUseCase(repos.Profiles, repos.Countries, repos.Investments, log)),
		Currency:    handlers.NewCurrencyHandler(formatter),
	}, nil
}

// buildTextGenerator returns nil when no API key is set, which switches the
// insight service to its static texts.
func buildTextGenerator(ctx context.Context, cfg *config.Config, log *zap.Logger) interfaces.ITextGenerator {
	gemini, err := textgen.NewGeminiClient(ctx, cfg.GenAI, log)
	if err != nil {
		log.Warn("[textgen][gemini] disabled", zap.Error(err))
		return nil
	}
	if !cfg.Redis.Enabled() {
		return gemini
	}

	rdb := database.NewRedis(cfg.Redis)
	if err := database.PingRedis(ctx, rdb); err != nil {
		log.Warn("[textgen][redis] cache disabled", zap.Error(err))
		_ = rdb.Close()
		return gemini
	}
	return textgen.NewCachedGenerator(gemini, rdb, cfg.Redis.TTL, log)
}
