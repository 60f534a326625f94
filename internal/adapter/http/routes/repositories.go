package routes

import (
	"context"
	"fmt"

	"nextribe/internal/adapter/persistence/memory"
	"nextribe/internal/adapter/persistence/postgres"
	"nextribe/internal/adapter/persistence/repository"
	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/database"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Repositories groups the store implementations selected by store.driver.
type Repositories struct {
	Countries     interfaces.ICountryRepository
	Opportunities interfaces.IOpportunityRepository
	Profiles      interfaces.IProfileRepository
	Investments   interfaces.IInvestmentRepository
	// Ephemeral is true for the memory driver, which starts empty.
	Ephemeral bool
}

// BuildRepositories connects the configured store. The returned func releases
// its connections.
func BuildRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Repositories, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return Repositories{}, noop, err
		}
		if err := database.Migrate(ctx, pool, "up"); err != nil {
			pool.Close()
			return Repositories{}, noop, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("[store][postgres] connected")
		return Repositories{
			Countries:     postgres.NewCountryRepository(pool),
			Opportunities: postgres.NewOpportunityRepository(pool),
			Profiles:      postgres.NewProfileRepository(pool),
			Investments:   postgres.NewInvestmentRepository(pool),
		}, pool.Close, nil

	case config.StoreMemory:
		store := memory.NewStore()
		logger.Info("[store][memory] in-process store selected")
		return Repositories{
			Countries:     store.Countries(),
			Opportunities: store.Opportunities(),
			Profiles:      store.Profiles(),
			Investments:   store.Investments(),
			Ephemeral:     true,
		}, noop, nil

	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, noop, err
		}
		logger.Info("[store][dynamodb] connected", zap.String("region", cfg.DynamoDB.Region))
		return Repositories{
			Countries:     repository.NewCountryDynamoRepository(ddb, cfg.DynamoDB.CountriesTable),
			Opportunities: repository.NewOpportunityDynamoRepository(ddb, cfg.DynamoDB.OpportunitiesTable),
			Profiles:      repository.NewProfileDynamoRepository(ddb, cfg.DynamoDB.ProfilesTable),
			Investments:   repository.NewInvestmentDynamoRepository(ddb, cfg.DynamoDB.InvestmentsTable),
		}, noop, nil
	}
}
