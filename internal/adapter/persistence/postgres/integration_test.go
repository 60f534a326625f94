package postgres

import (
	"context"
	"testing"
	"time"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/infrastructure/config"
	"nextribe/internal/infrastructure/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("nextribe"),
		tcpostgres.WithUsername("nextribe"),
		tcpostgres.WithPassword("nextribe"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPostgresPool(ctx, config.PostgresConfig{URL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool, "up"))
	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	t.Run("countries", func(t *testing.T) {
		repo := NewCountryRepository(pool)
		c := entities.CountryProgress{
			ID: "BGR", Name: "Bulgaria", Status: entities.CountryStatusDevelopment, Progress: 80,
			Ambassador:      &entities.Ambassador{ID: "a1", Name: "Elena", ContributionPoints: 900},
			LocationsTarget: 10,
		}
		require.NoError(t, repo.Upsert(ctx, c))
		c.Progress = 85
		require.NoError(t, repo.Upsert(ctx, c))

		got, err := repo.GetByID(ctx, "BGR")
		require.NoError(t, err)
		assert.Equal(t, 85, got.Progress)
		assert.Equal(t, entities.RecordSourceStored, got.Source)
		require.NotNil(t, got.Ambassador)
		assert.Equal(t, "Elena", got.Ambassador.Name)

		missing, err := repo.GetByID(ctx, "XXX")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("opportunities reserve and release", func(t *testing.T) {
		repo := NewOpportunityRepository(pool)
		for _, o := range catalog.Opportunities() {
			require.NoError(t, repo.Upsert(ctx, o))
		}

		o, err := repo.ReserveShares(ctx, "opt-1", 50)
		require.NoError(t, err)
		assert.InDelta(t, 10, o.AvailableSharesPct, 1e-9)

		o, err = repo.ReserveShares(ctx, "opt-1", 25)
		require.NoError(t, err)
		assert.Empty(t, o.ID)

		o, err = repo.ReserveShares(ctx, "opt-1", -50)
		require.NoError(t, err)
		assert.InDelta(t, 60, o.AvailableSharesPct, 1e-9)

		got, err := repo.GetByID(ctx, "opt-1")
		require.NoError(t, err)
		assert.Equal(t, catalog.Opportunities()[0].Images, got.Images)
	})

	t.Run("profiles and investments", func(t *testing.T) {
		profiles := NewProfileRepository(pool)
		investments := NewInvestmentRepository(pool)

		require.NoError(t, profiles.Upsert(ctx, entities.Profile{ID: "p1", Name: "Ana", TotalPoints: 10}))
		require.NoError(t, profiles.Upsert(ctx, entities.Profile{ID: "p2", Name: "Bo", TotalPoints: 20}))
		list, err := profiles.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "p2", list[0].ID)

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		_, err = investments.Create(ctx, entities.Investment{
			ID: "i1", ProfileID: "p1", OpportunityID: "opt-1", Status: entities.InvestmentStatusApproved,
			Date: base, Shares: 2, InvestmentSize: 20000, MPPayloadRaw: []byte(`{"status":"approved"}`),
		})
		require.NoError(t, err)
		_, err = investments.Create(ctx, entities.Investment{
			ID: "i2", ProfileID: "p1", OpportunityID: "opt-2", Status: entities.InvestmentStatusPending,
			Date: base.Add(time.Hour), Shares: 1, InvestmentSize: 10000,
		})
		require.NoError(t, err)

		byProfile, err := investments.ListByProfileID(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, byProfile, 2)
		assert.Equal(t, "i2", byProfile[0].ID)

		got, err := investments.GetByID(ctx, "i1")
		require.NoError(t, err)
		assert.Equal(t, "approved", got.MPPayload["status"])
		assert.True(t, base.Equal(got.Date))
	})
}
