package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryRepository(t *testing.T) {
	repo := NewStore().Countries()
	ctx := context.Background()

	amb := &entities.Ambassador{Name: "Elena"}
	require.NoError(t, repo.Upsert(ctx, entities.CountryProgress{ID: "ROU", Ambassador: amb}))
	require.NoError(t, repo.Upsert(ctx, entities.CountryProgress{ID: "AUT"}))
	amb.Name = "changed"

	got, err := repo.GetByID(ctx, "ROU")
	require.NoError(t, err)
	assert.Equal(t, entities.RecordSourceStored, got.Source)
	assert.Equal(t, "Elena", got.Ambassador.Name)

	missing, err := repo.GetByID(ctx, "XXX")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "AUT", list[0].ID)
}

func TestOpportunityRepository_ReserveShares(t *testing.T) {
	repo := NewStore().Opportunities()
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, entities.Opportunity{ID: "o1", AvailableSharesPct: 50}))

	o, err := repo.ReserveShares(ctx, "o1", 25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, o.AvailableSharesPct)

	o, err = repo.ReserveShares(ctx, "o1", 50)
	require.NoError(t, err)
	assert.Empty(t, o.ID)

	o, err = repo.ReserveShares(ctx, "o1", -90)
	require.NoError(t, err)
	assert.Equal(t, 100.0, o.AvailableSharesPct)

	o, err = repo.ReserveShares(ctx, "nope", 1)
	require.NoError(t, err)
	assert.Empty(t, o.ID)
}

func TestOpportunityRepository_ConcurrentReservationsNeverOversell(t *testing.T) {
	repo := NewStore().Opportunities()
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, entities.Opportunity{ID: "o1", AvailableSharesPct: 100}))

	pct := investment.SharesToPct(1)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved int
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := repo.ReserveShares(ctx, "o1", pct)
			if err == nil && o.ID != "" {
				mu.Lock()
				reserved++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, investment.TotalShares, reserved)
	o, _ := repo.GetByID(ctx, "o1")
	assert.InDelta(t, 0, o.AvailableSharesPct, 1e-9)
}

func TestInvestmentRepository(t *testing.T) {
	repo := NewStore().Investments()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, entities.Investment{ID: "i1", ProfileID: "p1", Date: base})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Investment{ID: "i2", ProfileID: "p1", Date: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Investment{ID: "i3", ProfileID: "p2", Date: base})
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.Investment{ID: "i1"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	list, err := repo.ListByProfileID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "i2", list[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProfileRepository_DropsInvestments(t *testing.T) {
	repo := NewStore().Profiles()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, entities.Profile{ID: "p1", Investments: []entities.Investment{{ID: "x"}}}))
	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got.Investments)
}
