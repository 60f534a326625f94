package usecase

import (
	"context"
	"errors"
	"testing"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	mock_interfaces "nextribe/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOpportunityUseCase_List(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
		repo.EXPECT().List(gomock.Any()).Return([]entities.Opportunity{{ID: "x"}}, nil)

		got, err := NewOpportunityUseCase(repo, nil).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []entities.Opportunity{{ID: "x"}}, got)
	})

	t.Run("store error uses demo", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

		got, err := NewOpportunityUseCase(repo, nil).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.Opportunities(), got)
	})

	t.Run("no store uses demo", func(t *testing.T) {
		got, err := NewOpportunityUseCase(nil, nil).List(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, len(catalog.Opportunities()))
	})
}

func TestOpportunityUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, err := NewOpportunityUseCase(nil, nil).Get(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidOpportunityID)
	})

	t.Run("missing in store falls back to demo", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
		repo.EXPECT().GetByID(gomock.Any(), "opt-2").Return(entities.Opportunity{}, nil)

		got, err := NewOpportunityUseCase(repo, nil).Get(context.Background(), "opt-2")
		require.NoError(t, err)
		assert.Equal(t, "Lakeside Mirror House", got.Title)
	})

	t.Run("unknown", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Opportunity{}, nil)

		_, err := NewOpportunityUseCase(repo, nil).Get(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrOpportunityNotFound)
	})
}

func TestOpportunityUseCase_Simulate(t *testing.T) {
	repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
	repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Opportunity{
		ID: "o1", TotalPrice: 150000, ExpectedRoiPct: 12, AvailableSharesPct: 50,
	}, nil).AnyTimes()
	uc := NewOpportunityUseCase(repo, nil)

	sim, err := uc.Simulate(context.Background(), "o1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, sim.SharesAvailable)
	assert.InDelta(t, 50000, sim.Projection.InvestmentCost, 1e-6)
	assert.InDelta(t, 6000, sim.Projection.YearlyReturn, 1e-6)
	assert.InDelta(t, 109.5, sim.Projection.FreeNights, 1e-9)
	assert.Equal(t, 109, sim.Projection.FreeNightsWhole)

	_, err = uc.Simulate(context.Background(), "o1", 13)
	assert.ErrorIs(t, err, ErrInvalidShareCount)
}

func TestOpportunityUseCase_SimulateInvalidPricing(t *testing.T) {
	repo := mock_interfaces.NewMockIOpportunityRepository(gomock.NewController(t))
	repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Opportunity{ID: "o1"}, nil)

	_, err := NewOpportunityUseCase(repo, nil).Simulate(context.Background(), "o1", 1)
	assert.ErrorIs(t, err, investment.ErrInvalidOpportunity)
}
