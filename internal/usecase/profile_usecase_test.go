package usecase

import (
	"context"
	"errors"
	"testing"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/currency"
	"nextribe/internal/domain/entities"
	mock_interfaces "nextribe/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func TestProfileUseCase_Demo(t *testing.T) {
	uc := NewProfileUseCase(nil, nil, nil, nil)

	view, err := uc.Get(context.Background(), "", "EUR")
	require.NoError(t, err)
	assert.True(t, view.Demo)
	assert.Equal(t, "EUR", view.Currency)
	assert.Equal(t, catalog.Profile().Name, view.Profile.Name)
	assert.InDelta(t, 83, view.LevelProgress, 0.01)
	assert.Equal(t, "€78,200.00", view.TotalInvested.Formatted)
	assert.Len(t, view.Investments, 2)
}

func TestProfileUseCase_StoredWithInvestments(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProfileRepository(ctrl)
	invRepo := mock_interfaces.NewMockIInvestmentRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{ID: "p1", Name: "Ana", TotalPoints: 500, NextLevelPoints: 1000}, nil)
	invRepo.EXPECT().ListByProfileID(gomock.Any(), "p1").Return([]entities.Investment{
		{ID: "i1", Status: entities.InvestmentStatusApproved, InvestmentSize: 10000, YearlyReturnVal: 1000},
		{ID: "i2", Status: entities.InvestmentStatusPending, InvestmentSize: 30000, YearlyReturnVal: 2000},
		{ID: "i3", Status: entities.InvestmentStatusDenied, InvestmentSize: 99999, YearlyReturnVal: 9999},
	}, nil)
	uc := NewProfileUseCase(repo, invRepo, currency.NewFormatter(nil, language.AmericanEnglish), nil)

	view, err := uc.Get(context.Background(), "p1", "xyz")
	require.NoError(t, err)
	assert.False(t, view.Demo)
	assert.Equal(t, "USD", view.Currency)
	assert.Equal(t, 50.0, view.LevelProgress)
	require.Len(t, view.Investments, 2)
	assert.Equal(t, 40000.0, view.Profile.TotalInvested)
	assert.Equal(t, "$3,000.00", view.TotalYearlyReturn.Formatted)
	assert.InDelta(t, 7.5, view.Profile.TotalYearlyReturnPct, 1e-9)
	assert.Equal(t, "$10,000.00", view.Investments[0].Size.Formatted)
}

func TestProfileUseCase_Fallbacks(t *testing.T) {
	t.Run("store error", func(t *testing.T) {
		repo := mock_interfaces.NewMockIProfileRepository(gomock.NewController(t))
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{}, errors.New("down"))

		view, err := NewProfileUseCase(repo, nil, nil, nil).Get(context.Background(), "p1", "USD")
		require.NoError(t, err)
		assert.True(t, view.Demo)
	})

	t.Run("not stored", func(t *testing.T) {
		repo := mock_interfaces.NewMockIProfileRepository(gomock.NewController(t))
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{}, nil)

		view, err := NewProfileUseCase(repo, nil, nil, nil).Get(context.Background(), "p1", "USD")
		require.NoError(t, err)
		assert.True(t, view.Demo)
	})

	t.Run("investment lookup error keeps stored totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvestmentRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{ID: "p1", TotalInvested: 500}, nil)
		invRepo.EXPECT().ListByProfileID(gomock.Any(), "p1").Return(nil, errors.New("down"))

		view, err := NewProfileUseCase(repo, invRepo, nil, nil).Get(context.Background(), "p1", "USD")
		require.NoError(t, err)
		assert.False(t, view.Demo)
		assert.Equal(t, 500.0, view.Profile.TotalInvested)
		assert.NotNil(t, view.Investments)
	})
}
