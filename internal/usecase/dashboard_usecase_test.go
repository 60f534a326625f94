package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	mock_interfaces "nextribe/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Leaderboard(t *testing.T) {
	t.Run("ranks and limits", func(t *testing.T) {
		repo := mock_interfaces.NewMockIProfileRepository(gomock.NewController(t))
		var ps []entities.Profile
		for i := 0; i < 15; i++ {
			ps = append(ps, entities.Profile{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("n%d", i), TotalPoints: i * 10})
		}
		ps[3].Name = ""
		ps[3].TotalPoints = 1000
		repo.EXPECT().List(gomock.Any()).Return(ps, nil)

		got, err := NewDashboardUseCase(repo, nil, nil, nil).Leaderboard(context.Background())
		require.NoError(t, err)
		require.Len(t, got, LeaderboardSize)
		assert.Equal(t, "p3", got[0].ID)
		assert.Equal(t, "Anonymous", got[0].Name)
		assert.Equal(t, "https://placehold.co/100", got[0].AvatarURL)
		assert.Equal(t, "Global", got[0].Country)
		assert.Equal(t, "p14", got[1].ID)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Points, got[i].Points)
		}
	})

	t.Run("empty store uses demo", func(t *testing.T) {
		repo := mock_interfaces.NewMockIProfileRepository(gomock.NewController(t))
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := NewDashboardUseCase(repo, nil, nil, nil).Leaderboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.Leaderboard(), got)
	})

	t.Run("store error uses demo", func(t *testing.T) {
		repo := mock_interfaces.NewMockIProfileRepository(gomock.NewController(t))
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

		got, err := NewDashboardUseCase(repo, nil, nil, nil).Leaderboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.Leaderboard(), got)
	})
}

func TestDashboardUseCase_GlobalStats(t *testing.T) {
	t.Run("overlays aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		countries := mock_interfaces.NewMockICountryRepository(ctrl)
		investments := mock_interfaces.NewMockIInvestmentRepository(ctrl)

		investments.EXPECT().List(gomock.Any()).Return([]entities.Investment{
			{InvestmentSize: 1000, Status: entities.InvestmentStatusApproved},
			{InvestmentSize: 500, Status: entities.InvestmentStatusPending},
			{InvestmentSize: 9999, Status: entities.InvestmentStatusDenied},
		}, nil)
		countries.EXPECT().List(gomock.Any()).Return([]entities.CountryProgress{
			{Status: entities.CountryStatusOperating},
			{Status: entities.CountryStatusDevelopment},
			{Status: entities.CountryStatusProposed},
			{Status: entities.CountryStatusNone},
		}, nil)
		profiles.EXPECT().List(gomock.Any()).Return([]entities.Profile{{TotalPoints: 300}, {TotalPoints: 200}}, nil)

		got, err := NewDashboardUseCase(profiles, countries, investments, nil).GlobalStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1500.0, got.TotalDistributed)
		assert.Equal(t, entities.ActiveCountriesStats{Development: 2, TotalProposed: 3}, got.ActiveCountriesStats)
		assert.Equal(t, entities.TimeframeStats{Value: 500, Change: 12}, got.CommunityPoints.Monthly)
		assert.Equal(t, catalog.GlobalStats().CommunityPoints.Weekly, got.CommunityPoints.Weekly)
	})

	t.Run("failures keep demo values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		countries := mock_interfaces.NewMockICountryRepository(ctrl)
		investments := mock_interfaces.NewMockIInvestmentRepository(ctrl)
		investments.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))
		countries.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))
		profiles.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

		got, err := NewDashboardUseCase(profiles, countries, investments, nil).GlobalStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.GlobalStats(), got)
	})
}
