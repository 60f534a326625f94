package usecase

import (
	"context"
	"errors"
	"testing"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/progress"
	mock_interfaces "nextribe/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	countries := mock_interfaces.NewMockICountryRepository(ctrl)
	opps := mock_interfaces.NewMockIOpportunityRepository(ctrl)
	profiles := mock_interfaces.NewMockIProfileRepository(ctrl)

	var seen []entities.CountryProgress
	countries.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.CountryProgress) error {
		seen = append(seen, c)
		return nil
	}).Times(len(catalog.CountryStatusMap()))
	opps.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(len(catalog.Opportunities()))
	profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Profile) error {
		assert.Nil(t, p.Investments)
		return nil
	}).Times(1 + len(catalog.Leaderboard()))

	report, err := NewSeeder(countries, opps, profiles, progress.NewSeeded(1), nil, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(catalog.CountryStatusMap()), report.Countries)
	assert.Equal(t, len(catalog.Opportunities()), report.Opportunities)

	require.NotEmpty(t, seen)
	assert.Equal(t, "AUT", seen[0].ID)
	assert.Equal(t, "Austria", seen[0].Name)
	assert.Equal(t, entities.CountryStatusSigned, seen[0].Status)
}

func TestSeeder_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	countries := mock_interfaces.NewMockICountryRepository(ctrl)
	countries.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("down"))

	report, err := NewSeeder(countries, nil, nil, nil, nil, nil).Run(context.Background())
	assert.ErrorContains(t, err, "seed country AUT")
	assert.Zero(t, report.Countries)
}
