package interfaces

import (
	"context"

	"nextribe/internal/domain/entities"
)

//go:generate mockgen -source=country_repository_interface.go -destination=mocks/country_repository_mock.go -package=mock_interfaces

// ICountryRepository abstracts persistence for CountryProgress records.
//
// GetByID returns a zero-value record (ID == "") when the country is not stored.
type ICountryRepository interface {
	List(ctx context.Context) ([]entities.CountryProgress, error)
	GetByID(ctx context.Context, id string) (entities.CountryProgress, error)
	Upsert(ctx context.Context, c entities.CountryProgress) error
}
