package interfaces

import (
	"context"

	"nextribe/internal/domain/entities"
)

//go:generate mockgen -source=profile_repository_interface.go -destination=mocks/profile_repository_mock.go -package=mock_interfaces

// IProfileRepository abstracts persistence for member profiles. Investments
// are not loaded; see IInvestmentRepository.
type IProfileRepository interface {
	List(ctx context.Context) ([]entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	Upsert(ctx context.Context, p entities.Profile) error
}
