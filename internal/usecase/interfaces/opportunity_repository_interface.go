package interfaces

import (
	"context"

	"nextribe/internal/domain/entities"
)

//go:generate mockgen -source=opportunity_repository_interface.go -destination=mocks/opportunity_repository_mock.go -package=mock_interfaces

// IOpportunityRepository abstracts persistence for marketplace opportunities.
//
// ReserveShares atomically subtracts pct from available_shares_pct when at
// least pct is still available. It returns a zero-value Opportunity when the
// opportunity does not exist or not enough shares are left.
type IOpportunityRepository interface {
	List(ctx context.Context) ([]entities.Opportunity, error)
	GetByID(ctx context.Context, id string) (entities.Opportunity, error)
	Upsert(ctx context.Context, o entities.Opportunity) error
	ReserveShares(ctx context.Context, id string, pct float64) (entities.Opportunity, error)
}
