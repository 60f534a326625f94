package interfaces

import (
	"context"

	"nextribe/internal/domain/entities"
)

//go:generate mockgen -source=investment_repository_interface.go -destination=mocks/investment_repository_mock.go -package=mock_interfaces

// IInvestmentRepository abstracts persistence for Investment records created
// by share purchases.
type IInvestmentRepository interface {
	Create(ctx context.Context, inv entities.Investment) (entities.Investment, error)
	GetByID(ctx context.Context, id string) (entities.Investment, error)
	ListByProfileID(ctx context.Context, profileID string) ([]entities.Investment, error)
	List(ctx context.Context) ([]entities.Investment, error)
}
