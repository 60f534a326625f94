package usecase

import (
	"context"
	"errors"
	"strings"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidOpportunityID = errors.New("invalid opportunity id")
	ErrOpportunityNotFound  = errors.New("opportunity not found")
	ErrInvalidShareCount    = errors.New("invalid share count")
)

// Simulation is a projection together with the opportunity it was computed for.
type Simulation struct {
	Opportunity     entities.Opportunity  `json:"opportunity"`
	SharesAvailable int                   `json:"shares_available"`
	Projection      investment.Projection `json:"projection"`
}

type IOpportunityUseCase interface {
	List(ctx context.Context) ([]entities.Opportunity, error)
	Get(ctx context.Context, id string) (entities.Opportunity, error)
	Simulate(ctx context.Context, id string, shares int) (Simulation, error)
}

type OpportunityUseCase struct {
	repo   interfaces.IOpportunityRepository
	logger *zap.Logger
}

var _ IOpportunityUseCase = (*OpportunityUseCase)(nil)

func NewOpportunityUseCase(repo interfaces.IOpportunityRepository, logger *zap.Logger) *OpportunityUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpportunityUseCase{repo: repo, logger: logger.Named("opportunity")}
}

// List returns the stored opportunities or the demo listing when the store
// fails or is empty.
func (u *OpportunityUseCase) List(ctx context.Context) ([]entities.Opportunity, error) {
	if u.repo != nil {
		stored, err := u.repo.List(ctx)
		switch {
		case err != nil:
			u.logger.Warn("[opportunity][usecase] store list failed, using demo data", zap.Error(err))
		case len(stored) == 0:
			u.logger.Info("[opportunity][usecase] store empty, using demo data")
		default:
			return stored, nil
		}
	}
	return catalog.Opportunities(), nil
}

func (u *OpportunityUseCase) Get(ctx context.Context, id string) (entities.Opportunity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Opportunity{}, ErrInvalidOpportunityID
	}

	if u.repo != nil {
		o, err := u.repo.GetByID(ctx, id)
		if err != nil {
			u.logger.Warn("[opportunity][usecase] store lookup failed, trying demo data",
				zap.String("opportunity_id", id), zap.Error(err))
		} else if o.ID != "" {
			return o, nil
		}
	}

	for _, o := range catalog.Opportunities() {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Opportunity{}, ErrOpportunityNotFound
}

// Simulate runs the investment calculator for shares of the opportunity.
func (u *OpportunityUseCase) Simulate(ctx context.Context, id string, shares int) (Simulation, error) {
	o, err := u.Get(ctx, id)
	if err != nil {
		return Simulation{}, err
	}

	p, err := investment.Compute(investment.Pricing{TotalPrice: o.TotalPrice, ExpectedRoiPct: o.ExpectedRoiPct}, shares)
	if err != nil {
		if errors.Is(err, investment.ErrInvalidShareCount) {
			return Simulation{}, ErrInvalidShareCount
		}
		return Simulation{}, err
	}

	return Simulation{
		Opportunity:     o,
		SharesAvailable: investment.SharesAvailable(o.AvailableSharesPct),
		Projection:      p,
	}, nil
}
