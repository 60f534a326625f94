package response

import (
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase"
)

type OpportunityResponse struct {
	entities.Opportunity
	SharesAvailable int `json:"shares_available"`
	TotalShares     int `json:"total_shares"`
}

type ProjectionResponse struct {
	OpportunityID   string                `json:"opportunity_id"`
	Title           string                `json:"title"`
	SharesAvailable int                   `json:"shares_available"`
	Projection      investment.Projection `json:"projection"`
}

func FromOpportunity(o entities.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		Opportunity:     o,
		SharesAvailable: investment.SharesAvailable(o.AvailableSharesPct),
		TotalShares:     investment.TotalShares,
	}
}

func FromOpportunities(opps []entities.Opportunity) []OpportunityResponse {
	out := make([]OpportunityResponse, 0, len(opps))
	for _, o := range opps {
		out = append(out, FromOpportunity(o))
	}
	return out
}

func FromSimulation(s usecase.Simulation) ProjectionResponse {
	return ProjectionResponse{
		OpportunityID:   s.Opportunity.ID,
		Title:           s.Opportunity.Title,
		SharesAvailable: s.SharesAvailable,
		Projection:      s.Projection,
	}
}
