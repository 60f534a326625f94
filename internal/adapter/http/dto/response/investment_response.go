package response

import (
	"time"

	"nextribe/internal/domain/entities"
)

// InvestmentResponse is a share purchase as returned to clients.
type InvestmentResponse struct {
	ID            string    `json:"id"`
	PaymentID     string    `json:"payment_id"`
	ProfileID     string    `json:"profile_id"`
	OpportunityID string    `json:"opportunity_id"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`

	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Image    string `json:"image"`

	Shares          int     `json:"shares"`
	SharePct        float64 `json:"share_pct"`
	InvestmentSize  float64 `json:"investment_size"`
	YearlyReturnVal float64 `json:"yearly_return_val"`
	YearlyReturnPct float64 `json:"yearly_return_pct"`
	FreeNights      int     `json:"free_nights"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvestment(inv entities.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:              inv.ID,
		PaymentID:       inv.PaymentID,
		ProfileID:       inv.ProfileID,
		OpportunityID:   inv.OpportunityID,
		Status:          string(inv.Status),
		Date:            inv.Date,
		Name:            inv.Name,
		Location:        inv.Location,
		Country:         inv.Country,
		Image:           inv.Image,
		Shares:          inv.Shares,
		SharePct:        inv.SharePct,
		InvestmentSize:  inv.InvestmentSize,
		YearlyReturnVal: inv.YearlyReturnVal,
		YearlyReturnPct: inv.YearlyReturnPct,
		FreeNights:      inv.FreeNights,
		MPPayloadRaw:    string(inv.MPPayloadRaw),
		MPPayload:       inv.MPPayload,
	}
}

func FromInvestments(invs []entities.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvestment(inv))
	}
	return out
}
