package entities

import (
	"encoding/json"
	"time"
)

// InvestmentStatus represents the payment outcome of a share purchase.
type InvestmentStatus string

const (
	InvestmentStatusPending  InvestmentStatus = "pending"
	InvestmentStatusApproved InvestmentStatus = "approved"
	InvestmentStatusDenied   InvestmentStatus = "denied"
)

// Investment is a profile's ownership stake in an opportunity, created by a
// share purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (profile_id-index): profile_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for traceability.
//   - MPPayload is the parsed representation of the same body.
type Investment struct {
	ID            string           `json:"id"`
	ProfileID     string           `json:"profile_id"`
	OpportunityID string           `json:"opportunity_id"`
	PaymentID     string           `json:"payment_id"`
	Status        InvestmentStatus `json:"status"`
	Date          time.Time        `json:"date"`

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

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
