package request

import (
	"encoding/json"
	"strings"
)

type ProjectionQuery struct {
	Shares int `form:"shares" binding:"required,min=1,max=12"`
}

// PurchaseRequest buys shares of an opportunity. MPPayload is forwarded to
// Mercado Pago after the server fills the amount and references.
type PurchaseRequest struct {
	ProfileID string          `json:"profile_id" binding:"required,max=64"`
	Shares    int             `json:"shares" binding:"required,min=1,max=12"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolvePayload returns the provider payload, "{}" when absent or null.
func (r PurchaseRequest) ResolvePayload() json.RawMessage {
	raw := strings.TrimSpace(string(r.MPPayload))
	if raw == "" || raw == "null" {
		return json.RawMessage("{}")
	}
	return r.MPPayload
}
