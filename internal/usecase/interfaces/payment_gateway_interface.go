package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Share purchases use it to charge the investment cost and persist the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
