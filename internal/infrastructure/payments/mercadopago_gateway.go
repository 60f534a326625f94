package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "nextribe/internal/infrastructure/config"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges share purchases through Mercado Pago. In mock
// mode every payment is approved locally and the request payload is echoed
// back as the provider response.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
	now      func() time.Time
}

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("payment.gateway")

	if cfg.Mock {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger, now: time.Now}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		logger.Warn("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), logger: logger, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.createMock(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Debug("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.Info("[payment][gateway] create success",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status))

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) createMock(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.logger.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
