package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/infrastructure/metrics"
	"nextribe/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvestmentNotFound             = errors.New("investment not found")
	ErrInvalidInvestmentID            = errors.New("invalid investment id")
	ErrInvalidProfileID               = errors.New("invalid profile id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInsufficientShares             = errors.New("not enough shares available")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the payment settings the purchase flow depends on.
type PaymentOptions struct {
	// Mock accepts empty or non-JSON payloads and skips payer checks.
	Mock           bool
	AccessToken    string
	TestPayerEmail string
}

// ISharePurchaseUseCase encapsulates buying shares of an opportunity.
//
// Purchase flow:
//   - reserve the shares on the opportunity
//   - charge the investment cost through the payment gateway
//   - persist the resulting Investment (released reservation when denied)
type ISharePurchaseUseCase interface {
	Purchase(ctx context.Context, opportunityID, profileID string, shares int, mpPayload json.RawMessage) (entities.Investment, error)
	GetByID(ctx context.Context, id string) (entities.Investment, error)
	ListByProfile(ctx context.Context, profileID string) ([]entities.Investment, error)
}

type SharePurchaseUseCase struct {
	repo    interfaces.IInvestmentRepository
	oppRepo interfaces.IOpportunityRepository
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

var _ ISharePurchaseUseCase = (*SharePurchaseUseCase)(nil)

func NewSharePurchaseUseCase(
	repo interfaces.IInvestmentRepository,
	oppRepo interfaces.IOpportunityRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *SharePurchaseUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SharePurchaseUseCase{
		repo:    repo,
		oppRepo: oppRepo,
		gateway: gateway,
		opts:    opts,
		logger:  logger.Named("purchase"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (u *SharePurchaseUseCase) Purchase(ctx context.Context, opportunityID, profileID string, shares int, mpPayload json.RawMessage) (entities.Investment, error) {
	log := u.logger.With(zap.String("opportunity_id", opportunityID), zap.String("profile_id", profileID), zap.Int("shares", shares))
	log.Debug("[purchase][usecase] start", zap.Int("payload_len", len(mpPayload)))

	opportunityID = strings.TrimSpace(opportunityID)
	profileID = strings.TrimSpace(profileID)
	if opportunityID == "" {
		return entities.Investment{}, ErrInvalidOpportunityID
	}
	if profileID == "" {
		return entities.Investment{}, ErrInvalidProfileID
	}
	if shares < 1 || shares > investment.TotalShares {
		return entities.Investment{}, ErrInvalidShareCount
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Info("[purchase][usecase] invalid payload")
			return entities.Investment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Investment{}, ErrPaymentGatewayNotConfigured
	}
	if u.oppRepo == nil || u.repo == nil {
		return entities.Investment{}, errors.New("investment repositories not configured")
	}

	opp, err := u.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		log.Error("[purchase][usecase] failed loading opportunity", zap.Error(err))
		return entities.Investment{}, err
	}
	if opp.ID == "" {
		return entities.Investment{}, ErrOpportunityNotFound
	}

	proj, err := investment.Compute(investment.Pricing{TotalPrice: opp.TotalPrice, ExpectedRoiPct: opp.ExpectedRoiPct}, shares)
	if err != nil {
		return entities.Investment{}, err
	}
	if investment.SharesAvailable(opp.AvailableSharesPct) < shares {
		log.Info("[purchase][usecase] not enough shares", zap.Float64("available_pct", opp.AvailableSharesPct))
		return entities.Investment{}, ErrInsufficientShares
	}

	payload, err := u.enrichPayload(mpPayload, opp, profileID, shares, proj.InvestmentCost)
	if err != nil {
		return entities.Investment{}, err
	}

	pct := investment.SharesToPct(shares)
	reserved, err := u.oppRepo.ReserveShares(ctx, opp.ID, pct)
	if err != nil {
		log.Error("[purchase][usecase] reserve failed", zap.Error(err))
		return entities.Investment{}, err
	}
	if reserved.ID == "" {
		log.Info("[purchase][usecase] reservation lost to a concurrent purchase")
		return entities.Investment{}, ErrInsufficientShares
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("[purchase][usecase] payment gateway failed", zap.Error(err))
		u.release(ctx, opp.ID, pct)
		metrics.SharePurchases.WithLabelValues("error").Inc()
		return entities.Investment{}, classifyGatewayError(err)
	}

	status := investmentStatusFor(providerStatus)
	if status == entities.InvestmentStatusDenied {
		u.release(ctx, opp.ID, pct)
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Warn("[purchase][usecase] provider response unmarshal failed", zap.Error(err))
		}
	}

	inv := entities.Investment{
		ID:              u.newID(),
		ProfileID:       profileID,
		OpportunityID:   opp.ID,
		PaymentID:       providerPaymentID,
		Status:          status,
		Date:            u.now().UTC(),
		Name:            opp.Title,
		Location:        opp.Location,
		Country:         opp.Country,
		Image:           opp.CoverImage(),
		Shares:          shares,
		SharePct:        pct,
		InvestmentSize:  proj.InvestmentCost,
		YearlyReturnVal: proj.YearlyReturn,
		YearlyReturnPct: opp.ExpectedRoiPct,
		FreeNights:      proj.FreeNightsWhole,
		MPPayloadRaw:    providerResp,
		MPPayload:       parsed,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		log.Error("[purchase][usecase] investment create failed",
			zap.String("payment_id", providerPaymentID), zap.Error(err))
		return entities.Investment{}, err
	}

	metrics.SharePurchases.WithLabelValues(string(status)).Inc()
	if status != entities.InvestmentStatusDenied {
		metrics.SharesSold.Add(float64(shares))
	}
	log.Info("[purchase][usecase] success",
		zap.String("investment_id", created.ID),
		zap.String("payment_id", created.PaymentID),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *SharePurchaseUseCase) GetByID(ctx context.Context, id string) (entities.Investment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Investment{}, ErrInvalidInvestmentID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Investment{}, err
	}
	if inv.ID == "" {
		return entities.Investment{}, ErrInvestmentNotFound
	}
	return inv, nil
}

func (u *SharePurchaseUseCase) ListByProfile(ctx context.Context, profileID string) ([]entities.Investment, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrInvalidProfileID
	}
	return u.repo.ListByProfileID(ctx, profileID)
}

// release gives a reservation back. Failures are logged: the shares stay
// reserved until fixed by hand.
func (u *SharePurchaseUseCase) release(ctx context.Context, opportunityID string, pct float64) {
	if _, err := u.oppRepo.ReserveShares(ctx, opportunityID, -pct); err != nil {
		u.logger.Error("[purchase][usecase] failed releasing reservation",
			zap.String("opportunity_id", opportunityID), zap.Float64("pct", pct), zap.Error(err))
	}
}

// enrichPayload links the payment to the opportunity and forces the amount
// to the computed investment cost.
func (u *SharePurchaseUseCase) enrichPayload(raw json.RawMessage, opp entities.Opportunity, profileID string, shares int, cost float64) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		if !u.opts.Mock {
			return nil, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}

	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidMPPayload
		}
		ensurePayerDefaults(req, u.opts)
		if !hasPayer(req) {
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = opp.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("%d/%d shares of %s", shares, investment.TotalShares, opp.Title)
	}
	metadata, _ := req["metadata"].(map[string]any)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["profile_id"] = profileID
	metadata["opportunity_id"] = opp.ID
	metadata["shares"] = shares
	req["metadata"] = metadata

	// The source of truth for amount is the calculator, never the client.
	req["transaction_amount"] = cost

	return json.Marshal(req)
}

func investmentStatusFor(providerStatus string) entities.InvestmentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.InvestmentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.InvestmentStatusDenied
	default:
		return entities.InvestmentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, opts PaymentOptions) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(opts.AccessToken), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
