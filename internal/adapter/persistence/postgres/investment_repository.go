package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const investmentColumns = `id, profile_id, opportunity_id, payment_id, status, date,
	name, location, country, image, shares, share_pct, investment_size,
	yearly_return_val, yearly_return_pct, free_nights, mp_payload`

type InvestmentRepository struct {
	db DBTX
}

var _ interfaces.IInvestmentRepository = (*InvestmentRepository)(nil)

func NewInvestmentRepository(db DBTX) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv entities.Investment) (entities.Investment, error) {
	var payload []byte
	if len(inv.MPPayloadRaw) > 0 {
		payload = []byte(inv.MPPayloadRaw)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO investments (`+investmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		inv.ID, inv.ProfileID, inv.OpportunityID, inv.PaymentID, string(inv.Status), inv.Date,
		inv.Name, inv.Location, inv.Country, inv.Image, inv.Shares, inv.SharePct, inv.InvestmentSize,
		inv.YearlyReturnVal, inv.YearlyReturnPct, inv.FreeNights, payload,
	)
	if err != nil {
		return entities.Investment{}, fmt.Errorf("failed to insert investment: %w", err)
	}
	return inv, nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id string) (entities.Investment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = $1`, id)
	if err != nil {
		return entities.Investment{}, fmt.Errorf("failed to query investment: %w", err)
	}
	inv, err := pgx.CollectOneRow(rows, scanInvestment)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Investment{}, nil
	}
	if err != nil {
		return entities.Investment{}, fmt.Errorf("failed to scan investment: %w", err)
	}
	return inv, nil
}

func (r *InvestmentRepository) ListByProfileID(ctx context.Context, profileID string) ([]entities.Investment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE profile_id = $1 ORDER BY date DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	return collectInvestments(rows)
}

func (r *InvestmentRepository) List(ctx context.Context) ([]entities.Investment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+investmentColumns+` FROM investments ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	return collectInvestments(rows)
}

func collectInvestments(rows pgx.Rows) ([]entities.Investment, error) {
	out, err := pgx.CollectRows(rows, scanInvestment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan investments: %w", err)
	}
	return out, nil
}

func scanInvestment(row pgx.CollectableRow) (entities.Investment, error) {
	var (
		inv     entities.Investment
		status  string
		payload []byte
	)
	err := row.Scan(
		&inv.ID, &inv.ProfileID, &inv.OpportunityID, &inv.PaymentID, &status, &inv.Date,
		&inv.Name, &inv.Location, &inv.Country, &inv.Image, &inv.Shares, &inv.SharePct, &inv.InvestmentSize,
		&inv.YearlyReturnVal, &inv.YearlyReturnPct, &inv.FreeNights, &payload,
	)
	if err != nil {
		return inv, err
	}
	inv.Status = entities.InvestmentStatus(status)
	if len(payload) > 0 {
		inv.MPPayloadRaw = json.RawMessage(payload)
		var m map[string]interface{}
		if json.Unmarshal(payload, &m) == nil {
			inv.MPPayload = m
		}
	}
	return inv, nil
}
