package postgres

import (
	"context"
	"errors"
	"fmt"

	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const opportunityColumns = `id, title, images, location, country_id, country, capacity,
	amenities, tags, distance_from_city, total_price, available_shares_pct, expected_roi_pct`

type OpportunityRepository struct {
	db DBTX
}

var _ interfaces.IOpportunityRepository = (*OpportunityRepository)(nil)

func NewOpportunityRepository(db DBTX) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) List(ctx context.Context) ([]entities.Opportunity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+opportunityColumns+` FROM opportunities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanOpportunity)
	if err != nil {
		return nil, fmt.Errorf("failed to scan opportunities: %w", err)
	}
	return out, nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("failed to query opportunity: %w", err)
	}
	return collectOpportunity(rows)
}

func (r *OpportunityRepository) Upsert(ctx context.Context, o entities.Opportunity) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO opportunities (`+opportunityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			images = EXCLUDED.images,
			location = EXCLUDED.location,
			country_id = EXCLUDED.country_id,
			country = EXCLUDED.country,
			capacity = EXCLUDED.capacity,
			amenities = EXCLUDED.amenities,
			tags = EXCLUDED.tags,
			distance_from_city = EXCLUDED.distance_from_city,
			total_price = EXCLUDED.total_price,
			available_shares_pct = EXCLUDED.available_shares_pct,
			expected_roi_pct = EXCLUDED.expected_roi_pct`,
		o.ID, o.Title, nonNil(o.Images), o.Location, o.CountryID, o.Country, o.Capacity,
		nonNil(o.Amenities), nonNil(o.Tags), o.DistanceFromCity, o.TotalPrice, o.AvailableSharesPct, o.ExpectedRoiPct,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert opportunity %s: %w", o.ID, err)
	}
	return nil
}

// ReserveShares decrements available_shares_pct in one statement, clamped to
// [0, 100]. No row comes back when fewer than pct remain.
func (r *OpportunityRepository) ReserveShares(ctx context.Context, id string, pct float64) (entities.Opportunity, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE opportunities
		SET available_shares_pct = LEAST(100, GREATEST(0, available_shares_pct - $2))
		WHERE id = $1 AND available_shares_pct >= $3
		RETURNING `+opportunityColumns,
		id, pct, pct-investment.PctTolerance,
	)
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("failed to reserve shares: %w", err)
	}
	return collectOpportunity(rows)
}

func collectOpportunity(rows pgx.Rows) (entities.Opportunity, error) {
	o, err := pgx.CollectOneRow(rows, scanOpportunity)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Opportunity{}, nil
	}
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("failed to scan opportunity: %w", err)
	}
	return o, nil
}

func scanOpportunity(row pgx.CollectableRow) (entities.Opportunity, error) {
	var o entities.Opportunity
	err := row.Scan(
		&o.ID, &o.Title, &o.Images, &o.Location, &o.CountryID, &o.Country, &o.Capacity,
		&o.Amenities, &o.Tags, &o.DistanceFromCity, &o.TotalPrice, &o.AvailableSharesPct, &o.ExpectedRoiPct,
	)
	o.Images = nonNil(o.Images)
	o.Amenities = nonNil(o.Amenities)
	o.Tags = nonNil(o.Tags)
	return o, err
}
