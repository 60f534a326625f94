package postgres

import (
	"context"
	"errors"
	"fmt"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, name, avatar_url, level, total_points, next_level_points,
	total_invested, total_yearly_return, total_yearly_return_pct, remaining_free_nights`

type ProfileRepository struct {
	db DBTX
}

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// List returns profiles ordered by points, highest first.
func (r *ProfileRepository) List(ctx context.Context) ([]entities.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY total_points DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return out, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to query profile: %w", err)
	}
	p, err := pgx.CollectOneRow(rows, scanProfile)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Profile{}, nil
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to scan profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p entities.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			level = EXCLUDED.level,
			total_points = EXCLUDED.total_points,
			next_level_points = EXCLUDED.next_level_points,
			total_invested = EXCLUDED.total_invested,
			total_yearly_return = EXCLUDED.total_yearly_return,
			total_yearly_return_pct = EXCLUDED.total_yearly_return_pct,
			remaining_free_nights = EXCLUDED.remaining_free_nights`,
		p.ID, p.Name, p.AvatarURL, p.Level, p.TotalPoints, p.NextLevelPoints,
		p.TotalInvested, p.TotalYearlyReturn, p.TotalYearlyReturnPct, p.RemainingFreeNights,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}
	return nil
}

func scanProfile(row pgx.CollectableRow) (entities.Profile, error) {
	var p entities.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.AvatarURL, &p.Level, &p.TotalPoints, &p.NextLevelPoints,
		&p.TotalInvested, &p.TotalYearlyReturn, &p.TotalYearlyReturnPct, &p.RemainingFreeNights,
	)
	return p, err
}
