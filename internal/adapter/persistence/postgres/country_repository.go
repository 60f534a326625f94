package postgres

import (
	"context"
	"errors"
	"fmt"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const countryColumns = `id, name, status, progress, description, ambassador,
	locations_proposed, locations_target, architects_recommended, architects_target,
	lawyer_recommended, ambassador_applications, ambassador_target,
	hospitality_partner, content_creators, content_creators_target,
	media_partners, b2b_clients, b2b_clients_target`

type CountryRepository struct {
	db DBTX
}

var _ interfaces.ICountryRepository = (*CountryRepository)(nil)

func NewCountryRepository(db DBTX) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context) ([]entities.CountryProgress, error) {
	rows, err := r.db.Query(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}
	return out, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id string) (entities.CountryProgress, error) {
	rows, err := r.db.Query(ctx, `SELECT `+countryColumns+` FROM countries WHERE id = $1`, id)
	if err != nil {
		return entities.CountryProgress{}, fmt.Errorf("failed to query country: %w", err)
	}
	c, err := pgx.CollectOneRow(rows, scanCountry)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.CountryProgress{}, nil
	}
	if err != nil {
		return entities.CountryProgress{}, fmt.Errorf("failed to scan country: %w", err)
	}
	return c, nil
}

func (r *CountryRepository) Upsert(ctx context.Context, c entities.CountryProgress) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO countries (`+countryColumns+`, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			progress = EXCLUDED.progress,
			description = EXCLUDED.description,
			ambassador = EXCLUDED.ambassador,
			locations_proposed = EXCLUDED.locations_proposed,
			locations_target = EXCLUDED.locations_target,
			architects_recommended = EXCLUDED.architects_recommended,
			architects_target = EXCLUDED.architects_target,
			lawyer_recommended = EXCLUDED.lawyer_recommended,
			ambassador_applications = EXCLUDED.ambassador_applications,
			ambassador_target = EXCLUDED.ambassador_target,
			hospitality_partner = EXCLUDED.hospitality_partner,
			content_creators = EXCLUDED.content_creators,
			content_creators_target = EXCLUDED.content_creators_target,
			media_partners = EXCLUDED.media_partners,
			b2b_clients = EXCLUDED.b2b_clients,
			b2b_clients_target = EXCLUDED.b2b_clients_target,
			updated_at = NOW()`,
		c.ID, c.Name, string(c.Status), c.Progress, c.Description, c.Ambassador,
		c.LocationsProposed, c.LocationsTarget, c.ArchitectsRecommended, c.ArchitectsTarget,
		c.LawyerRecommended, c.AmbassadorApplications, c.AmbassadorTarget,
		c.HospitalityPartner, c.ContentCreators, c.ContentCreatorsTarget,
		c.MediaPartners, c.B2BClients, c.B2BClientsTarget,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert country %s: %w", c.ID, err)
	}
	return nil
}

func scanCountry(row pgx.CollectableRow) (entities.CountryProgress, error) {
	var (
		c      entities.CountryProgress
		status string
	)
	err := row.Scan(
		&c.ID, &c.Name, &status, &c.Progress, &c.Description, &c.Ambassador,
		&c.LocationsProposed, &c.LocationsTarget, &c.ArchitectsRecommended, &c.ArchitectsTarget,
		&c.LawyerRecommended, &c.AmbassadorApplications, &c.AmbassadorTarget,
		&c.HospitalityPartner, &c.ContentCreators, &c.ContentCreatorsTarget,
		&c.MediaPartners, &c.B2BClients, &c.B2BClientsTarget,
	)
	c.Status = entities.CountryStatus(status)
	c.Source = entities.RecordSourceStored
	return c, err
}
