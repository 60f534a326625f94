package repository

import (
	"context"
	"sort"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"
)

const defaultCountriesTableName = "countries"

type ambassadorItem struct {
	ID                 string `dynamodbav:"id"`
	Name               string `dynamodbav:"name"`
	AvatarURL          string `dynamodbav:"avatar_url"`
	JoinedDate         string `dynamodbav:"joined_date"`
	ContributionPoints int    `dynamodbav:"contribution_points"`
}

type countryItem struct {
	ID          string          `dynamodbav:"id"`
	Name        string          `dynamodbav:"name"`
	Status      string          `dynamodbav:"status"`
	Progress    int             `dynamodbav:"progress"`
	Description string          `dynamodbav:"description,omitempty"`
	Ambassador  *ambassadorItem `dynamodbav:"ambassador,omitempty"`

	LocationsProposed      int  `dynamodbav:"locations_proposed"`
	LocationsTarget        int  `dynamodbav:"locations_target"`
	ArchitectsRecommended  int  `dynamodbav:"architects_recommended"`
	ArchitectsTarget       int  `dynamodbav:"architects_target"`
	LawyerRecommended      bool `dynamodbav:"lawyer_recommended"`
	AmbassadorApplications int  `dynamodbav:"ambassador_applications"`
	AmbassadorTarget       int  `dynamodbav:"ambassador_target"`
	HospitalityPartner     bool `dynamodbav:"hospitality_partner"`
	ContentCreators        int  `dynamodbav:"content_creators"`
	ContentCreatorsTarget  int  `dynamodbav:"content_creators_target"`
	MediaPartners          bool `dynamodbav:"media_partners"`
	B2BClients             int  `dynamodbav:"b2b_clients"`
	B2BClientsTarget       int  `dynamodbav:"b2b_clients_target"`
}

// CountryDynamoRepository persists country progress records in DynamoDB.
//
// Table requirements:
//   - PK: id (string, ISO alpha-3)
type CountryDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICountryRepository = (*CountryDynamoRepository)(nil)

func NewCountryDynamoRepository(ddb DynamoDBAPI, tableName string) *CountryDynamoRepository {
	return &CountryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCountriesTableName),
	}
}

func (r *CountryDynamoRepository) List(ctx context.Context) ([]entities.CountryProgress, error) {
	items, err := scanAll[countryItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CountryProgress, 0, len(items))
	for _, it := range items {
		out = append(out, fromCountryItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CountryDynamoRepository) GetByID(ctx context.Context, id string) (entities.CountryProgress, error) {
	it, found, err := getItem[countryItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.CountryProgress{}, err
	}
	return fromCountryItem(it), nil
}

func (r *CountryDynamoRepository) Upsert(ctx context.Context, c entities.CountryProgress) error {
	return putItem(ctx, r.ddb, r.tableName, toCountryItem(c))
}

func toCountryItem(c entities.CountryProgress) countryItem {
	it := countryItem{
		ID:                     c.ID,
		Name:                   c.Name,
		Status:                 string(c.Status),
		Progress:               c.Progress,
		Description:            c.Description,
		LocationsProposed:      c.LocationsProposed,
		LocationsTarget:        c.LocationsTarget,
		ArchitectsRecommended:  c.ArchitectsRecommended,
		ArchitectsTarget:       c.ArchitectsTarget,
		LawyerRecommended:      c.LawyerRecommended,
		AmbassadorApplications: c.AmbassadorApplications,
		AmbassadorTarget:       c.AmbassadorTarget,
		HospitalityPartner:     c.HospitalityPartner,
		ContentCreators:        c.ContentCreators,
		ContentCreatorsTarget:  c.ContentCreatorsTarget,
		MediaPartners:          c.MediaPartners,
		B2BClients:             c.B2BClients,
		B2BClientsTarget:       c.B2BClientsTarget,
	}
	if a := c.Ambassador; a != nil {
		it.Ambassador = &ambassadorItem{
			ID:                 a.ID,
			Name:               a.Name,
			AvatarURL:          a.AvatarURL,
			JoinedDate:         a.JoinedDate,
			ContributionPoints: a.ContributionPoints,
		}
	}
	return it
}

func fromCountryItem(it countryItem) entities.CountryProgress {
	c := entities.CountryProgress{
		ID:                     it.ID,
		Name:                   it.Name,
		Status:                 entities.CountryStatus(it.Status),
		Progress:               it.Progress,
		Description:            it.Description,
		Source:                 entities.RecordSourceStored,
		LocationsProposed:      it.LocationsProposed,
		LocationsTarget:        it.LocationsTarget,
		ArchitectsRecommended:  it.ArchitectsRecommended,
		ArchitectsTarget:       it.ArchitectsTarget,
		LawyerRecommended:      it.LawyerRecommended,
		AmbassadorApplications: it.AmbassadorApplications,
		AmbassadorTarget:       it.AmbassadorTarget,
		HospitalityPartner:     it.HospitalityPartner,
		ContentCreators:        it.ContentCreators,
		ContentCreatorsTarget:  it.ContentCreatorsTarget,
		MediaPartners:          it.MediaPartners,
		B2BClients:             it.B2BClients,
		B2BClientsTarget:       it.B2BClientsTarget,
	}
	if a := it.Ambassador; a != nil {
		c.Ambassador = &entities.Ambassador{
			ID:                 a.ID,
			Name:               a.Name,
			AvatarURL:          a.AvatarURL,
			JoinedDate:         a.JoinedDate,
			ContributionPoints: a.ContributionPoints,
		}
	}
	return c
}
