package repository

import (
	"context"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID                   string  `dynamodbav:"id"`
	Name                 string  `dynamodbav:"name"`
	AvatarURL            string  `dynamodbav:"avatar_url"`
	Level                string  `dynamodbav:"level"`
	TotalPoints          int     `dynamodbav:"total_points"`
	NextLevelPoints      int     `dynamodbav:"next_level_points"`
	TotalInvested        float64 `dynamodbav:"total_invested"`
	TotalYearlyReturn    float64 `dynamodbav:"total_yearly_return"`
	TotalYearlyReturnPct float64 `dynamodbav:"total_yearly_return_pct"`
	RemainingFreeNights  int     `dynamodbav:"remaining_free_nights"`
}

// ProfileDynamoRepository persists member profiles in DynamoDB. Investments
// live in their own table.
//
// Table requirements:
//   - PK: id (string)
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) List(ctx context.Context) ([]entities.Profile, error) {
	items, err := scanAll[profileItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Profile, 0, len(items))
	for _, it := range items {
		out = append(out, fromProfileItem(it))
	}
	return out, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	it, found, err := getItem[profileItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Upsert(ctx context.Context, p entities.Profile) error {
	return putItem(ctx, r.ddb, r.tableName, profileItem{
		ID:                   p.ID,
		Name:                 p.Name,
		AvatarURL:            p.AvatarURL,
		Level:                p.Level,
		TotalPoints:          p.TotalPoints,
		NextLevelPoints:      p.NextLevelPoints,
		TotalInvested:        p.TotalInvested,
		TotalYearlyReturn:    p.TotalYearlyReturn,
		TotalYearlyReturnPct: p.TotalYearlyReturnPct,
		RemainingFreeNights:  p.RemainingFreeNights,
	})
}

func fromProfileItem(it profileItem) entities.Profile {
	return entities.Profile{
		ID:                   it.ID,
		Name:                 it.Name,
		AvatarURL:            it.AvatarURL,
		Level:                it.Level,
		TotalPoints:          it.TotalPoints,
		NextLevelPoints:      it.NextLevelPoints,
		TotalInvested:        it.TotalInvested,
		TotalYearlyReturn:    it.TotalYearlyReturn,
		TotalYearlyReturnPct: it.TotalYearlyReturnPct,
		RemainingFreeNights:  it.RemainingFreeNights,
	}
}
