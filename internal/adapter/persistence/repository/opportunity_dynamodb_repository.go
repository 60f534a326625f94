package repository

import (
	"context"
	"sort"

	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOpportunitiesTableName = "opportunities"

type opportunityItem struct {
	ID                 string   `dynamodbav:"id"`
	Title              string   `dynamodbav:"title"`
	Images             []string `dynamodbav:"images"`
	Location           string   `dynamodbav:"location"`
	CountryID          string   `dynamodbav:"country_id,omitempty"`
	Country            string   `dynamodbav:"country"`
	Capacity           int      `dynamodbav:"capacity"`
	Amenities          []string `dynamodbav:"amenities"`
	Tags               []string `dynamodbav:"tags"`
	DistanceFromCity   string   `dynamodbav:"distance_from_city"`
	TotalPrice         float64  `dynamodbav:"total_price"`
	AvailableSharesPct float64  `dynamodbav:"available_shares_pct"`
	ExpectedRoiPct     float64  `dynamodbav:"expected_roi_pct"`
}

// OpportunityDynamoRepository persists marketplace opportunities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OpportunityDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOpportunityRepository = (*OpportunityDynamoRepository)(nil)

func NewOpportunityDynamoRepository(ddb DynamoDBAPI, tableName string) *OpportunityDynamoRepository {
	return &OpportunityDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOpportunitiesTableName),
	}
}

func (r *OpportunityDynamoRepository) List(ctx context.Context) ([]entities.Opportunity, error) {
	items, err := scanAll[opportunityItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Opportunity, 0, len(items))
	for _, it := range items {
		out = append(out, fromOpportunityItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OpportunityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	it, found, err := getItem[opportunityItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

func (r *OpportunityDynamoRepository) Upsert(ctx context.Context, o entities.Opportunity) error {
	return putItem(ctx, r.ddb, r.tableName, toOpportunityItem(o))
}

// ReserveShares subtracts pct from the available percentage in a single
// conditional update. A negative pct gives shares back.
func (r *OpportunityDynamoRepository) ReserveShares(ctx context.Context, id string, pct float64) (entities.Opportunity, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #avail >= :min"),
		UpdateExpression:    aws.String("SET #avail = #avail - :pct"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pct": &types.AttributeValueMemberN{Value: floatToString(pct)},
			":min": &types.AttributeValueMemberN{Value: floatToString(pct - investment.PctTolerance)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#avail": "available_shares_pct"}, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Opportunity{}, nil
		}
		return entities.Opportunity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Opportunity{}, nil
	}
	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

func toOpportunityItem(o entities.Opportunity) opportunityItem {
	return opportunityItem{
		ID:                 o.ID,
		Title:              o.Title,
		Images:             o.Images,
		Location:           o.Location,
		CountryID:          o.CountryID,
		Country:            o.Country,
		Capacity:           o.Capacity,
		Amenities:          o.Amenities,
		Tags:               o.Tags,
		DistanceFromCity:   o.DistanceFromCity,
		TotalPrice:         o.TotalPrice,
		AvailableSharesPct: o.AvailableSharesPct,
		ExpectedRoiPct:     o.ExpectedRoiPct,
	}
}

func fromOpportunityItem(it opportunityItem) entities.Opportunity {
	return entities.Opportunity{
		ID:                 it.ID,
		Title:              it.Title,
		Images:             nonNil(it.Images),
		Location:           it.Location,
		CountryID:          it.CountryID,
		Country:            it.Country,
		Capacity:           it.Capacity,
		Amenities:          nonNil(it.Amenities),
		Tags:               nonNil(it.Tags),
		DistanceFromCity:   it.DistanceFromCity,
		TotalPrice:         it.TotalPrice,
		AvailableSharesPct: it.AvailableSharesPct,
		ExpectedRoiPct:     it.ExpectedRoiPct,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
