package repository

import (
	"context"
	"sort"
	"time"

	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvestmentsTableName = "investments"
	investmentsProfileIDIndex   = "profile_id-index"
)

type investmentItem struct {
	ID              string                 `dynamodbav:"id"`
	ProfileID       string                 `dynamodbav:"profile_id"`
	OpportunityID   string                 `dynamodbav:"opportunity_id"`
	PaymentID       string                 `dynamodbav:"payment_id"`
	Status          string                 `dynamodbav:"status"`
	Date            string                 `dynamodbav:"date"`
	Name            string                 `dynamodbav:"name"`
	Location        string                 `dynamodbav:"location"`
	Country         string                 `dynamodbav:"country"`
	Image           string                 `dynamodbav:"image"`
	Shares          int                    `dynamodbav:"shares"`
	SharePct        float64                `dynamodbav:"share_pct"`
	InvestmentSize  float64                `dynamodbav:"investment_size"`
	YearlyReturnVal float64                `dynamodbav:"yearly_return_val"`
	YearlyReturnPct float64                `dynamodbav:"yearly_return_pct"`
	FreeNights      int                    `dynamodbav:"free_nights"`
	MPPayload       map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw    string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvestmentDynamoRepository persists share purchases in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: profile_id-index (PK: profile_id)
type InvestmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IInvestmentRepository = (*InvestmentDynamoRepository)(nil)

func NewInvestmentDynamoRepository(ddb DynamoDBAPI, tableName string) *InvestmentDynamoRepository {
	return &InvestmentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultInvestmentsTableName),
	}
}

func (r *InvestmentDynamoRepository) Create(ctx context.Context, inv entities.Investment) (entities.Investment, error) {
	av, err := attributevalue.MarshalMap(toInvestmentItem(inv))
	if err != nil {
		return entities.Investment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Investment{}, err
	}
	return inv, nil
}

func (r *InvestmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Investment, error) {
	it, found, err := getItem[investmentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Investment{}, err
	}
	return fromInvestmentItem(it), nil
}

// ListByProfileID returns the profile's investments, newest first.
func (r *InvestmentDynamoRepository) ListByProfileID(ctx context.Context, profileID string) ([]entities.Investment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(investmentsProfileIDIndex),
		KeyConditionExpression: aws.String("profile_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: profileID},
		},
	})

	items := make([]entities.Investment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it investmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInvestmentItem(it))
		}
	}
	sortNewestFirst(items)
	return items, nil
}

func (r *InvestmentDynamoRepository) List(ctx context.Context) ([]entities.Investment, error) {
	raw, err := scanAll[investmentItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Investment, 0, len(raw))
	for _, it := range raw {
		items = append(items, fromInvestmentItem(it))
	}
	sortNewestFirst(items)
	return items, nil
}

func sortNewestFirst(items []entities.Investment) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
}

func toInvestmentItem(inv entities.Investment) investmentItem {
	return investmentItem{
		ID:              inv.ID,
		ProfileID:       inv.ProfileID,
		OpportunityID:   inv.OpportunityID,
		PaymentID:       inv.PaymentID,
		Status:          string(inv.Status),
		Date:            inv.Date.UTC().Format(time.RFC3339Nano),
		Name:            inv.Name,
		Location:        inv.Location,
		Country:         inv.Country,
		Image:           inv.Image,
		Shares:          inv.Shares,
		SharePct:        inv.SharePct,
		InvestmentSize:  inv.InvestmentSize,
		YearlyReturnVal: inv.YearlyReturnVal,
		YearlyReturnPct: inv.YearlyReturnPct,
		FreeNights:      inv.FreeNights,
		MPPayload:       inv.MPPayload,
		MPPayloadRaw:    string(inv.MPPayloadRaw),
	}
}

func fromInvestmentItem(it investmentItem) entities.Investment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	inv := entities.Investment{
		ID:              it.ID,
		ProfileID:       it.ProfileID,
		OpportunityID:   it.OpportunityID,
		PaymentID:       it.PaymentID,
		Status:          entities.InvestmentStatus(it.Status),
		Date:            dt,
		Name:            it.Name,
		Location:        it.Location,
		Country:         it.Country,
		Image:           it.Image,
		Shares:          it.Shares,
		SharePct:        it.SharePct,
		InvestmentSize:  it.InvestmentSize,
		YearlyReturnVal: it.YearlyReturnVal,
		YearlyReturnPct: it.YearlyReturnPct,
		FreeNights:      it.FreeNights,
		MPPayload:       it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		inv.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return inv
}
