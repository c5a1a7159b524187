package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID              string   `dynamodbav:"id"`
	FirstName       string   `dynamodbav:"first_name"`
	LastName        string   `dynamodbav:"last_name"`
	Email           string   `dynamodbav:"email"`
	Phone           string   `dynamodbav:"phone"`
	City            string   `dynamodbav:"city"`
	IsCommercial    bool     `dynamodbav:"is_commercial"`
	EstimatedDamage string   `dynamodbav:"estimated_damage"`
	InjurySeverity  string   `dynamodbav:"injury_severity"`
	EstimateRange   string   `dynamodbav:"estimate_range"`
	IsArchived      bool     `dynamodbav:"is_archived"`
	MediaURLs       []string `dynamodbav:"media_urls,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the whole table and sorts in memory: the lead set is a
// staff triage queue, small by nature, and a stable in-memory sort is what
// gives the insertion-order tie-breaking the admin view relies on.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it := toLeadItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context, orderBy entities.LeadOrderBy, direction entities.SortDirection) ([]entities.Lead, error) {
	var leads []entities.Lead
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			leads = append(leads, fromLeadItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortLeads(leads, orderBy, direction)
	return leads, nil
}

// sortLeads orders in place. The slice is first put into canonical
// insertion order (created_at, then id), then stably sorted by the
// requested field, so equal keys keep their insertion-relative order.
func sortLeads(leads []entities.Lead, orderBy entities.LeadOrderBy, direction entities.SortDirection) {
	sort.Slice(leads, func(i, j int) bool {
		if !leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].CreatedAt.Before(leads[j].CreatedAt)
		}
		return leads[i].ID < leads[j].ID
	})

	less := func(i, j int) bool {
		a, b := leads[i], leads[j]
		if direction == entities.SortDesc {
			a, b = b, a
		}
		switch orderBy {
		case entities.OrderByCity:
			return a.City < b.City
		case entities.OrderByFirstName:
			return a.FirstName < b.FirstName
		case entities.OrderByLastName:
			return a.LastName < b.LastName
		case entities.OrderByEstimatedDamage:
			return a.EstimatedDamage < b.EstimatedDamage
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(leads, less)
}

func (r *LeadDynamoRepository) SetArchived(ctx context.Context, id string, archived bool) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_archived = :is_archived"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_archived": &types.AttributeValueMemberBOOL{Value: archived},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#is_archived": "is_archived",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// Delete removes the row and returns its previous contents so the caller
// can clean up referenced attachment objects. A vanished id yields the
// zero Lead rather than an error.
func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Phone:           l.Phone,
		City:            l.City,
		IsCommercial:    l.IsCommercial,
		EstimatedDamage: floatToString(l.EstimatedDamage),
		InjurySeverity:  floatToString(l.InjurySeverity),
		EstimateRange:   l.EstimateRange,
		IsArchived:      l.IsArchived,
		MediaURLs:       l.MediaURLs,
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	damage, _ := strconv.ParseFloat(it.EstimatedDamage, 64)
	severity, _ := strconv.ParseFloat(it.InjurySeverity, 64)
	return entities.Lead{
		ID:              it.ID,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Email:           it.Email,
		Phone:           it.Phone,
		City:            it.City,
		IsCommercial:    it.IsCommercial,
		EstimatedDamage: damage,
		InjurySeverity:  severity,
		EstimateRange:   it.EstimateRange,
		IsArchived:      it.IsArchived,
		MediaURLs:       it.MediaURLs,
		CreatedAt:       createdAt,
	}
}
