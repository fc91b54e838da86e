package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"decormitra/internal/domain/entities"
	"decormitra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName = "leads"
	leadsClientIndex      = "client_id-index"
)

type leadItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	Name            string `dynamodbav:"name"`
	Phone           string `dynamodbav:"phone"`
	Email           string `dynamodbav:"email"`
	Pincode         string `dynamodbav:"pincode"`
	ProjectCategory string `dynamodbav:"project_category"`
	Notes           string `dynamodbav:"notes"`
	EstimatedBudget string `dynamodbav:"estimated_budget"`
	Status          string `dynamodbav:"status"`
	Exported        bool   `dynamodbav:"exported"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (client_id-index): client_id
//
// The GSI keeps per-tenant listing a Query rather than a Scan.
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

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(lead))
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
	return lead, nil
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

func (r *LeadDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Lead, error) {
	var leads []entities.Lead
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(leadsClientIndex),
			KeyConditionExpression: aws.String("#client_id = :client_id"),
			ExpressionAttributeNames: map[string]string{
				"#client_id": "client_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":client_id": &types.AttributeValueMemberS{Value: clientID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []leadItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			leads = append(leads, fromLeadItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return leads, nil
}

func (r *LeadDynamoRepository) MarkExported(ctx context.Context, id string) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #exported = :exported, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#exported":   "exported",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":exported":   &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
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

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		ClientID:        l.ClientID,
		Name:            l.Name,
		Phone:           l.Phone,
		Email:           l.Email,
		Pincode:         l.Pincode,
		ProjectCategory: l.ProjectCategory,
		Notes:           l.Notes,
		EstimatedBudget: strconv.FormatInt(l.EstimatedBudget, 10),
		Status:          string(l.Status),
		Exported:        l.Exported,
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	budget, _ := strconv.ParseInt(it.EstimatedBudget, 10, 64)
	return entities.Lead{
		ID:              it.ID,
		ClientID:        it.ClientID,
		Name:            it.Name,
		Phone:           it.Phone,
		Email:           it.Email,
		Pincode:         it.Pincode,
		ProjectCategory: it.ProjectCategory,
		Notes:           it.Notes,
		EstimatedBudget: budget,
		Status:          entities.LeadStatus(it.Status),
		Exported:        it.Exported,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
