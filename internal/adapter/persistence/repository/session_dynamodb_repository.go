package repository

import (
	"context"
	"encoding/json"
	"time"

	"decormitra/internal/domain/entities"
	"decormitra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	PersonaID string `dynamodbav:"persona_id"`
	Messages  string `dynamodbav:"messages"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository is a plain key-value store for chat sessions.
// The transcript is stored as one JSON blob; sessions are always read and
// written whole, so item-level structure buys nothing.
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) Put(ctx context.Context, session entities.Session) (entities.Session, error) {
	it, err := toSessionItem(session)
	if err != nil {
		return entities.Session{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Session{}, err
	}
	return session, nil
}

func toSessionItem(s entities.Session) (sessionItem, error) {
	messages, err := json.Marshal(s.Messages)
	if err != nil {
		return sessionItem{}, err
	}
	return sessionItem{
		ID:        s.ID,
		ClientID:  s.ClientID,
		PersonaID: s.PersonaID,
		Messages:  string(messages),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSessionItem(it sessionItem) (entities.Session, error) {
	var messages []entities.ChatMessage
	if it.Messages != "" {
		if err := json.Unmarshal([]byte(it.Messages), &messages); err != nil {
			return entities.Session{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Session{
		ID:        it.ID,
		ClientID:  it.ClientID,
		PersonaID: it.PersonaID,
		Messages:  messages,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
