package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Subscriber is a newsletter subscription record keyed by email.
type Subscriber struct {
	Email        string    `dynamodbav:"email" json:"email"`
	SubscribedAt time.Time `dynamodbav:"subscribedAt" json:"subscribedAt"`
	Status       string    `dynamodbav:"status" json:"status"`
	Source       string    `dynamodbav:"source" json:"source"`
}

// SubscriberStore provides newsletter subscription storage over DynamoDB.
type SubscriberStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewSubscriberStore creates a subscriber store for the given table.
func NewSubscriberStore(client *dynamodb.Client, tableName string) *SubscriberStore {
	return &SubscriberStore{
		client:    client,
		tableName: tableName,
	}
}

// GetSubscriber retrieves a subscription by email. Returns nil when the
// email is not subscribed.
func (s *SubscriberStore) GetSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var subscriber Subscriber
	err = attributevalue.UnmarshalMap(result.Item, &subscriber)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscriber: %w", err)
	}

	return &subscriber, nil
}

// PutSubscriber stores a subscription record.
func (s *SubscriberStore) PutSubscriber(ctx context.Context, subscriber *Subscriber) error {
	item, err := attributevalue.MarshalMap(subscriber)
	if err != nil {
		return fmt.Errorf("failed to marshal subscriber: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	return nil
}
