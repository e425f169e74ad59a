package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"epoxyworld-backend/internal/config"
	"epoxyworld-backend/internal/models"
	"epoxyworld-backend/internal/services"
)

// subscriptionStore is the slice of the DynamoDB store the handler uses.
type subscriptionStore interface {
	GetSubscriber(ctx context.Context, email string) (*services.Subscriber, error)
	PutSubscriber(ctx context.Context, subscriber *services.Subscriber) error
}

// welcomeMailer is the slice of the email service the handler uses.
type welcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, email string) error
}

var (
	subscriberStore subscriptionStore
	emailService    welcomeMailer
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Content-Type":                 "application/json",
}

func setup(ctx context.Context) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	newsletterCfg, err := config.LoadNewsletter()
	if err != nil {
		log.Fatalf("Failed to load newsletter config: %v", err)
	}

	subscriberStore = services.NewSubscriberStore(dynamodb.NewFromConfig(cfg), newsletterCfg.TableName)
	emailService = services.NewEmailService(sesv2.NewFromConfig(cfg), newsletterCfg.Email)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func respond(statusCode int, body interface{}) (events.APIGatewayProxyResponse, error) {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		log.Printf("Error marshaling response body: %v", err)
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    corsHeaders,
			Body:       `{"message":"Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders,
		Body:       string(bodyJSON),
	}, nil
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: 200,
			Headers:    corsHeaders,
			Body:       "",
		}, nil
	}

	var req subscribeRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		log.Printf("Error parsing body: %v", err)
		return respond(400, map[string]string{"message": "Invalid request format"})
	}

	if !models.IsValidEmail(req.Email) {
		return respond(400, map[string]string{"message": "Valid email address is required"})
	}

	existing, err := subscriberStore.GetSubscriber(ctx, req.Email)
	if err != nil {
		log.Printf("Error checking subscription for %s: %v", req.Email, err)
		return respond(500, map[string]string{"message": "Error processing subscription. Please try again."})
	}

	if existing != nil {
		return respond(200, map[string]interface{}{
			"message":           "You are already subscribed to our newsletter!",
			"alreadySubscribed": true,
		})
	}

	subscriber := &services.Subscriber{
		Email:        req.Email,
		SubscribedAt: time.Now().UTC(),
		Status:       "active",
		Source:       "website",
	}
	if err := subscriberStore.PutSubscriber(ctx, subscriber); err != nil {
		log.Printf("Error storing subscription for %s: %v", req.Email, err)
		return respond(500, map[string]string{"message": "Error processing subscription. Please try again."})
	}

	if err := emailService.SendWelcomeEmail(ctx, req.Email); err != nil {
		log.Printf("Error sending welcome email for %s: %v", req.Email, err)
		return respond(500, map[string]string{"message": "Error processing subscription. Please try again."})
	}

	return respond(200, map[string]interface{}{
		"message": "Successfully subscribed to newsletter!",
		"email":   req.Email,
	})
}

func main() {
	setup(context.Background())
	lambda.Start(handleRequest)
}
