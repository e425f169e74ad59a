package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/uuid"

	"epoxyworld-backend/internal/config"
	"epoxyworld-backend/internal/models"
	"epoxyworld-backend/internal/services"
)

// submissionMailer is the slice of the email service the handler uses.
type submissionMailer interface {
	SendSubmissionEmail(ctx context.Context, submission models.ContactSubmission, pdfData []byte, receivedAt time.Time) error
	SendAutoReply(ctx context.Context, submission models.ContactSubmission) error
}

var (
	emailService submissionMailer
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

	emailCfg, err := config.LoadEmail()
	if err != nil {
		log.Fatalf("Failed to load email config: %v", err)
	}

	emailService = services.NewEmailService(sesv2.NewFromConfig(cfg), *emailCfg)
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

	var submission models.ContactSubmission
	if err := json.Unmarshal([]byte(request.Body), &submission); err != nil {
		log.Printf("Error parsing body: %v", err)
		return respond(400, map[string]string{"message": "Invalid request format"})
	}

	if submission.Name == "" || submission.Email == "" || (submission.Message == "" && submission.Description == "") {
		return respond(400, map[string]string{"message": "Missing required fields: name, email, message"})
	}

	if !models.IsValidEmail(submission.Email) {
		return respond(400, map[string]string{"message": "Valid email address is required"})
	}

	submissionID := uuid.New().String()
	receivedAt := time.Now()
	log.Printf("Processing submission %s from %s (custom order: %v)", submissionID, submission.Email, submission.IsCustomOrder())

	pdfData, err := services.BuildSubmissionPDF(submission, receivedAt)
	if err != nil {
		log.Printf("Error generating PDF for submission %s: %v", submissionID, err)
		return respond(500, map[string]string{"message": "Error processing your submission. Please try again."})
	}

	if err := emailService.SendSubmissionEmail(ctx, submission, pdfData, receivedAt); err != nil {
		log.Printf("Error sending submission email for %s: %v", submissionID, err)
		return respond(500, map[string]string{"message": "Error processing your submission. Please try again."})
	}

	if err := emailService.SendAutoReply(ctx, submission); err != nil {
		log.Printf("Error sending auto-reply for submission %s: %v", submissionID, err)
		return respond(500, map[string]string{"message": "Error processing your submission. Please try again."})
	}

	submissionType := "contact"
	if submission.IsCustomOrder() {
		submissionType = "custom_order"
	}

	return respond(200, map[string]string{
		"message":      "Submission received successfully",
		"type":         submissionType,
		"submissionId": submissionID,
	})
}

func main() {
	setup(context.Background())
	lambda.Start(handleRequest)
}
