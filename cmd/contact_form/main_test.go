package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"epoxyworld-backend/internal/models"
)

type fakeMailer struct {
	submissionErr error
	autoReplyErr  error
	submissions   int
	autoReplies   int
	lastPDF       []byte
}

func (f *fakeMailer) SendSubmissionEmail(ctx context.Context, submission models.ContactSubmission, pdfData []byte, receivedAt time.Time) error {
	f.submissions++
	f.lastPDF = pdfData
	return f.submissionErr
}

func (f *fakeMailer) SendAutoReply(ctx context.Context, submission models.ContactSubmission) error {
	f.autoReplies++
	return f.autoReplyErr
}

func postRequest(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{HTTPMethod: "POST", Body: body}
}

func TestHandleRequestOptions(t *testing.T) {
	emailService = &fakeMailer{}

	resp, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200 for preflight, got %d", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("Expected CORS headers on preflight response")
	}
}

func TestHandleRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"missing name", `{"email":"a@b.com","message":"hi"}`},
		{"missing message and description", `{"name":"Jordan","email":"a@b.com"}`},
		{"invalid email", `{"name":"Jordan","email":"not-an-email","message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			emailService = mailer

			resp, err := handleRequest(context.Background(), postRequest(tt.body))
			if err != nil {
				t.Fatalf("Handler returned error: %v", err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("Expected 400, got %d", resp.StatusCode)
			}
			if mailer.submissions != 0 {
				t.Error("Expected no email send on validation failure")
			}
		})
	}
}

func TestHandleRequestSuccess(t *testing.T) {
	mailer := &fakeMailer{}
	emailService = mailer

	resp, err := handleRequest(context.Background(), postRequest(
		`{"name":"Jordan","email":"jordan@example.com","subject":"Custom Order Request - Dragon","description":"A dragon."}`))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
	if body["type"] != "custom_order" {
		t.Errorf("Expected custom_order type, got %q", body["type"])
	}
	if body["submissionId"] == "" {
		t.Error("Expected a submission id in the response")
	}

	if mailer.submissions != 1 || mailer.autoReplies != 1 {
		t.Errorf("Expected one notification and one auto-reply, got %d/%d", mailer.submissions, mailer.autoReplies)
	}
	if len(mailer.lastPDF) == 0 {
		t.Error("Expected a PDF attachment on the notification")
	}
}

func TestHandleRequestNotificationFailure(t *testing.T) {
	mailer := &fakeMailer{submissionErr: errors.New("ses unavailable")}
	emailService = mailer

	resp, err := handleRequest(context.Background(), postRequest(
		`{"name":"Jordan","email":"jordan@example.com","message":"hi"}`))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("Expected 500 on notification failure, got %d", resp.StatusCode)
	}
	if mailer.autoReplies != 0 {
		t.Error("Expected no auto-reply after a failed notification")
	}
}

func TestHandleRequestAutoReplyFailure(t *testing.T) {
	mailer := &fakeMailer{autoReplyErr: errors.New("ses unavailable")}
	emailService = mailer

	resp, err := handleRequest(context.Background(), postRequest(
		`{"name":"Jordan","email":"jordan@example.com","message":"hi"}`))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("Expected 500 on auto-reply failure, got %d", resp.StatusCode)
	}
}
