package services

import (
	"bytes"
	"testing"
	"time"

	"epoxyworld-backend/internal/models"
)

func TestBuildSubmissionPDF(t *testing.T) {
	submission := models.ContactSubmission{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Subject: "Shipping question",
		Message: "Do you ship to Canada?",
	}

	data, err := BuildSubmissionPDF(submission, time.Now())
	if err != nil {
		t.Fatalf("Failed to build PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Expected PDF magic header, got %q", data[:min(8, len(data))])
	}
}

func TestBuildSubmissionPDFCustomOrder(t *testing.T) {
	submission := models.ContactSubmission{
		Name:               "Jordan Lee",
		Email:              "jordan@example.com",
		Subject:            "Custom Order Request - Dragon",
		Category:           "Fantasy",
		SizeLength:         "12",
		Quantity:           "2",
		MaterialPreference: "Epoxy Glow",
		Description:        "A glow in the dark dragon.",
		FileNames:          "sketch.png",
	}

	data, err := BuildSubmissionPDF(submission, time.Now())
	if err != nil {
		t.Fatalf("Failed to build custom order PDF: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty PDF output")
	}
}
