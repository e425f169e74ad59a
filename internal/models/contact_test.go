package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	var sub ContactSubmission
	body := `{"name":"Jordan","email":"jordan@example.com","quantity":2,"sizeLength":"12"}`
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatalf("Failed to unmarshal submission: %v", err)
	}

	if sub.Quantity.String() != "2" {
		t.Errorf("Expected numeric quantity to decode as %q, got %q", "2", sub.Quantity)
	}
	if sub.SizeLength.String() != "12" {
		t.Errorf("Expected string sizeLength to decode as %q, got %q", "12", sub.SizeLength)
	}

	var bad FlexString
	if err := json.Unmarshal([]byte(`{"nested":true}`), &bad); err == nil {
		t.Error("Expected error unmarshaling an object into FlexString")
	}
}

func TestIsCustomOrder(t *testing.T) {
	contact := ContactSubmission{Subject: "Question about shipping"}
	if contact.IsCustomOrder() {
		t.Error("Plain contact subject should not be a custom order")
	}

	order := ContactSubmission{Subject: "Custom Order Request - Crystal Dragon"}
	if !order.IsCustomOrder() {
		t.Error("Custom order subject should be detected")
	}
}

func TestSubmissionBody(t *testing.T) {
	tests := []struct {
		name     string
		sub      ContactSubmission
		expected string
	}{
		{"message wins", ContactSubmission{Message: "hello", Description: "desc"}, "hello"},
		{"description fallback", ContactSubmission{Description: "desc"}, "desc"},
		{"empty fallback", ContactSubmission{}, "No message provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.Body(); got != tt.expected {
				t.Errorf("Body() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSizeText(t *testing.T) {
	tests := []struct {
		name     string
		sub      ContactSubmission
		expected string
	}{
		{"preset size", ContactSubmission{Size: "9in"}, "9in"},
		{"length with unit", ContactSubmission{SizeLength: "12", SizeUnit: "cm"}, "12 cm"},
		{"length default unit", ContactSubmission{SizeLength: "12"}, "12 inches"},
		{"nothing set", ContactSubmission{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.SizeText(); got != tt.expected {
				t.Errorf("SizeText() = %q, want %q", got, tt.expected)
			}
		})
	}
}
