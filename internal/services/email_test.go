package services

import (
	"strings"
	"testing"
	"time"

	"epoxyworld-backend/internal/config"
	"epoxyworld-backend/internal/models"
)

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		FromEmail: "noreply@example.com",
		ToEmail:   "studio@example.com",
		ReplyTo:   "studio@example.com",
		SiteURL:   "https://www.example.com",
	}
}

func TestRenderSubmissionHTMLContact(t *testing.T) {
	submission := models.ContactSubmission{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Subject: "Shipping question",
		Message: "Do you ship to Canada?",
	}
	receivedAt := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)

	html, err := renderSubmissionHTML(submission, testEmailConfig(), receivedAt)
	if err != nil {
		t.Fatalf("Failed to render submission email: %v", err)
	}

	for _, want := range []string{"Jordan Lee", "jordan@example.com", "Shipping question", "Do you ship to Canada?", "CONTACT FORM"} {
		if !strings.Contains(html, want) {
			t.Errorf("Submission email missing %q", want)
		}
	}
	if strings.Contains(html, "Order Details") {
		t.Error("Plain contact email should not include order details")
	}
}

func TestRenderSubmissionHTMLCustomOrder(t *testing.T) {
	submission := models.ContactSubmission{
		Name:        "Jordan Lee",
		Email:       "jordan@example.com",
		Subject:     "Custom Order Request - Dragon",
		Category:    "Fantasy",
		SizeLength:  "12",
		BudgetRange: "$100-$250",
		Description: "A glow in the dark dragon.",
		FileNames:   "sketch.png",
	}

	html, err := renderSubmissionHTML(submission, testEmailConfig(), time.Now())
	if err != nil {
		t.Fatalf("Failed to render custom order email: %v", err)
	}

	for _, want := range []string{"CUSTOM ORDER REQUEST", "Order Details", "12 inches", "$100-$250", "A glow in the dark dragon.", "sketch.png", "Files cannot be attached"} {
		if !strings.Contains(html, want) {
			t.Errorf("Custom order email missing %q", want)
		}
	}
}

func TestRenderAutoReplyHTML(t *testing.T) {
	contact := models.ContactSubmission{Name: "Jordan", Subject: "Hello"}
	html, err := renderAutoReplyHTML(contact, testEmailConfig())
	if err != nil {
		t.Fatalf("Failed to render auto-reply: %v", err)
	}
	if !strings.Contains(html, "Hi Jordan,") {
		t.Error("Auto-reply missing greeting")
	}
	if strings.Contains(html, "detailed quote") {
		t.Error("Plain contact auto-reply should not mention a quote")
	}

	order := models.ContactSubmission{Name: "Jordan", Subject: "Custom Order Request - Dragon"}
	html, err = renderAutoReplyHTML(order, testEmailConfig())
	if err != nil {
		t.Fatalf("Failed to render custom order auto-reply: %v", err)
	}
	if !strings.Contains(html, "detailed quote") {
		t.Error("Custom order auto-reply should mention a quote")
	}
}

func TestRenderWelcomeHTML(t *testing.T) {
	html, err := renderWelcomeHTML(testEmailConfig())
	if err != nil {
		t.Fatalf("Failed to render welcome email: %v", err)
	}
	if !strings.Contains(html, "Welcome to PHEpoxyWorld!") {
		t.Error("Welcome email missing headline")
	}
	if !strings.Contains(html, "https://www.example.com/products") {
		t.Error("Welcome email missing catalog link")
	}
}

func TestBuildRawMessage(t *testing.T) {
	raw := string(buildRawMessage(rawMessageParams{
		From:        "PHEpoxyWorld <noreply@example.com>",
		To:          "studio@example.com",
		ReplyTo:     "jordan@example.com",
		Subject:     "Custom Order Request - Jordan",
		HTMLBody:    "<p>body</p>",
		Attachment:  []byte("%PDF-1.4 fake"),
		AttachName:  "submission.pdf",
		ContentType: "application/pdf",
	}))

	for _, want := range []string{
		"From: PHEpoxyWorld <noreply@example.com>",
		"Reply-To: jordan@example.com",
		"Content-Type: multipart/mixed; boundary=",
		"Content-Type: text/html; charset=UTF-8",
		`Content-Disposition: attachment; filename="submission.pdf"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("Raw message missing %q", want)
		}
	}

	// Both parts plus the closing marker share one boundary.
	_, after, found := strings.Cut(raw, "boundary=\"")
	if !found {
		t.Fatal("Boundary not found in headers")
	}
	boundary, _, _ := strings.Cut(after, "\"")
	if n := strings.Count(raw, "--"+boundary); n != 3 {
		t.Errorf("Expected 3 boundary markers, got %d", n)
	}
	if !strings.HasSuffix(strings.TrimRight(raw, "\r\n"), "--"+boundary+"--") {
		t.Error("Raw message missing closing boundary")
	}
}
