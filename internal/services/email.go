package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"epoxyworld-backend/internal/config"
	"epoxyworld-backend/internal/models"
)

// EmailService sends transactional email through SES.
type EmailService struct {
	client *sesv2.Client
	cfg    config.EmailConfig
}

// NewEmailService creates an email service with the given SES client and
// address configuration.
func NewEmailService(client *sesv2.Client, cfg config.EmailConfig) *EmailService {
	return &EmailService{
		client: client,
		cfg:    cfg,
	}
}

// SendSubmissionEmail sends the internal notification for a contact or
// custom order submission: an HTML body with the submission PDF attached,
// Reply-To set to the submitter so staff can answer directly.
func (e *EmailService) SendSubmissionEmail(ctx context.Context, submission models.ContactSubmission, pdfData []byte, receivedAt time.Time) error {
	htmlBody, err := renderSubmissionHTML(submission, e.cfg, receivedAt)
	if err != nil {
		return err
	}

	subject := submission.Subject
	if subject == "" {
		subject = "Contact Form Submission"
	}
	subject = subject + " - " + submission.Name

	formKind := "Contact"
	if submission.IsCustomOrder() {
		formKind = "CustomOrder"
	}
	pdfFilename := fmt.Sprintf("PHEpoxyWorld-%s-%s.pdf", formKind, receivedAt.Format("2006-01-02"))

	raw := buildRawMessage(rawMessageParams{
		From:        fmt.Sprintf("PHEpoxyWorld <%s>", e.cfg.FromEmail),
		To:          e.cfg.ToEmail,
		ReplyTo:     submission.Email,
		Subject:     subject,
		HTMLBody:    htmlBody,
		Attachment:  pdfData,
		AttachName:  pdfFilename,
		ContentType: "application/pdf",
	})

	_, err = e.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &sestypes.EmailContent{
			Raw: &sestypes.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send submission email: %w", err)
	}

	return nil
}

// SendAutoReply sends the confirmation email to the submitter.
func (e *EmailService) SendAutoReply(ctx context.Context, submission models.ContactSubmission) error {
	subject := "Thank you for contacting PHEpoxyWorld"
	if submission.IsCustomOrder() {
		subject = "Thank you for your custom order request!"
	}

	htmlBody, err := renderAutoReplyHTML(submission, e.cfg)
	if err != nil {
		return err
	}

	if err := e.sendSimple(ctx, submission.Email, subject, htmlBody); err != nil {
		return fmt.Errorf("failed to send auto-reply: %w", err)
	}

	return nil
}

// SendWelcomeEmail sends the newsletter welcome message to a new subscriber.
func (e *EmailService) SendWelcomeEmail(ctx context.Context, email string) error {
	htmlBody, err := renderWelcomeHTML(e.cfg)
	if err != nil {
		return err
	}

	if err := e.sendSimple(ctx, email, "Welcome to PHEpoxyWorld!", htmlBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

// sendSimple sends an HTML email from the configured sender.
func (e *EmailService) sendSimple(ctx context.Context, to, subject, htmlBody string) error {
	_, err := e.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(e.cfg.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		ReplyToAddresses: []string{e.cfg.ReplyTo},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &sestypes.Body{
					Html: &sestypes.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	return err
}

type rawMessageParams struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	Attachment  []byte
	AttachName  string
	ContentType string
}

// buildRawMessage assembles a multipart MIME message with one HTML part and
// one base64 attachment.
func buildRawMessage(p rawMessageParams) []byte {
	boundary := fmt.Sprintf("----=_Part_%d", time.Now().UnixNano())

	var b strings.Builder
	write := func(lines ...string) {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\r\n")
		}
	}

	write(
		"From: "+p.From,
		"To: "+p.To,
		"Reply-To: "+p.ReplyTo,
		"Subject: "+p.Subject,
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", boundary),
		"",
		"--"+boundary,
		"Content-Type: text/html; charset=UTF-8",
		"Content-Transfer-Encoding: 7bit",
		"",
		p.HTMLBody,
		"",
		"--"+boundary,
		fmt.Sprintf("Content-Type: %s; name=%q", p.ContentType, p.AttachName),
		fmt.Sprintf("Content-Disposition: attachment; filename=%q", p.AttachName),
		"Content-Transfer-Encoding: base64",
		"",
		base64.StdEncoding.EncodeToString(p.Attachment),
		"",
		"--"+boundary+"--",
	)

	return []byte(b.String())
}

var submissionTemplate = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #1F2937; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #16A34A 0%, #15803D 100%); color: white; padding: 30px 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">PHEpoxyWorld</h1>
    <p style="margin: 5px 0 0 0;">3D Printing &amp; Epoxy Art</p>
    <div style="display: inline-block; background-color: #FFC857; color: #1F2937; padding: 4px 12px; border-radius: 12px; font-size: 11px; font-weight: 600; margin-top: 10px;">{{if .IsCustomOrder}}CUSTOM ORDER REQUEST{{else}}CONTACT FORM{{end}}</div>
  </div>
  <div style="background: white; padding: 30px 20px; border: 1px solid #E5E7EB;">
    <p style="font-size: 11px; color: #9CA3AF; text-align: center;">Received: {{.ReceivedAt}}</p>

    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">Contact Information</h3>
    <p><strong>Name:</strong> {{.Submission.Name}}<br>
       <strong>Email:</strong> <a href="mailto:{{.Submission.Email}}">{{.Submission.Email}}</a>
       {{if .Submission.Phone}}<br><strong>Phone:</strong> {{.Submission.Phone}}{{end}}</p>

    {{if .IsCustomOrder}}
    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">Order Details</h3>
    <p>
      {{if .Submission.Category}}<strong>Category:</strong> {{.Submission.Category}}<br>{{end}}
      {{if .Submission.FabricationType}}<strong>Fabrication Type:</strong> {{.Submission.FabricationType}}<br>{{end}}
      {{if .SizeText}}<strong>Size:</strong> {{.SizeText}}<br>{{end}}
      {{if .Submission.Quantity}}<strong>Quantity:</strong> {{.Submission.Quantity}}<br>{{end}}
      {{if .Submission.TargetDate}}<strong>Target Completion:</strong> {{.Submission.TargetDate}}{{end}}
    </p>
    {{if or .Submission.MaterialPreference .Submission.ColorPreferences .Submission.BudgetRange}}
    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">Preferences</h3>
    <p>
      {{if .Submission.MaterialPreference}}<strong>Material Preference:</strong> {{.Submission.MaterialPreference}}<br>{{end}}
      {{if .Submission.ColorPreferences}}<strong>Color Preferences:</strong> {{.Submission.ColorPreferences}}<br>{{end}}
      {{if .Submission.BudgetRange}}<strong>Budget Range:</strong> {{.Submission.BudgetRange}}{{end}}
    </p>
    {{end}}
    {{else if .Submission.Subject}}
    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">Subject</h3>
    <p>{{.Submission.Subject}}</p>
    {{end}}

    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">{{if .IsCustomOrder}}Project Description{{else}}Message{{end}}</h3>
    <div style="background-color: #F9FAFB; border-left: 4px solid #16A34A; padding: 15px; border-radius: 4px;">{{.Body}}</div>

    {{if .Submission.FileNames}}
    <h3 style="color: #16A34A; border-bottom: 2px solid #16A34A; padding-bottom: 5px;">Attachments</h3>
    <p>{{.Submission.FileNames}}</p>
    <div style="background-color: #FEF2F2; border-left: 4px solid #EF4444; padding: 12px; font-size: 13px; color: #991B1B; border-radius: 4px;">
      Note: Files cannot be attached to email. Please contact customer to arrange file transfer.
    </div>
    {{end}}
  </div>
  <div style="background-color: #F9FAFB; padding: 20px; text-align: center; font-size: 12px; color: #6B7280; border-top: 1px solid #E5E7EB;">
    <p><strong>PHEpoxyWorld</strong> - Custom 3D Printing &amp; Epoxy Art</p>
    <p>Fabrication Studio Lane, Atlanta, GA</p>
    <p>A detailed PDF summary is attached to this email for offline reference.</p>
  </div>
</body>
</html>`))

var autoReplyTemplate = template.Must(template.New("autoreply").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #1F2937; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #16A34A 0%, #15803D 100%); color: white; padding: 30px 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">PHEpoxyWorld</h1>
    <p style="margin: 5px 0 0 0;">3D Printing &amp; Epoxy Art</p>
  </div>
  <div style="background: white; padding: 30px 20px; border: 1px solid #E5E7EB; border-top: none; border-radius: 0 0 8px 8px;">
    <p>Hi {{.Name}},</p>
    {{if .IsCustomOrder}}
    <p>Thank you for submitting your custom order request! We're excited to bring your vision to life.</p>
    <p>We've received all the details of your project and will review them carefully. You can expect to hear back from us within 24-48 hours with:</p>
    <ul>
      <li>A detailed quote based on your specifications</li>
      <li>Estimated timeline for completion</li>
      <li>Any questions we have about your design</li>
      <li>Options for materials and finishes</li>
    </ul>
    {{else}}
    <p>Thank you for reaching out to PHEpoxyWorld!</p>
    <p>We've received your message and will get back to you as soon as possible, typically within 24 hours.</p>
    {{end}}
    <p>In the meantime, feel free to browse our full catalog at <a href="{{.SiteURL}}">our website</a> and check out our gallery of completed projects.</p>
    <p>If you have any urgent questions, don't hesitate to reply to this email.</p>
    <p>Best regards,<br><strong>The PHEpoxyWorld Team</strong></p>
  </div>
  <div style="text-align: center; padding: 20px; font-size: 12px; color: #6B7280;">
    <p><strong>PHEpoxyWorld</strong> - Custom 3D Printing &amp; Epoxy Art</p>
    <p>Fabrication Studio Lane, Atlanta, GA</p>
  </div>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #1F2937; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #16A34A 0%, #15803D 100%); color: white; padding: 40px 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 32px;">Welcome to PHEpoxyWorld!</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px;">Where 3D Printing Meets Artistry</p>
  </div>
  <div style="background: white; padding: 30px 20px; border: 1px solid #E5E7EB;">
    <p>Thanks for joining our community of makers, collectors, and art enthusiasts!</p>
    <p>As a newsletter subscriber, you'll be the first to know about:</p>
    <div style="background: #F9FAFB; padding: 15px; margin: 15px 0; border-left: 4px solid #16A34A; border-radius: 4px;">
      <strong>New Product Launches</strong><br>
      Get exclusive early access to our latest 3D printed sculptures and epoxy art pieces.
    </div>
    <div style="background: #F9FAFB; padding: 15px; margin: 15px 0; border-left: 4px solid #16A34A; border-radius: 4px;">
      <strong>Special Offers &amp; Discounts</strong><br>
      Subscriber-only promotions and seasonal sales you won't find anywhere else.
    </div>
    <div style="background: #F9FAFB; padding: 15px; margin: 15px 0; border-left: 4px solid #16A34A; border-radius: 4px;">
      <strong>Behind-the-Scenes Content</strong><br>
      Learn about our fabrication process, material selection, and design techniques.
    </div>
    <div style="text-align: center; padding: 20px 0;">
      <a href="{{.SiteURL}}/products" style="display: inline-block; background: #16A34A; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; font-weight: 600;">Browse Our Catalog</a>
    </div>
    <p>Want to create something unique? Check out our <a href="{{.SiteURL}}/custom-order" style="color: #16A34A; font-weight: 600;">Custom Orders page</a> to bring your vision to life!</p>
  </div>
  <div style="text-align: center; padding: 20px; font-size: 12px; color: #6B7280; background: #F9FAFB; border-radius: 0 0 8px 8px;">
    <p><strong>PHEpoxyWorld</strong> - Custom 3D Printing &amp; Epoxy Art</p>
    <p>Fabrication Studio Lane, Atlanta, GA</p>
    <p>You're receiving this because you subscribed to our newsletter.</p>
  </div>
</body>
</html>`))

func renderSubmissionHTML(submission models.ContactSubmission, cfg config.EmailConfig, receivedAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := submissionTemplate.Execute(&buf, struct {
		Submission    models.ContactSubmission
		IsCustomOrder bool
		SizeText      string
		Body          string
		ReceivedAt    string
		SiteURL       string
	}{
		Submission:    submission,
		IsCustomOrder: submission.IsCustomOrder(),
		SizeText:      submission.SizeText(),
		Body:          submission.Body(),
		ReceivedAt:    receivedAt.Format("Monday, January 2, 2006 3:04 PM MST"),
		SiteURL:       cfg.SiteURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render submission email: %w", err)
	}
	return buf.String(), nil
}

func renderAutoReplyHTML(submission models.ContactSubmission, cfg config.EmailConfig) (string, error) {
	var buf bytes.Buffer
	err := autoReplyTemplate.Execute(&buf, struct {
		Name          string
		IsCustomOrder bool
		SiteURL       string
	}{
		Name:          submission.Name,
		IsCustomOrder: submission.IsCustomOrder(),
		SiteURL:       cfg.SiteURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render auto-reply email: %w", err)
	}
	return buf.String(), nil
}

func renderWelcomeHTML(cfg config.EmailConfig) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct {
		SiteURL string
	}{SiteURL: cfg.SiteURL})
	if err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return buf.String(), nil
}
