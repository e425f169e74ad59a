package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"epoxyworld-backend/internal/models"
)

// BuildSubmissionPDF renders a contact or custom order submission as a PDF
// summary for offline reference, mirroring the layout of the notification
// email.
func BuildSubmissionPDF(submission models.ContactSubmission, receivedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	title := "Contact Form Submission"
	if submission.IsCustomOrder() {
		title = "Custom Order Request"
	}

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(22, 163, 74)
	pdf.CellFormat(0, 10, "PHEpoxyWorld", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "3D Printing & Epoxy Art", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "Received: "+receivedAt.Format("Monday, January 2, 2006 3:04 PM MST"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	drawDivider(pdf)
	pdf.Ln(4)

	addSection(pdf, "CONTACT INFORMATION")
	addField(pdf, "Name", submission.Name)
	addField(pdf, "Email", submission.Email)
	if submission.Phone != "" {
		addField(pdf, "Phone", submission.Phone)
	}
	pdf.Ln(3)

	if submission.IsCustomOrder() {
		addSection(pdf, "ORDER DETAILS")
		if submission.Category != "" {
			addField(pdf, "Category", submission.Category)
		}
		if submission.FabricationType != "" {
			addField(pdf, "Fabrication Type", submission.FabricationType)
		}
		if size := submission.SizeText(); size != "" {
			addField(pdf, "Size", size)
		}
		if submission.Quantity != "" {
			addField(pdf, "Quantity", submission.Quantity.String())
		}
		if submission.TargetDate != "" {
			addField(pdf, "Target Completion", submission.TargetDate)
		}
		pdf.Ln(3)

		if submission.MaterialPreference != "" || submission.ColorPreferences != "" || submission.BudgetRange != "" {
			addSection(pdf, "PREFERENCES")
			if submission.MaterialPreference != "" {
				addField(pdf, "Material Preference", submission.MaterialPreference)
			}
			if submission.ColorPreferences != "" {
				addField(pdf, "Color Preferences", submission.ColorPreferences)
			}
			if submission.BudgetRange != "" {
				addField(pdf, "Budget Range", submission.BudgetRange)
			}
			pdf.Ln(3)
		}
	} else if submission.Subject != "" {
		addSection(pdf, "SUBJECT")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(55, 65, 81)
		pdf.MultiCell(0, 5, submission.Subject, "", "L", false)
		pdf.Ln(3)
	}

	messageTitle := "MESSAGE"
	if submission.IsCustomOrder() {
		messageTitle = "PROJECT DESCRIPTION"
	}
	addSection(pdf, messageTitle)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, 5, submission.Body(), "", "L", false)
	pdf.Ln(3)

	if submission.FileNames != "" {
		addSection(pdf, "ATTACHMENTS")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(107, 114, 128)
		pdf.MultiCell(0, 5, submission.FileNames, "", "L", false)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(239, 68, 68)
		pdf.MultiCell(0, 4, "Note: Files cannot be attached to email. Please contact customer to arrange file transfer.", "", "L", false)
	}

	// Footer
	pdf.Ln(8)
	drawDivider(pdf)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(156, 163, 175)
	pdf.CellFormat(0, 4, "PHEpoxyWorld - Custom 3D Printing & Epoxy Art", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "Fabrication Studio Lane, Atlanta, GA", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "PHEpros@proton.me", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render submission PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func drawDivider(pdf *fpdf.Fpdf) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	y := pdf.GetY()
	pdf.SetDrawColor(209, 213, 219)
	pdf.Line(left, y, pageWidth-right, y)
}

func addSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "BU", 10)
	pdf.SetTextColor(22, 163, 74)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func addField(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		value = "Not provided"
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(pdf.GetStringWidth(label+": ")+1, 5, label+":", "", 0, "L", false, 0, "")
	pdf.SetTextColor(31, 41, 55)
	pdf.MultiCell(0, 5, value, "", "L", false)
	pdf.Ln(1)
}
