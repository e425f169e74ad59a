package models

import (
	"encoding/json"
	"strings"
)

// FlexString accepts either a JSON string or number; the contact form sends
// quantity and size fields in both shapes depending on the input control.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// ContactSubmission is the JSON body posted by the contact and custom order
// forms. Custom-order fields are empty on plain contact submissions.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`

	// Custom order fields
	Category           string     `json:"category,omitempty"`
	FabricationType    string     `json:"fabricationType,omitempty"`
	Size               FlexString `json:"size,omitempty"`
	SizeLength         FlexString `json:"sizeLength,omitempty"`
	SizeUnit           string     `json:"sizeUnit,omitempty"`
	Quantity           FlexString `json:"quantity,omitempty"`
	TargetDate         string     `json:"targetDate,omitempty"`
	MaterialPreference string     `json:"materialPreference,omitempty"`
	ColorPreferences   string     `json:"colorPreferences,omitempty"`
	BudgetRange        string     `json:"budgetRange,omitempty"`
	Description        string     `json:"description,omitempty"`
	FileNames          string     `json:"fileNames,omitempty"`
}

// IsCustomOrder reports whether the submission came from the custom order
// form rather than the plain contact form.
func (c ContactSubmission) IsCustomOrder() bool {
	return strings.Contains(c.Subject, "Custom Order Request")
}

// Body returns the free-text message, falling back to the custom order
// description.
func (c ContactSubmission) Body() string {
	if c.Message != "" {
		return c.Message
	}
	if c.Description != "" {
		return c.Description
	}
	return "No message provided"
}

// SizeText formats the requested size from either the preset size field or
// the length/unit pair.
func (c ContactSubmission) SizeText() string {
	if c.Size != "" {
		return c.Size.String()
	}
	if c.SizeLength != "" {
		unit := c.SizeUnit
		if unit == "" {
			unit = "inches"
		}
		return c.SizeLength.String() + " " + unit
	}
	return ""
}
