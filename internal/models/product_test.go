package models

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Crystal Dragon", "crystal-dragon"},
		{"trademark and parens", "Crystal Dragon™ (Limited)", "crystal-dragon-limited"},
		{"leading and trailing junk", "  --Epoxy Art!  ", "epoxy-art"},
		{"already clean", "phoenix", "phoenix"},
		{"numbers kept", "Dragon 2.0", "dragon-2-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("dragon ", 20)
	slug := Slugify(long)

	if len(slug) > 50 {
		t.Errorf("Expected slug length <= 50, got %d", len(slug))
	}
	if strings.Contains(slug, " ") {
		t.Errorf("Expected no spaces in slug, got %q", slug)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}

	got := Truncate(strings.Repeat("a", 150), 100)
	if len(got) != 103 {
		t.Errorf("Expected 103 characters (100 + ellipsis), got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected truncated string to end with ellipsis, got %q", got)
	}
}

func TestValidateCategory(t *testing.T) {
	for _, valid := range []string{CategoryFantasy, CategoryAnimals, CategoryResinArt, CategoryFunctional, CategorySeasonal, CategoryFigurines, CategoryCustom} {
		if !ValidateCategory(valid) {
			t.Errorf("Expected %q to be a valid category", valid)
		}
	}

	if ValidateCategory("jewelry") {
		t.Error("Expected unknown category to be invalid")
	}
}

func TestValidateSizeAndMaterial(t *testing.T) {
	if !ValidateSize(Size9In) {
		t.Errorf("Expected %q to be a valid size", Size9In)
	}
	if ValidateSize("24in") {
		t.Error("Expected unknown size to be invalid")
	}

	if !ValidateMaterial(MaterialEpoxyGlow) {
		t.Errorf("Expected %q to be a valid material", MaterialEpoxyGlow)
	}
	if ValidateMaterial("resin") {
		t.Error("Expected unknown material to be invalid")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a@b.co"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "no@tld", "@missing.com", "two@@ats.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}
