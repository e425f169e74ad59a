package models

import (
	"regexp"
	"strings"
	"time"
)

// Website category tags. Square category names are mapped onto these; anything
// unmapped falls back to CategoryFigurines.
const (
	CategoryFantasy    = "fantasy"
	CategoryAnimals    = "animals"
	CategoryResinArt   = "resin-art"
	CategoryFunctional = "functional"
	CategorySeasonal   = "seasonal"
	CategoryFigurines  = "figurines"
	CategoryCustom     = "custom"
)

// Size tags extracted from Square variation names.
const (
	Size3In      = "3in"
	Size6In      = "6in"
	Size9In      = "9in"
	Size12In     = "12in"
	Size18In     = "18in"
	Size1_5Ft    = "1.5ft"
	Size2Ft      = "2ft"
	SizeLifeSize = "life-size"
)

// Material tags extracted from Square variation names.
const (
	MaterialPLA          = "pla"
	MaterialPLASilk      = "pla-silk"
	MaterialPLAMatte     = "pla-matte"
	MaterialABS          = "abs"
	MaterialPETG         = "petg"
	MaterialTPU          = "tpu"
	MaterialNylon        = "nylon"
	MaterialCarbonFiber  = "carbon-fiber"
	MaterialEpoxyClear   = "epoxy-clear"
	MaterialEpoxyColored = "epoxy-colored"
	MaterialEpoxyGlow    = "epoxy-glow"
	MaterialPolyurethane = "polyurethane"
	MaterialPrintEpoxy   = "print-epoxy"
	MaterialEmbedded     = "embedded"
)

// UncategorizedName is the category label used when a Square item's category
// cannot be resolved.
const UncategorizedName = "Uncategorized"

// DefaultBasePrice is the base price (in dollars) assigned when no variation
// carries a positive price.
const DefaultBasePrice = 50

// DefaultPrintTime is the placeholder timing estimate for products without a
// curated one.
const DefaultPrintTime = "Contact for estimate"

// Variation is a priced sub-option of a Square catalog item.
type Variation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// CatalogItem is a sellable item fetched from the Square catalog, enriched
// with its resolved category name and primary image URL.
type CatalogItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CategoryID   string      `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	Variations   []Variation `json:"variations"`
	ImageIDs     []string    `json:"imageIds"`
	ImageURL     string      `json:"imageUrl,omitempty"`
}

// Product is the persisted website product record. Fields marked curated are
// preserved from the previous version across sync runs.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	// BasePrice is in whole dollars; curated once set.
	BasePrice int `json:"basePrice"`

	// Curated text fields.
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	PrintTime        string `json:"printTime"`
	CureTime         string `json:"cureTime,omitempty"`
	FinishTime       string `json:"finishTime,omitempty"`

	Featured bool `json:"featured"`

	// Derived from Square variations; overwritten every sync.
	AvailableSizes     []string `json:"availableSizes"`
	AvailableMaterials []string `json:"availableMaterials"`

	SquareID   string `json:"squareId,omitempty"`
	SquareLink string `json:"squareLink,omitempty"`

	ImageURL string   `json:"imageUrl"`
	Colors   []string `json:"colors"`

	CustomizationRequired bool      `json:"customizationRequired"`
	LastSyncedAt          time.Time `json:"lastSyncedAt"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe local identifier from a display name: lowercase,
// non-alphanumeric runs collapsed to a single hyphen, leading/trailing
// hyphens stripped, truncated to 50 characters.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return slug
}

// Truncate shortens a string to at most n characters, appending "..." when cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ValidateCategory checks if the category tag is part of the fixed vocabulary.
func ValidateCategory(category string) bool {
	validCategories := []string{
		CategoryFantasy,
		CategoryAnimals,
		CategoryResinArt,
		CategoryFunctional,
		CategorySeasonal,
		CategoryFigurines,
		CategoryCustom,
	}

	for _, validCategory := range validCategories {
		if category == validCategory {
			return true
		}
	}
	return false
}

// ValidateSize checks if the size tag is part of the fixed vocabulary.
func ValidateSize(size string) bool {
	validSizes := []string{
		Size3In,
		Size6In,
		Size9In,
		Size12In,
		Size18In,
		Size1_5Ft,
		Size2Ft,
		SizeLifeSize,
	}

	for _, validSize := range validSizes {
		if size == validSize {
			return true
		}
	}
	return false
}

// ValidateMaterial checks if the material tag is part of the fixed vocabulary.
func ValidateMaterial(material string) bool {
	validMaterials := []string{
		MaterialPLA,
		MaterialPLASilk,
		MaterialPLAMatte,
		MaterialABS,
		MaterialPETG,
		MaterialTPU,
		MaterialNylon,
		MaterialCarbonFiber,
		MaterialEpoxyClear,
		MaterialEpoxyColored,
		MaterialEpoxyGlow,
		MaterialPolyurethane,
		MaterialPrintEpoxy,
		MaterialEmbedded,
	}

	for _, validMaterial := range validMaterials {
		if material == validMaterial {
			return true
		}
	}
	return false
}

// IsValidEmail performs basic email validation
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}

	if !strings.Contains(parts[1], ".") {
		return false
	}

	return true
}

// IsValidURL performs basic URL validation
func IsValidURL(url string) bool {
	if url == "" {
		return false
	}

	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
