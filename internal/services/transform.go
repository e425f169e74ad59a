package services

import (
	"math"
	"regexp"
	"time"

	"epoxyworld-backend/internal/models"
)

// categoryMap translates Square category names to website category tags.
// Unmapped names fall back to the figurines tag.
var categoryMap = map[string]string{
	"Fantasy & Sci-Fi":       models.CategoryFantasy,
	"Animals & Creatures":    models.CategoryAnimals,
	"Resin Art":              models.CategoryResinArt,
	"Functional Parts":       models.CategoryFunctional,
	"Seasonal":               models.CategorySeasonal,
	"Figurines & Sculptures": models.CategoryFigurines,
	"Custom Orders":          models.CategoryCustom,
}

// patternTag pairs a variation-name matcher with the tag it yields. Tables
// are evaluated in declaration order; the first match wins.
type patternTag struct {
	pattern *regexp.Regexp
	tag     string
}

var sizePatterns = []patternTag{
	{regexp.MustCompile(`(?i)3\s*(?:in|inch)`), models.Size3In},
	{regexp.MustCompile(`(?i)6\s*(?:in|inch)`), models.Size6In},
	{regexp.MustCompile(`(?i)9\s*(?:in|inch)`), models.Size9In},
	{regexp.MustCompile(`(?i)12\s*(?:in|inch)`), models.Size12In},
	{regexp.MustCompile(`(?i)18\s*(?:in|inch)`), models.Size18In},
	{regexp.MustCompile(`(?i)1\.5\s*(?:ft|feet)`), models.Size1_5Ft},
	{regexp.MustCompile(`(?i)2\s*(?:ft|feet)`), models.Size2Ft},
	{regexp.MustCompile(`(?i)life\s*size`), models.SizeLifeSize},
}

var materialPatterns = []patternTag{
	{regexp.MustCompile(`(?i)PLA Standard`), models.MaterialPLA},
	{regexp.MustCompile(`(?i)PLA Silk`), models.MaterialPLASilk},
	{regexp.MustCompile(`(?i)PLA Matte`), models.MaterialPLAMatte},
	{regexp.MustCompile(`(?i)ABS`), models.MaterialABS},
	{regexp.MustCompile(`(?i)PETG`), models.MaterialPETG},
	{regexp.MustCompile(`(?i)TPU`), models.MaterialTPU},
	{regexp.MustCompile(`(?i)Nylon`), models.MaterialNylon},
	{regexp.MustCompile(`(?i)Carbon Fiber`), models.MaterialCarbonFiber},
	{regexp.MustCompile(`(?i)Epoxy Clear`), models.MaterialEpoxyClear},
	{regexp.MustCompile(`(?i)Epoxy Colored`), models.MaterialEpoxyColored},
	{regexp.MustCompile(`(?i)Epoxy Glow`), models.MaterialEpoxyGlow},
	{regexp.MustCompile(`(?i)Polyurethane`), models.MaterialPolyurethane},
	{regexp.MustCompile(`(?i)Print.*Epoxy`), models.MaterialPrintEpoxy},
	{regexp.MustCompile(`(?i)Embedded`), models.MaterialEmbedded},
}

// VariationSummary is the result of parsing an item's variation list.
type VariationSummary struct {
	Sizes     []string
	Materials []string
	BasePrice int
}

// ParseVariations extracts size and material tags and the base price from an
// item's variations. Each variation contributes at most one size tag and one
// material tag (first matching pattern in each table); tags are collected as
// unique lists in order of first appearance. The base price is the minimum
// positive price across variations, converted from cents to rounded dollars,
// or DefaultBasePrice when no variation has a positive price.
func ParseVariations(variations []models.Variation) VariationSummary {
	var sizes, materials []string
	seenSizes := make(map[string]bool)
	seenMaterials := make(map[string]bool)
	var minPrice int64 = -1

	for _, variation := range variations {
		if variation.PriceCents > 0 && (minPrice < 0 || variation.PriceCents < minPrice) {
			minPrice = variation.PriceCents
		}

		for _, pt := range sizePatterns {
			if pt.pattern.MatchString(variation.Name) {
				if !seenSizes[pt.tag] {
					seenSizes[pt.tag] = true
					sizes = append(sizes, pt.tag)
				}
				break
			}
		}

		for _, pt := range materialPatterns {
			if pt.pattern.MatchString(variation.Name) {
				if !seenMaterials[pt.tag] {
					seenMaterials[pt.tag] = true
					materials = append(materials, pt.tag)
				}
				break
			}
		}
	}

	basePrice := models.DefaultBasePrice
	if minPrice > 0 {
		basePrice = int(math.Round(float64(minPrice) / 100))
	}

	return VariationSummary{
		Sizes:     sizes,
		Materials: materials,
		BasePrice: basePrice,
	}
}

// MapCategory translates a Square category name to a website category tag.
func MapCategory(categoryName string) string {
	if tag, ok := categoryMap[categoryName]; ok {
		return tag
	}
	return models.CategoryFigurines
}

// TransformProduct maps an enriched Square catalog item, plus its previously
// persisted counterpart when one exists, into a website product. Curated
// fields on the existing record survive; derived fields are overwritten.
// imageURL is the freshly uploaded S3 URL, empty when no upload happened.
func TransformProduct(item models.CatalogItem, existing *models.Product, imageURL string, now time.Time) models.Product {
	summary := ParseVariations(item.Variations)
	category := MapCategory(item.CategoryName)

	product := models.Product{
		Name:     item.Name,
		Category: category,

		BasePrice:        summary.BasePrice,
		Description:      item.Description,
		ShortDescription: models.Truncate(item.Description, 100),
		PrintTime:        models.DefaultPrintTime,

		AvailableSizes:     summary.Sizes,
		AvailableMaterials: summary.Materials,

		SquareID:   item.ID,
		SquareLink: "https://square.link/u/" + item.ID,

		ImageURL: imageURL,
		Colors:   []string{"Natural", "Custom"},

		CustomizationRequired: category == models.CategoryCustom,
		LastSyncedAt:          now,
	}

	if existing == nil {
		product.ID = models.Slugify(item.Name)
		return product
	}

	product.ID = existing.ID

	if existing.BasePrice > 0 {
		product.BasePrice = existing.BasePrice
	}
	if existing.Description != "" {
		product.Description = existing.Description
	}
	if existing.ShortDescription != "" {
		product.ShortDescription = existing.ShortDescription
	}
	if existing.PrintTime != "" {
		product.PrintTime = existing.PrintTime
	}
	product.CureTime = existing.CureTime
	product.FinishTime = existing.FinishTime
	product.Featured = existing.Featured
	if len(existing.Colors) > 0 {
		product.Colors = existing.Colors
	}
	if imageURL == "" {
		product.ImageURL = existing.ImageURL
	}

	return product
}

// FindExisting locates the previously persisted counterpart of a catalog
// item. A SquareID match wins; exact name match is consulted only when no
// record carries the item's SquareID.
func FindExisting(products []models.Product, item models.CatalogItem) *models.Product {
	for i := range products {
		if products[i].SquareID != "" && products[i].SquareID == item.ID {
			return &products[i]
		}
	}
	for i := range products {
		if products[i].Name == item.Name {
			return &products[i]
		}
	}
	return nil
}
