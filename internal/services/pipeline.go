package services

import (
	"context"
	"log"
	"strings"
	"time"

	"epoxyworld-backend/internal/models"
)

// ImageUploader uploads a product image and returns its public URL. The S3
// client satisfies it; the sync pipeline depends on nothing else from it.
type ImageUploader interface {
	UploadProductImage(ctx context.Context, imageURL, squareID string) (string, error)
}

// ProcessOptions controls one processing pass over fetched catalog items.
type ProcessOptions struct {
	DryRun bool
	Now    time.Time
}

// ProcessResult is the outcome of a processing pass: the transformed batch
// plus the items that were skipped because their image upload failed.
type ProcessResult struct {
	Products []models.Product
	Skipped  int
	Errors   []string
}

// FilterItems returns the items whose name contains the filter string,
// case-insensitive. An empty filter returns the input unchanged.
func FilterItems(items []models.CatalogItem, filter string) []models.CatalogItem {
	if filter == "" {
		return items
	}

	var filtered []models.CatalogItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ProcessItems transforms fetched catalog items into website products. An
// image upload failure skips that item entirely, so the previously persisted
// record survives the later merge untouched. On dry-run no uploads happen
// and existing images carry through the transform.
func ProcessItems(ctx context.Context, items []models.CatalogItem, existing []models.Product, uploader ImageUploader, opts ProcessOptions) ProcessResult {
	var result ProcessResult

	for _, item := range items {
		log.Printf("  Processing: %s", item.Name)

		prior := FindExisting(existing, item)

		imageURL := ""
		if item.ImageURL != "" {
			if opts.DryRun {
				log.Printf("    (dry-run) Would upload image")
			} else {
				uploaded, err := uploader.UploadProductImage(ctx, item.ImageURL, item.ID)
				if err != nil {
					log.Printf("    Skipping %s, image upload failed: %v", item.Name, err)
					result.Errors = append(result.Errors, item.Name+": "+err.Error())
					result.Skipped++
					continue
				}
				imageURL = uploaded
				log.Printf("    Image uploaded to S3")
			}
		}

		product := TransformProduct(item, prior, imageURL, opts.Now)
		result.Products = append(result.Products, product)
		log.Printf("    Processed with %d sizes, %d materials", len(product.AvailableSizes), len(product.AvailableMaterials))
	}

	return result
}
