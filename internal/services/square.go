package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"epoxyworld-backend/internal/models"
)

// SquareClient fetches catalog data from the Square Catalog API.
type SquareClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// squareObject is a raw object returned by the Square list-catalog endpoint.
// Only the fields the sync job reads are mapped.
type squareObject struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	ItemData *struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		CategoryID  string   `json:"category_id"`
		ImageIDs    []string `json:"image_ids"`
		Variations  []struct {
			ID                string `json:"id"`
			ItemVariationData *struct {
				Name       string `json:"name"`
				PriceMoney *struct {
					Amount   int64  `json:"amount"`
					Currency string `json:"currency"`
				} `json:"price_money"`
			} `json:"item_variation_data"`
		} `json:"variations"`
	} `json:"item_data"`
	CategoryData *struct {
		Name string `json:"name"`
	} `json:"category_data"`
	ImageData *struct {
		URL string `json:"url"`
	} `json:"image_data"`
}

// listCatalogResponse is one page of the list-catalog endpoint.
type listCatalogResponse struct {
	Objects []squareObject `json:"objects"`
	Cursor  string         `json:"cursor"`
}

// NewSquareClient creates a Square API client for the given endpoint and
// access token.
func NewSquareClient(baseURL, accessToken string) *SquareClient {
	return &SquareClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// listCatalogObjects retrieves all catalog objects of the given types,
// following cursor pagination until the API returns no cursor. Any page
// failure aborts the whole listing.
func (c *SquareClient) listCatalogObjects(ctx context.Context, types string) ([]squareObject, error) {
	var objects []squareObject
	cursor := ""

	for {
		page, err := c.listCatalogPage(ctx, types, cursor)
		if err != nil {
			return nil, err
		}

		objects = append(objects, page.Objects...)

		if page.Cursor == "" {
			return objects, nil
		}
		cursor = page.Cursor
	}
}

// listCatalogPage requests a single page from the list-catalog endpoint.
func (c *SquareClient) listCatalogPage(ctx context.Context, types, cursor string) (*listCatalogResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/catalog/list", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	q := url.Values{}
	q.Set("types", types)
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog objects: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Square API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var page listCatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return &page, nil
}

// FetchCatalogItems retrieves every sellable item from the Square catalog,
// enriched with its resolved category name and primary image URL. The
// category and image lookups are built from full listings of their own and
// discarded after the run.
func (c *SquareClient) FetchCatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	itemObjects, err := c.listCatalogObjects(ctx, "ITEM")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog items: %w", err)
	}

	var items []models.CatalogItem
	for _, obj := range itemObjects {
		if obj.Type != "ITEM" || obj.ItemData == nil {
			continue
		}

		item := models.CatalogItem{
			ID:          obj.ID,
			Name:        obj.ItemData.Name,
			Description: obj.ItemData.Description,
			CategoryID:  obj.ItemData.CategoryID,
			ImageIDs:    obj.ItemData.ImageIDs,
		}

		for _, v := range obj.ItemData.Variations {
			variation := models.Variation{ID: v.ID}
			if v.ItemVariationData != nil {
				variation.Name = v.ItemVariationData.Name
				if v.ItemVariationData.PriceMoney != nil {
					variation.PriceCents = v.ItemVariationData.PriceMoney.Amount
				}
			}
			item.Variations = append(item.Variations, variation)
		}

		items = append(items, item)
	}

	if err := c.enrichItems(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// enrichItems resolves each item's category name and primary image URL
// through full CATEGORY and IMAGE listings.
func (c *SquareClient) enrichItems(ctx context.Context, items []models.CatalogItem) error {
	categoryObjects, err := c.listCatalogObjects(ctx, "CATEGORY")
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make(map[string]string)
	for _, obj := range categoryObjects {
		if obj.Type == "CATEGORY" && obj.CategoryData != nil {
			categories[obj.ID] = obj.CategoryData.Name
		}
	}

	imageObjects, err := c.listCatalogObjects(ctx, "IMAGE")
	if err != nil {
		return fmt.Errorf("failed to fetch images: %w", err)
	}

	images := make(map[string]string)
	for _, obj := range imageObjects {
		if obj.Type == "IMAGE" && obj.ImageData != nil {
			images[obj.ID] = obj.ImageData.URL
		}
	}

	for i := range items {
		name, ok := categories[items[i].CategoryID]
		if !ok {
			name = models.UncategorizedName
		}
		items[i].CategoryName = name

		if len(items[i].ImageIDs) > 0 {
			items[i].ImageURL = images[items[i].ImageIDs[0]]
		}
	}

	return nil
}
