package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"epoxyworld-backend/internal/models"
)

// ProductStore persists the website product list as a JSON document and
// reconciles freshly synced batches with the previous file contents.
type ProductStore struct {
	path string
}

// productsFile is the on-disk document: a generation header plus the array.
type productsFile struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Products    []models.Product `json:"products"`
}

// ProductChange describes one updated product in a ChangeSet.
type ProductChange struct {
	ID           string
	Name         string
	OldBasePrice int
	NewBasePrice int
}

// ChangeSet is the informational diff between the old and new product lists.
type ChangeSet struct {
	Added   []models.Product
	Removed []models.Product
	Updated []ProductChange
}

// Empty reports whether the diff found no changes.
func (c ChangeSet) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Updated) == 0
}

// NewProductStore creates a store over the given products file path.
func NewProductStore(path string) *ProductStore {
	return &ProductStore{path: path}
}

// Path returns the products file path.
func (s *ProductStore) Path() string {
	return s.path
}

// BackupPath returns the sibling path the previous file is copied to before
// a write.
func (s *ProductStore) BackupPath() string {
	ext := filepath.Ext(s.path)
	return strings.TrimSuffix(s.path, ext) + ".backup" + ext
}

// Load reads the persisted product list. A missing file yields an empty list.
func (s *ProductStore) Load() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var file productsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}

	return file.Products, nil
}

// Merge combines a freshly synced batch with the previously persisted list:
// synced products first, then every previous record that has no Square
// reference or whose Square reference is absent from the new batch. Records
// are never deleted by a sync run.
func Merge(existing, synced []models.Product) []models.Product {
	syncedIDs := make(map[string]bool)
	for _, p := range synced {
		if p.SquareID != "" {
			syncedIDs[p.SquareID] = true
		}
	}

	merged := make([]models.Product, 0, len(synced)+len(existing))
	merged = append(merged, synced...)

	for _, p := range existing {
		if p.SquareID == "" || !syncedIDs[p.SquareID] {
			merged = append(merged, p)
		}
	}

	return merged
}

// Diff computes the added, removed, and updated products between two lists,
// keyed by product ID. A product counts as updated when its name, base
// price, or size list differs. The result is informational only.
func Diff(oldProducts, newProducts []models.Product) ChangeSet {
	oldByID := make(map[string]models.Product, len(oldProducts))
	for _, p := range oldProducts {
		oldByID[p.ID] = p
	}
	newByID := make(map[string]models.Product, len(newProducts))
	for _, p := range newProducts {
		newByID[p.ID] = p
	}

	var changes ChangeSet

	for _, p := range newProducts {
		old, ok := oldByID[p.ID]
		if !ok {
			changes.Added = append(changes.Added, p)
			continue
		}
		if old.Name != p.Name || old.BasePrice != p.BasePrice || !equalStrings(old.AvailableSizes, p.AvailableSizes) {
			changes.Updated = append(changes.Updated, ProductChange{
				ID:           p.ID,
				Name:         p.Name,
				OldBasePrice: old.BasePrice,
				NewBasePrice: p.BasePrice,
			})
		}
	}

	for _, p := range oldProducts {
		if _, ok := newByID[p.ID]; !ok {
			changes.Removed = append(changes.Removed, p)
		}
	}

	return changes
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Save backs up the current file to the sibling backup path, then writes the
// regenerated product list. A missing prior file is not an error.
func (s *ProductStore) Save(products []models.Product) error {
	if err := s.backup(); err != nil {
		return err
	}

	file := productsFile{
		GeneratedAt: time.Now().UTC(),
		Products:    products,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write products file: %w", err)
	}

	return nil
}

// backup copies the current products file to the backup path.
func (s *ProductStore) backup() error {
	src, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open products file for backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(s.BackupPath())
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return nil
}
