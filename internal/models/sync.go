package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Sync run status values.
const (
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// SyncRun records one execution of the catalog sync job.
type SyncRun struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"startedAt"`
	CompletedAt   time.Time `json:"completedAt"`
	DurationMS    int64     `json:"durationMs"`
	Status        string    `json:"status"`
	DryRun        bool      `json:"dryRun"`
	ProductFilter string    `json:"productFilter,omitempty"`

	ItemsFetched  int `json:"itemsFetched"`
	ItemsSynced   int `json:"itemsSynced"`
	ItemsSkipped  int `json:"itemsSkipped"`
	TotalProducts int `json:"totalProducts"`

	ProductsAdded   int `json:"productsAdded"`
	ProductsRemoved int `json:"productsRemoved"`
	ProductsUpdated int `json:"productsUpdated"`

	Errors []string `json:"errors,omitempty"`
}

// MarkCompleted finalizes the run record after a successful sync.
func (r *SyncRun) MarkCompleted(completedAt time.Time) {
	r.CompletedAt = completedAt
	r.DurationMS = completedAt.Sub(r.StartedAt).Milliseconds()
	r.Status = SyncStatusCompleted
}

// MarkFailed finalizes the run record after a fatal error.
func (r *SyncRun) MarkFailed(err error, completedAt time.Time) {
	r.CompletedAt = completedAt
	r.DurationMS = completedAt.Sub(r.StartedAt).Milliseconds()
	r.Status = SyncStatusFailed
	r.Errors = append(r.Errors, err.Error())
}

// GenerateSyncRunID creates a unique ID for a sync run
func GenerateSyncRunID(timestamp time.Time) string {
	input := fmt.Sprintf("sync|%d", timestamp.UnixNano())
	hash := sha256.Sum256([]byte(input))
	return "sync_" + hex.EncodeToString(hash[:])[:8]
}
