package models

import (
	"errors"
	"testing"
	"time"
)

func TestSyncRunLifecycle(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	run := SyncRun{ID: GenerateSyncRunID(started), StartedAt: started}
	run.MarkCompleted(started.Add(90 * time.Second))

	if run.Status != SyncStatusCompleted {
		t.Errorf("Expected status %q, got %q", SyncStatusCompleted, run.Status)
	}
	if run.DurationMS != 90000 {
		t.Errorf("Expected 90000ms duration, got %d", run.DurationMS)
	}

	failed := SyncRun{StartedAt: started}
	failed.MarkFailed(errors.New("catalog fetch failed"), started.Add(time.Second))

	if failed.Status != SyncStatusFailed {
		t.Errorf("Expected status %q, got %q", SyncStatusFailed, failed.Status)
	}
	if len(failed.Errors) != 1 || failed.Errors[0] != "catalog fetch failed" {
		t.Errorf("Expected the fatal error recorded, got %v", failed.Errors)
	}
}

func TestGenerateSyncRunID(t *testing.T) {
	now := time.Now()
	id := GenerateSyncRunID(now)

	if len(id) != len("sync_")+8 {
		t.Errorf("Unexpected run ID length: %q", id)
	}
	if id == GenerateSyncRunID(now.Add(time.Nanosecond)) {
		t.Error("Expected distinct IDs for distinct timestamps")
	}
}
