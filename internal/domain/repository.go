package domain

import (
	"context"
	"time"
)

// ChangeRepository defines operations for the brightness change journal
// This is a PORT - adapters (SQLite, Memory) will implement it
type ChangeRepository interface {
	// SaveChange persists a change
	SaveChange(ctx context.Context, change *BrightnessChange) error

	// RecentChanges retrieves up to limit changes, newest first
	RecentChanges(ctx context.Context, limit int) ([]*BrightnessChange, error)

	// DeleteOldChanges removes changes older than specified duration
	DeleteOldChanges(ctx context.Context, olderThan time.Duration) error

	// Close releases any resources
	Close() error
}
