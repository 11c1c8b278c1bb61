package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brightctl/brightctl/internal/domain"
)

// ChangeRepository implements domain.ChangeRepository with in-memory storage
// This is perfect for tests - no database setup needed
type ChangeRepository struct {
	mu      sync.RWMutex
	changes map[int64]*domain.BrightnessChange
	nextID  int64
}

// NewChangeRepository creates an empty in-memory journal
func NewChangeRepository() *ChangeRepository {
	return &ChangeRepository{
		changes: make(map[int64]*domain.BrightnessChange),
		nextID:  1,
	}
}

// SaveChange stores a change in memory
func (r *ChangeRepository) SaveChange(ctx context.Context, change *domain.BrightnessChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Assign ID if not set
	if change.ID == 0 {
		change.ID = r.nextID
		r.nextID++
	}

	r.changes[change.ID] = change
	return nil
}

// RecentChanges returns up to limit changes, newest first
func (r *ChangeRepository) RecentChanges(ctx context.Context, limit int) ([]*domain.BrightnessChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.BrightnessChange, 0, len(r.changes))
	for _, change := range r.changes {
		results = append(results, change)
	}

	// Newest first; IDs break timestamp ties
	sort.Slice(results, func(i, j int) bool {
		if results[i].Timestamp.Equal(results[j].Timestamp) {
			return results[i].ID > results[j].ID
		}
		return results[i].Timestamp.After(results[j].Timestamp)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteOldChanges removes changes older than specified duration
func (r *ChangeRepository) DeleteOldChanges(ctx context.Context, olderThan time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	for id, change := range r.changes {
		if change.Timestamp.Before(cutoff) {
			delete(r.changes, id)
		}
	}

	return nil
}

// Close is a no-op for the in-memory journal
func (r *ChangeRepository) Close() error {
	return nil
}
