package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/brightctl/brightctl/internal/domain"
)

// ChangeRepository implements domain.ChangeRepository with SQLite
type ChangeRepository struct {
	db *sql.DB
}

// NewChangeRepository creates a SQLite-backed journal
func NewChangeRepository(dbPath string) (*ChangeRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create table if not exists
	schema := `
	CREATE TABLE IF NOT EXISTS brightness_changes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		level INTEGER NOT NULL,
		percent REAL NOT NULL,
		clamped INTEGER NOT NULL,
		timestamp DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_changes_timestamp ON brightness_changes(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &ChangeRepository{db: db}, nil
}

// SaveChange stores a change in SQLite
func (r *ChangeRepository) SaveChange(ctx context.Context, change *domain.BrightnessChange) error {
	query := `INSERT INTO brightness_changes (level, percent, clamped, timestamp) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, change.Level, change.Percent, change.Clamped, change.Timestamp.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to insert change: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}

	change.ID = id
	return nil
}

// RecentChanges returns up to limit changes, newest first
func (r *ChangeRepository) RecentChanges(ctx context.Context, limit int) ([]*domain.BrightnessChange, error) {
	query := `
		SELECT id, level, percent, clamped, timestamp
		FROM brightness_changes
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes: %w", err)
	}
	defer rows.Close()

	var changes []*domain.BrightnessChange
	for rows.Next() {
		var change domain.BrightnessChange
		var timestamp string

		if err := rows.Scan(&change.ID, &change.Level, &change.Percent, &change.Clamped, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan change: %w", err)
		}

		change.Timestamp, err = time.Parse("2006-01-02 15:04:05", timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}

		changes = append(changes, &change)
	}

	return changes, rows.Err()
}

// DeleteOldChanges removes changes older than specified duration
func (r *ChangeRepository) DeleteOldChanges(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	query := `DELETE FROM brightness_changes WHERE timestamp < ?`

	_, err := r.db.ExecContext(ctx, query, cutoff.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to delete old changes: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *ChangeRepository) Close() error {
	return r.db.Close()
}
