// Package history records every document load attempt the viewer makes and
// serves the most recent ones.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/docviewer/internal/db"
	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// DefaultLimit is the number of attempts Recent returns when limit <= 0.
const DefaultLimit = 50

// Attempt is one recorded load.
type Attempt struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	OK         bool      `json:"ok"`
	Reason     string    `json:"reason,omitempty"`
	Status     int       `json:"status,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// Store persists load attempts. It implements viewer.Recorder.
type Store struct {
	db  *db.DB
	now func() time.Time
}

var _ viewer.Recorder = (*Store)(nil)

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// RecordLoad inserts one attempt for filename.
func (s *Store) RecordLoad(ctx context.Context, filename string, result viewer.LoadResult, elapsed time.Duration) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO load_attempts (id, filename, ok, reason, status, duration_ms, at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		filename,
		result.OK,
		result.Reason,
		result.Status,
		elapsed.Milliseconds(),
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting load attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, ok, reason, status, duration_ms, at
		FROM load_attempts
		ORDER BY at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying load attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

// Failures counts failed attempts per filename since the given time.
func (s *Store) Failures(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filename, COUNT(*) FROM load_attempts
		WHERE ok = 0 AND at >= ?
		GROUP BY filename`, since.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("counting failures: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

func scanAttempt(rows *sql.Rows) (*Attempt, error) {
	var (
		a  Attempt
		at string
	)
	if err := rows.Scan(&a.ID, &a.Filename, &a.OK, &a.Reason, &a.Status, &a.DurationMS, &at); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
		a.At = t
	}
	return &a, nil
}
