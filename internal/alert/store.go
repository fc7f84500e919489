package alert

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS reagent_alerts (
	id          BIGSERIAL PRIMARY KEY,
	reagent_id  BIGINT NOT NULL,
	name        TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	remaining   INT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Entry is a recorded low-stock alert.
type Entry struct {
	ID        int64     `json:"id"`
	ReagentID uint      `json:"reagent_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Remaining int       `json:"remaining"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists low-stock alerts so lab staff can review what ran out
// and when, independent of the inventory records themselves.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the alerts table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create alerts table: %w", err)
	}
	return nil
}

// RecordLow appends a low-stock alert.
func (s *Store) RecordLow(ctx context.Context, reagentID uint, name, location string, remaining int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reagent_alerts (reagent_id, name, location, remaining) VALUES ($1, $2, $3, $4)`,
		reagentID, name, location, remaining,
	)
	if err != nil {
		return fmt.Errorf("failed to record alert: %w", err)
	}
	return nil
}

// Recent returns the most recent alerts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, reagent_id, name, location, remaining, created_at
		 FROM reagent_alerts ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ReagentID, &e.Name, &e.Location, &e.Remaining, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
