package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nutrilog/backend/internal/domain"
)

// SQLite persists log entries and the flat legacy workout collection in a
// single sqlite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and initializes the
// schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS log_entries (
        user_id TEXT NOT NULL,
        category TEXT NOT NULL,
        day TEXT NOT NULL,
        entry_key TEXT NOT NULL,
        payload TEXT NOT NULL,
        PRIMARY KEY (user_id, category, day, entry_key)
    );

    CREATE INDEX IF NOT EXISTS idx_log_entries_user_day ON log_entries(user_id, day);

    CREATE TABLE IF NOT EXISTS legacy_workouts (
        id TEXT PRIMARY KEY,
        calories_burned REAL
    );
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// UpsertEntry writes one record under user/category/day keyed by entryKey,
// replacing any previous payload under the same key.
func (s *SQLite) UpsertEntry(ctx context.Context, userID string, category domain.Category, dayKey, entryKey string, record map[string]any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode entry payload: %w", err)
	}

	query := `
        INSERT INTO log_entries (user_id, category, day, entry_key, payload)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(user_id, category, day, entry_key) DO UPDATE SET payload = excluded.payload
    `
	if _, err := s.db.ExecContext(ctx, query, userID, string(category), dayKey, entryKey, string(payload)); err != nil {
		return fmt.Errorf("failed to upsert %s entry: %w", category, err)
	}

	return nil
}

// ListEntries returns all payloads under user/category/day.
func (s *SQLite) ListEntries(ctx context.Context, userID string, category domain.Category, dayKey string) ([]map[string]any, error) {
	query := `
        SELECT payload FROM log_entries
        WHERE user_id = ? AND category = ? AND day = ?
    `
	rows, err := s.db.QueryContext(ctx, query, userID, string(category), dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", category, err)
	}
	defer rows.Close()

	var entries []map[string]any
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("failed to decode entry payload: %w", err)
		}
		entries = append(entries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// GetLegacyWorkout reads one record from the flat legacy workout table.
func (s *SQLite) GetLegacyWorkout(ctx context.Context, id string) (map[string]any, error) {
	var calories sql.NullFloat64
	query := `SELECT calories_burned FROM legacy_workouts WHERE id = ?`
	err := s.db.QueryRowContext(ctx, query, id).Scan(&calories)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: workout %q", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy workout: %w", err)
	}

	record := map[string]any{}
	if calories.Valid {
		record["calories_burned"] = calories.Float64
	}
	return record, nil
}

// PutLegacyWorkout inserts or replaces a record in the legacy workout
// table. Used by seeding and tests; the service itself never writes here.
func (s *SQLite) PutLegacyWorkout(ctx context.Context, id string, caloriesBurned float64) error {
	query := `
        INSERT INTO legacy_workouts (id, calories_burned)
        VALUES (?, ?)
        ON CONFLICT(id) DO UPDATE SET calories_burned = excluded.calories_burned
    `
	if _, err := s.db.ExecContext(ctx, query, id, caloriesBurned); err != nil {
		return fmt.Errorf("failed to write legacy workout: %w", err)
	}
	return nil
}
