package domain

import (
	"context"
	"time"
)

// Category partitions log entries within a user's day.
type Category string

const (
	CategoryFood    Category = "food"
	CategoryWater   Category = "water"
	CategoryWorkout Category = "workout"
)

// ProductLookup defines the interface for fetching a product by barcode.
type ProductLookup interface {
	FetchByBarcode(ctx context.Context, code string) (*Product, error)
}

// EntryStore defines the interface for the per-user per-day per-category
// log partition plus the flat legacy workout collection.
type EntryStore interface {
	// UpsertEntry writes one record under user/category/day keyed by
	// entryKey. Last write wins.
	UpsertEntry(ctx context.Context, userID string, category Category, dayKey, entryKey string, record map[string]any) error

	// ListEntries returns all records under user/category/day, in no
	// particular order.
	ListEntries(ctx context.Context, userID string, category Category, dayKey string) ([]map[string]any, error)

	// GetLegacyWorkout reads a workout record by its literal id from the
	// flat legacy collection. Returns ErrNotFound when absent.
	GetLegacyWorkout(ctx context.Context, id string) (map[string]any, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Clock yields the civil date and timestamp used to key log entries. All
// actors share one fixed timezone.
type Clock interface {
	// DayKey returns the current calendar date, e.g. "2026-08-29".
	DayKey() string
	// EntryKey returns the current timestamp, unique enough to key one
	// entry within a day partition.
	EntryKey() string
}
