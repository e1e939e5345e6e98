package store

import (
	"context"

	"github.com/nutrilog/backend/internal/domain"
)

// Disabled is the EntryStore variant used when persistence is configured
// off. Every operation reports ErrStoreUnavailable; callers on best-effort
// write paths collapse that to a false logged flag, while read paths
// surface it.
type Disabled struct{}

func (Disabled) UpsertEntry(ctx context.Context, userID string, category domain.Category, dayKey, entryKey string, record map[string]any) error {
	return domain.ErrStoreUnavailable
}

func (Disabled) ListEntries(ctx context.Context, userID string, category domain.Category, dayKey string) ([]map[string]any, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Disabled) GetLegacyWorkout(ctx context.Context, id string) (map[string]any, error) {
	return nil, domain.ErrStoreUnavailable
}
