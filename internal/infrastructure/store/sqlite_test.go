package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nutrilog/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "nutrilog_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndListEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryWater, "2026-08-29", "t1", map[string]any{"amount": 8.5}))
	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryWater, "2026-08-29", "t2", map[string]any{"amount": "8oz"}))

	entries, err := s.ListEntries(ctx, "u1", domain.CategoryWater, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	amounts := []any{entries[0]["amount"], entries[1]["amount"]}
	assert.Contains(t, amounts, 8.5)
	assert.Contains(t, amounts, "8oz")
}

func TestUpsertEntry_LastWriteWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryWorkout, "2026-08-29", "t1", map[string]any{"calories_burned": 100.0}))
	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryWorkout, "2026-08-29", "t1", map[string]any{"calories_burned": 250.0}))

	entries, err := s.ListEntries(ctx, "u1", domain.CategoryWorkout, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 250.0, entries[0]["calories_burned"])
}

func TestListEntries_PartitionIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryFood, "2026-08-29", "t1", map[string]any{"calories": 100.0}))
	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryWater, "2026-08-29", "t1", map[string]any{"amount": 1.0}))
	require.NoError(t, s.UpsertEntry(ctx, "u2", domain.CategoryFood, "2026-08-29", "t1", map[string]any{"calories": 900.0}))
	require.NoError(t, s.UpsertEntry(ctx, "u1", domain.CategoryFood, "2026-08-30", "t1", map[string]any{"calories": 300.0}))

	entries, err := s.ListEntries(ctx, "u1", domain.CategoryFood, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 100.0, entries[0]["calories"])
}

func TestListEntries_EmptyDay(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.ListEntries(context.Background(), "u1", domain.CategoryWater, "2026-08-29")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLegacyWorkouts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutLegacyWorkout(ctx, "morning-run", 320))

	record, err := s.GetLegacyWorkout(ctx, "morning-run")
	require.NoError(t, err)
	assert.Equal(t, 320.0, record["calories_burned"])

	_, err = s.GetLegacyWorkout(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDisabledStore(t *testing.T) {
	var s domain.EntryStore = Disabled{}
	ctx := context.Background()

	err := s.UpsertEntry(ctx, "u1", domain.CategoryWater, "2026-08-29", "t1", map[string]any{"amount": 1.0})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = s.ListEntries(ctx, "u1", domain.CategoryWater, "2026-08-29")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = s.GetLegacyWorkout(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
