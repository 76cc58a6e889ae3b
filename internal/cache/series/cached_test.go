package series

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/eventcache/internal/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedRepo(t *testing.T) *CachedRepository {
	t.Helper()
	db := setupDB(t)
	return NewCachedRepository(NewSQLiteRepository(db), memo.DefaultConfig())
}

func TestCachedRepository_ReadYourWrites(t *testing.T) {
	r := newCachedRepo(t)
	ctx := context.Background()

	rec := testRecord("s1")
	require.NoError(t, r.Upsert(ctx, rec))

	got, found, err := r.GetByID(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.Title, got.Title)

	rec.Title = "Renamed"
	require.NoError(t, r.Upsert(ctx, rec))

	got, found, err = r.GetByID(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed", got.Title, "upsert invalidates the memoized lookup")
}

func TestCachedRepository_SweepInvalidatesEverything(t *testing.T) {
	r := newCachedRepo(t)
	ctx := context.Background()

	stale := testRecord("s1")
	stale.CachedAt = 100
	fresh := testRecord("s2")
	fresh.CachedAt = 300
	require.NoError(t, r.UpsertBatch(ctx, []Record{stale, fresh}))

	// warm the memo
	_, _, err := r.GetByID(ctx, "s1")
	require.NoError(t, err)

	removed, err := r.DeleteOlderThan(ctx, 200)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	_, found, err := r.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found, "swept record no longer served from memo")

	_, found, err = r.GetByID(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, found)
}
