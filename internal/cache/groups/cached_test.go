package groups

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

	rec := testRecord("g1")
	require.NoError(t, r.Upsert(ctx, rec))

	got, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.Name, got.Name)

	rec.Name = "Renamed"
	require.NoError(t, r.Upsert(ctx, rec))

	got, found, err = r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed", got.Name, "upsert invalidates the memoized lookup")
}

func TestCachedRepository_DeleteInvalidates(t *testing.T) {
	r := newCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRecord("g1")))

	_, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, r.DeleteByID(ctx, "g1"))

	_, found, err = r.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, found)
}
