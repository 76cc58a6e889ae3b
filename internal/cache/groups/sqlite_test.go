package groups

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE groups (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT NOT NULL,
  owner_id TEXT NOT NULL,
  photo_url TEXT,
  member_ids_json TEXT NOT NULL DEFAULT '[]',
  event_ids_json TEXT NOT NULL DEFAULT '[]',
  serie_ids_json TEXT NOT NULL DEFAULT '[]',
  cached_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testRecord(id string) Record {
	return Record{
		ID:            id,
		Name:          "Group " + id,
		Category:      "sports",
		Description:   "Description " + id,
		OwnerID:       "owner1",
		MemberIDsJSON: `["u1","u2"]`,
		EventIDsJSON:  `["e1"]`,
		SerieIDsJSON:  `[]`,
		CachedAt:      1,
	}
}

func countGroups(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM groups`).Scan(&n))
	return n
}

func TestUpsert_InsertThenReplace(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := testRecord("g1")
	require.NoError(t, r.Upsert(ctx, rec))

	rec.Name = "Renamed group"
	rec.CachedAt = 2
	require.NoError(t, r.Upsert(ctx, rec))

	require.Equal(t, 1, countGroups(t, db))

	got, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed group", got.Name)
	assert.Equal(t, int64(2), got.CachedAt)
}

func TestUpsertBatch_EmptyIsNoOp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRecord("g1")))
	require.NoError(t, r.UpsertBatch(ctx, nil))

	require.Equal(t, 1, countGroups(t, db))
}

func TestUpsertBatch_UpsertsEveryRecord(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRecord("g1")))

	updated := testRecord("g1")
	updated.Name = "Replaced"
	require.NoError(t, r.UpsertBatch(ctx, []Record{updated, testRecord("g2")}))

	require.Equal(t, 2, countGroups(t, db))

	got, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Replaced", got.Name)
}

func TestGetByID_AbsentIsNotAnError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, found, err := r.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetByID_RestoresNullablePhotoURL(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := testRecord("g1")
	rec.PhotoURL = sql.NullString{String: "https://cdn.example.com/g1.jpg", Valid: true}
	require.NoError(t, r.Upsert(ctx, rec))

	got, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec, got)
}

func TestGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, r.UpsertBatch(ctx, []Record{testRecord("g1"), testRecord("g2")}))

	got, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteByID_AbsentIsNoOp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRecord("g1")))
	require.NoError(t, r.DeleteByID(ctx, "g1"))
	require.NoError(t, r.DeleteByID(ctx, "g1"))
	require.Equal(t, 0, countGroups(t, db))
}

func TestDeleteAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.DeleteAll(ctx), "empty store is a no-op")

	require.NoError(t, r.UpsertBatch(ctx, []Record{testRecord("g1"), testRecord("g2")}))
	require.NoError(t, r.DeleteAll(ctx))
	require.Equal(t, 0, countGroups(t, db))
}

func TestDeleteOlderThan_ExclusiveLowerBound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	const T = int64(1_700_000_000_000)

	oldest := testRecord("g1")
	oldest.CachedAt = T - 10000
	atCutoff := testRecord("g2")
	atCutoff.CachedAt = T - 5000
	require.NoError(t, r.UpsertBatch(ctx, []Record{oldest, atCutoff}))

	removed, err := r.DeleteOlderThan(ctx, T-5000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, found, err := r.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = r.GetByID(ctx, "g2")
	require.NoError(t, err)
	assert.True(t, found, "record cached exactly at the cutoff is retained")
}
