package profiles

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/eventcache/internal/dbx"
	"github.com/dmitrijs2005/eventcache/internal/shared"
)

// SQLiteRepository implements Repository over the local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO profiles (uid, username, email,
	photo_url, date_of_birth, country, bio, fcm_token,
	interests_json, events_joined, followers, following,
	created_at_seconds, created_at_nanoseconds,
	updated_at_seconds, updated_at_nanoseconds, cached_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(uid) DO UPDATE SET
	username = excluded.username,
	email = excluded.email,
	photo_url = excluded.photo_url,
	date_of_birth = excluded.date_of_birth,
	country = excluded.country,
	bio = excluded.bio,
	fcm_token = excluded.fcm_token,
	interests_json = excluded.interests_json,
	events_joined = excluded.events_joined,
	followers = excluded.followers,
	following = excluded.following,
	created_at_seconds = excluded.created_at_seconds,
	created_at_nanoseconds = excluded.created_at_nanoseconds,
	updated_at_seconds = excluded.updated_at_seconds,
	updated_at_nanoseconds = excluded.updated_at_nanoseconds,
	cached_at = excluded.cached_at`

func upsertArgs(rec Record) []any {
	return []any{
		rec.UID, rec.Username, rec.Email,
		rec.PhotoURL, rec.DateOfBirth, rec.Country, rec.Bio, rec.FCMToken,
		rec.InterestsJSON, rec.EventsJoined, rec.Followers, rec.Following,
		rec.CreatedAtSeconds, rec.CreatedAtNanoseconds,
		rec.UpdatedAtSeconds, rec.UpdatedAtNanoseconds, rec.CachedAt,
	}
}

// Upsert inserts or replaces a record by UID.
func (r *SQLiteRepository) Upsert(ctx context.Context, rec Record) error {
	if _, err := r.db.ExecContext(ctx, upsertQuery, upsertArgs(rec)...); err != nil {
		return shared.WrapStorage("upsert profile", err)
	}
	return nil
}

// UpsertBatch upserts all records in a single transaction. An empty batch
// performs no writes at all.
func (r *SQLiteRepository) UpsertBatch(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, rec := range recs {
			if _, err := tx.ExecContext(ctx, upsertQuery, upsertArgs(rec)...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return shared.WrapStorage("upsert profile batch", err)
	}
	return nil
}

// GetByID returns the record for uid; found=false when the key is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, uid string) (Record, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM profiles WHERE uid = ?`, uid)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, shared.WrapStorage("get profile", err)
	}
	return rec, true, nil
}

// GetAll returns every cached record, unordered.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Record, error) {
	return r.queryRecords(ctx, "get all profiles",
		`SELECT `+recordColumns+` FROM profiles`)
}

// DeleteByID removes the record for uid. Deleting an absent key is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, uid string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE uid = ?`, uid); err != nil {
		return shared.WrapStorage("delete profile", err)
	}
	return nil
}

// DeleteAll empties the store.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return shared.WrapStorage("delete all profiles", err)
	}
	return nil
}

// DeleteOlderThan removes records whose cached_at is strictly below
// cutoffMillis (rows at exactly the cutoff are retained).
func (r *SQLiteRepository) DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE cached_at < ?`, cutoffMillis)
	if err != nil {
		return 0, shared.WrapStorage("delete old profiles", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, shared.WrapStorage("delete old profiles", err)
	}
	return removed, nil
}

func (r *SQLiteRepository) queryRecords(ctx context.Context, op, query string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, shared.WrapStorage(op, err)
	}
	defer rows.Close()

	result := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, shared.WrapStorage(op, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, shared.WrapStorage(op, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row in recordColumns order.
func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.UID, &rec.Username, &rec.Email,
		&rec.PhotoURL, &rec.DateOfBirth, &rec.Country, &rec.Bio, &rec.FCMToken,
		&rec.InterestsJSON, &rec.EventsJoined, &rec.Followers, &rec.Following,
		&rec.CreatedAtSeconds, &rec.CreatedAtNanoseconds,
		&rec.UpdatedAtSeconds, &rec.UpdatedAtNanoseconds, &rec.CachedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

var _ Repository = (*SQLiteRepository)(nil)
