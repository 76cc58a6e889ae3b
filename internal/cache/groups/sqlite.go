package groups

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

const upsertQuery = `INSERT INTO groups (id, name, category, description, owner_id, photo_url,
	member_ids_json, event_ids_json, serie_ids_json, cached_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	category = excluded.category,
	description = excluded.description,
	owner_id = excluded.owner_id,
	photo_url = excluded.photo_url,
	member_ids_json = excluded.member_ids_json,
	event_ids_json = excluded.event_ids_json,
	serie_ids_json = excluded.serie_ids_json,
	cached_at = excluded.cached_at`

func upsertArgs(rec Record) []any {
	return []any{
		rec.ID, rec.Name, rec.Category, rec.Description, rec.OwnerID, rec.PhotoURL,
		rec.MemberIDsJSON, rec.EventIDsJSON, rec.SerieIDsJSON, rec.CachedAt,
	}
}

// Upsert inserts or replaces a record by ID.
func (r *SQLiteRepository) Upsert(ctx context.Context, rec Record) error {
	if _, err := r.db.ExecContext(ctx, upsertQuery, upsertArgs(rec)...); err != nil {
		return shared.WrapStorage("upsert group", err)
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
		return shared.WrapStorage("upsert group batch", err)
	}
	return nil
}

// GetByID returns the record for id; found=false when the key is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (Record, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM groups WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, shared.WrapStorage("get group", err)
	}
	return rec, true, nil
}

// GetAll returns every cached record, unordered.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Record, error) {
	return r.queryRecords(ctx, "get all groups",
		`SELECT `+recordColumns+` FROM groups`)
}

// DeleteByID removes the record for id. Deleting an absent key is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id); err != nil {
		return shared.WrapStorage("delete group", err)
	}
	return nil
}

// DeleteAll empties the store.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM groups`); err != nil {
		return shared.WrapStorage("delete all groups", err)
	}
	return nil
}

// DeleteOlderThan removes records whose cached_at is strictly below
// cutoffMillis (rows at exactly the cutoff are retained).
func (r *SQLiteRepository) DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE cached_at < ?`, cutoffMillis)
	if err != nil {
		return 0, shared.WrapStorage("delete old groups", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, shared.WrapStorage("delete old groups", err)
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
		&rec.ID, &rec.Name, &rec.Category, &rec.Description, &rec.OwnerID, &rec.PhotoURL,
		&rec.MemberIDsJSON, &rec.EventIDsJSON, &rec.SerieIDsJSON, &rec.CachedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

var _ Repository = (*SQLiteRepository)(nil)
