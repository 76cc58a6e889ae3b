package events

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/eventcache/internal/dbx"
	"github.com/dmitrijs2005/eventcache/internal/models"
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

const upsertQuery = `INSERT INTO events (event_id, title, description,
	location_latitude, location_longitude, location_name,
	date_seconds, date_nanoseconds, duration, max_participants,
	participants_json, owner_id, type, visibility, part_of_serie, group_id, cached_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(event_id) DO UPDATE SET
	title = excluded.title,
	description = excluded.description,
	location_latitude = excluded.location_latitude,
	location_longitude = excluded.location_longitude,
	location_name = excluded.location_name,
	date_seconds = excluded.date_seconds,
	date_nanoseconds = excluded.date_nanoseconds,
	duration = excluded.duration,
	max_participants = excluded.max_participants,
	participants_json = excluded.participants_json,
	owner_id = excluded.owner_id,
	type = excluded.type,
	visibility = excluded.visibility,
	part_of_serie = excluded.part_of_serie,
	group_id = excluded.group_id,
	cached_at = excluded.cached_at`

func upsertArgs(rec Record) []any {
	return []any{
		rec.EventID, rec.Title, rec.Description,
		rec.LocationLatitude, rec.LocationLongitude, rec.LocationName,
		rec.DateSeconds, rec.DateNanoseconds, rec.Duration, rec.MaxParticipants,
		rec.ParticipantsJSON, rec.OwnerID, rec.Type, rec.Visibility,
		boolToInt(rec.PartOfSerie), rec.GroupID, rec.CachedAt,
	}
}

// Upsert inserts or replaces a record by EventID.
func (r *SQLiteRepository) Upsert(ctx context.Context, rec Record) error {
	if _, err := r.db.ExecContext(ctx, upsertQuery, upsertArgs(rec)...); err != nil {
		return shared.WrapStorage("upsert event", err)
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
		return shared.WrapStorage("upsert event batch", err)
	}
	return nil
}

// GetByID returns the record for id; found=false when the key is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (Record, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM events WHERE event_id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, shared.WrapStorage("get event", err)
	}
	return rec, true, nil
}

// GetAll returns every cached record, unordered.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Record, error) {
	return r.queryRecords(ctx, "get all events",
		`SELECT `+recordColumns+` FROM events`)
}

// GetByOwner returns records owned by ownerID.
func (r *SQLiteRepository) GetByOwner(ctx context.Context, ownerID string) ([]Record, error) {
	return r.queryRecords(ctx, "get events by owner",
		`SELECT `+recordColumns+` FROM events WHERE owner_id = ?`, ownerID)
}

// GetPublic returns up to limit public records, newest date first.
func (r *SQLiteRepository) GetPublic(ctx context.Context, limit int) ([]Record, error) {
	return r.queryRecords(ctx, "get public events",
		`SELECT `+recordColumns+` FROM events
		 WHERE visibility = ?
		 ORDER BY date_seconds DESC, date_nanoseconds DESC
		 LIMIT ?`, string(models.VisibilityPublic), limit)
}

// GetUpcoming returns up to limit records dated at or after ref, newest first.
func (r *SQLiteRepository) GetUpcoming(ctx context.Context, ref models.Timestamp, limit int) ([]Record, error) {
	return r.queryRecords(ctx, "get upcoming events",
		`SELECT `+recordColumns+` FROM events
		 WHERE date_seconds > ? OR (date_seconds = ? AND date_nanoseconds >= ?)
		 ORDER BY date_seconds DESC, date_nanoseconds DESC
		 LIMIT ?`, ref.Seconds, ref.Seconds, int64(ref.Nanos), limit)
}

// DeleteByID removes the record for id. Deleting an absent key is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, id); err != nil {
		return shared.WrapStorage("delete event", err)
	}
	return nil
}

// DeleteAll empties the store.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return shared.WrapStorage("delete all events", err)
	}
	return nil
}

// DeleteOlderThan removes records whose cached_at is strictly below
// cutoffMillis (rows at exactly the cutoff are retained).
func (r *SQLiteRepository) DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE cached_at < ?`, cutoffMillis)
	if err != nil {
		return 0, shared.WrapStorage("delete old events", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, shared.WrapStorage("delete old events", err)
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
	var partOfSerie int64
	err := row.Scan(
		&rec.EventID, &rec.Title, &rec.Description,
		&rec.LocationLatitude, &rec.LocationLongitude, &rec.LocationName,
		&rec.DateSeconds, &rec.DateNanoseconds, &rec.Duration, &rec.MaxParticipants,
		&rec.ParticipantsJSON, &rec.OwnerID, &rec.Type, &rec.Visibility,
		&partOfSerie, &rec.GroupID, &rec.CachedAt,
	)
	if err != nil {
		return Record{}, err
	}
	rec.PartOfSerie = partOfSerie != 0
	return rec, nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

var _ Repository = (*SQLiteRepository)(nil)
