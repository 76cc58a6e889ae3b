package groups

import "database/sql"

// Record is the flat, storable representation of a group. Field order
// matches the column order of recordColumns.
type Record struct {
	ID          string
	Name        string
	Category    string
	Description string
	OwnerID     string
	PhotoURL    sql.NullString

	// The *_json columns are JSON arrays of strings.
	MemberIDsJSON string
	EventIDsJSON  string
	SerieIDsJSON  string

	// CachedAt is the ingestion instant in unix milliseconds.
	CachedAt int64
}

const recordColumns = `id, name, category, description, owner_id, photo_url,
	member_ids_json, event_ids_json, serie_ids_json, cached_at`
