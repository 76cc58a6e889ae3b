package series

import "database/sql"

// Record is the flat, storable representation of a serie. Field order
// matches the column order of recordColumns.
type Record struct {
	SerieID     string
	Title       string
	Description string

	DateSeconds     int64
	DateNanoseconds int64

	// End-time columns are nullable as a unit.
	LastEventEndTimeSeconds     sql.NullInt64
	LastEventEndTimeNanoseconds sql.NullInt64

	// ParticipantsJSON and EventIDsJSON are JSON arrays of strings.
	ParticipantsJSON string
	EventIDsJSON     string

	MaxParticipants int64
	OwnerID         string
	Visibility      string
	GroupID         sql.NullString

	// CachedAt is the ingestion instant in unix milliseconds.
	CachedAt int64
}

const recordColumns = `serie_id, title, description,
	date_seconds, date_nanoseconds,
	last_event_end_time_seconds, last_event_end_time_nanoseconds,
	participants_json, event_ids_json,
	max_participants, owner_id, visibility, group_id, cached_at`
