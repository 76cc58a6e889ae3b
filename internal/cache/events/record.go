package events

import "database/sql"

// Record is the flat, storable representation of an event. Field order
// matches the column order of recordColumns.
type Record struct {
	EventID     string
	Title       string
	Description string

	// Location columns are nullable as a unit; a row with only some of them
	// set decodes to no location at all.
	LocationLatitude  sql.NullFloat64
	LocationLongitude sql.NullFloat64
	LocationName      sql.NullString

	DateSeconds     int64
	DateNanoseconds int64

	Duration        int64
	MaxParticipants int64

	// ParticipantsJSON is a JSON array of participant UIDs.
	ParticipantsJSON string

	OwnerID     string
	Type        string
	Visibility  string
	PartOfSerie bool
	GroupID     sql.NullString

	// CachedAt is the ingestion instant in unix milliseconds. It is set by
	// the mapper at write time and exists solely to drive eviction.
	CachedAt int64
}

const recordColumns = `event_id, title, description,
	location_latitude, location_longitude, location_name,
	date_seconds, date_nanoseconds, duration, max_participants,
	participants_json, owner_id, type, visibility, part_of_serie, group_id, cached_at`
