package profiles

import "database/sql"

// Record is the flat, storable representation of a profile. Field order
// matches the column order of recordColumns.
type Record struct {
	UID      string
	Username string
	Email    string

	PhotoURL    sql.NullString
	DateOfBirth sql.NullString
	Country     sql.NullString
	Bio         sql.NullString
	FCMToken    sql.NullString

	// InterestsJSON is a JSON array of strings.
	InterestsJSON string

	EventsJoined int64
	Followers    int64
	Following    int64

	// Each timestamp pair is nullable as a unit.
	CreatedAtSeconds     sql.NullInt64
	CreatedAtNanoseconds sql.NullInt64
	UpdatedAtSeconds     sql.NullInt64
	UpdatedAtNanoseconds sql.NullInt64

	// CachedAt is the ingestion instant in unix milliseconds.
	CachedAt int64
}

const recordColumns = `uid, username, email,
	photo_url, date_of_birth, country, bio, fcm_token,
	interests_json, events_joined, followers, following,
	created_at_seconds, created_at_nanoseconds,
	updated_at_seconds, updated_at_nanoseconds, cached_at`
