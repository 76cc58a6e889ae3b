package profiles

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/cache/codec"
	"github.com/dmitrijs2005/eventcache/internal/dbx"
	"github.com/dmitrijs2005/eventcache/internal/logging"
	"github.com/dmitrijs2005/eventcache/internal/models"
)

// timeNow is a seam for tests that pin the ingestion timestamp.
var timeNow = time.Now

// Mapper converts between models.Profile and the storable Record.
type Mapper struct {
	log logging.Logger
}

// NewMapper returns a Mapper. A nil logger is replaced with a no-op one.
func NewMapper(log logging.Logger) *Mapper {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Mapper{log: log}
}

// ToRecord flattens a profile into its storable shape and stamps CachedAt
// with the current ingestion time.
func (m *Mapper) ToRecord(p models.Profile) Record {
	r := Record{
		UID:           p.UID,
		Username:      p.Username,
		Email:         p.Email,
		PhotoURL:      dbx.ToNullString(p.PhotoURL),
		DateOfBirth:   dbx.ToNullString(p.DateOfBirth),
		Country:       dbx.ToNullString(p.Country),
		Bio:           dbx.ToNullString(p.Bio),
		FCMToken:      dbx.ToNullString(p.FCMToken),
		InterestsJSON: codec.EncodeStringList(p.Interests),
		EventsJoined:  p.EventsJoined,
		Followers:     p.Followers,
		Following:     p.Following,
		CachedAt:      timeNow().UnixMilli(),
	}
	if p.CreatedAt != nil {
		r.CreatedAtSeconds = sql.NullInt64{Int64: p.CreatedAt.Seconds, Valid: true}
		r.CreatedAtNanoseconds = sql.NullInt64{Int64: int64(p.CreatedAt.Nanos), Valid: true}
	}
	if p.UpdatedAt != nil {
		r.UpdatedAtSeconds = sql.NullInt64{Int64: p.UpdatedAt.Seconds, Valid: true}
		r.UpdatedAtNanoseconds = sql.NullInt64{Int64: int64(p.UpdatedAt.Nanos), Valid: true}
	}
	return r
}

// ToRecordList maps a batch of profiles.
func (m *Mapper) ToRecordList(profiles []models.Profile) []Record {
	records := make([]Record, len(profiles))
	for i, p := range profiles {
		records[i] = m.ToRecord(p)
	}
	return records
}

// ToDomain reconstructs a profile from its stored shape; it never fails.
func (m *Mapper) ToDomain(r Record) models.Profile {
	p := models.Profile{
		UID:          r.UID,
		Username:     r.Username,
		Email:        r.Email,
		PhotoURL:     dbx.FromNullString(r.PhotoURL),
		DateOfBirth:  dbx.FromNullString(r.DateOfBirth),
		Country:      dbx.FromNullString(r.Country),
		Bio:          dbx.FromNullString(r.Bio),
		FCMToken:     dbx.FromNullString(r.FCMToken),
		Interests:    codec.DecodeStringList(m.log, "profiles", r.UID, "interests_json", r.InterestsJSON),
		EventsJoined: r.EventsJoined,
		Followers:    r.Followers,
		Following:    r.Following,
	}
	if r.CreatedAtSeconds.Valid && r.CreatedAtNanoseconds.Valid {
		p.CreatedAt = &models.Timestamp{
			Seconds: r.CreatedAtSeconds.Int64,
			Nanos:   int32(r.CreatedAtNanoseconds.Int64),
		}
	}
	if r.UpdatedAtSeconds.Valid && r.UpdatedAtNanoseconds.Valid {
		p.UpdatedAt = &models.Timestamp{
			Seconds: r.UpdatedAtSeconds.Int64,
			Nanos:   int32(r.UpdatedAtNanoseconds.Int64),
		}
	}
	return p
}
