package series

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/cache/codec"
	"github.com/dmitrijs2005/eventcache/internal/dbx"
	"github.com/dmitrijs2005/eventcache/internal/logging"
	"github.com/dmitrijs2005/eventcache/internal/models"
)

// timeNow is a seam for tests that pin the ingestion timestamp.
var timeNow = time.Now

// Mapper converts between models.Serie and the storable Record.
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

// ToRecord flattens a serie into its storable shape and stamps CachedAt with
// the current ingestion time.
func (m *Mapper) ToRecord(s models.Serie) Record {
	r := Record{
		SerieID:          s.SerieID,
		Title:            s.Title,
		Description:      s.Description,
		DateSeconds:      s.Date.Seconds,
		DateNanoseconds:  int64(s.Date.Nanos),
		ParticipantsJSON: codec.EncodeStringList(s.Participants),
		EventIDsJSON:     codec.EncodeStringList(s.EventIDs),
		MaxParticipants:  s.MaxParticipants,
		OwnerID:          s.OwnerID,
		Visibility:       string(s.Visibility),
		GroupID:          dbx.ToNullString(s.GroupID),
		CachedAt:         timeNow().UnixMilli(),
	}
	if s.LastEventEndTime != nil {
		r.LastEventEndTimeSeconds = sql.NullInt64{Int64: s.LastEventEndTime.Seconds, Valid: true}
		r.LastEventEndTimeNanoseconds = sql.NullInt64{Int64: int64(s.LastEventEndTime.Nanos), Valid: true}
	}
	return r
}

// ToRecordList maps a batch of series.
func (m *Mapper) ToRecordList(series []models.Serie) []Record {
	records := make([]Record, len(series))
	for i, s := range series {
		records[i] = m.ToRecord(s)
	}
	return records
}

// ToDomain reconstructs a serie from its stored shape; it never fails.
func (m *Mapper) ToDomain(r Record) models.Serie {
	s := models.Serie{
		SerieID:         r.SerieID,
		Title:           r.Title,
		Description:     r.Description,
		Date:            models.Timestamp{Seconds: r.DateSeconds, Nanos: int32(r.DateNanoseconds)},
		Participants:    codec.DecodeStringList(m.log, "series", r.SerieID, "participants_json", r.ParticipantsJSON),
		EventIDs:        codec.DecodeStringList(m.log, "series", r.SerieID, "event_ids_json", r.EventIDsJSON),
		MaxParticipants: r.MaxParticipants,
		OwnerID:         r.OwnerID,
		Visibility:      models.ParseVisibility(r.Visibility),
		GroupID:         dbx.FromNullString(r.GroupID),
	}
	if string(s.Visibility) != r.Visibility {
		m.log.Warn(context.Background(), "unknown visibility, using default",
			"entity", "series", "key", r.SerieID, "value", r.Visibility)
	}
	if r.LastEventEndTimeSeconds.Valid && r.LastEventEndTimeNanoseconds.Valid {
		s.LastEventEndTime = &models.Timestamp{
			Seconds: r.LastEventEndTimeSeconds.Int64,
			Nanos:   int32(r.LastEventEndTimeNanoseconds.Int64),
		}
	}
	return s
}
