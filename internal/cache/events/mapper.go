package events

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

// Mapper converts between models.Event and the storable Record.
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

// ToRecord flattens an event into its storable shape and stamps CachedAt with
// the current ingestion time. CachedAt never derives from the input.
func (m *Mapper) ToRecord(e models.Event) Record {
	r := Record{
		EventID:          e.EventID,
		Title:            e.Title,
		Description:      e.Description,
		DateSeconds:      e.Date.Seconds,
		DateNanoseconds:  int64(e.Date.Nanos),
		Duration:         e.Duration,
		MaxParticipants:  e.MaxParticipants,
		ParticipantsJSON: codec.EncodeStringList(e.Participants),
		OwnerID:          e.OwnerID,
		Type:             string(e.Type),
		Visibility:       string(e.Visibility),
		PartOfSerie:      e.PartOfSerie,
		GroupID:          dbx.ToNullString(e.GroupID),
		CachedAt:         timeNow().UnixMilli(),
	}
	if e.Location != nil {
		r.LocationLatitude = sql.NullFloat64{Float64: e.Location.Latitude, Valid: true}
		r.LocationLongitude = sql.NullFloat64{Float64: e.Location.Longitude, Valid: true}
		r.LocationName = sql.NullString{String: e.Location.Name, Valid: true}
	}
	return r
}

// ToRecordList maps a batch of events.
func (m *Mapper) ToRecordList(events []models.Event) []Record {
	records := make([]Record, len(events))
	for i, e := range events {
		records[i] = m.ToRecord(e)
	}
	return records
}

// ToDomain reconstructs an event from its stored shape. It never fails:
// unknown enum names fall back to their default variant and malformed list
// columns decode to an empty list (both are logged).
func (m *Mapper) ToDomain(r Record) models.Event {
	e := models.Event{
		EventID:         r.EventID,
		Title:           r.Title,
		Description:     r.Description,
		Date:            models.Timestamp{Seconds: r.DateSeconds, Nanos: int32(r.DateNanoseconds)},
		Duration:        r.Duration,
		MaxParticipants: r.MaxParticipants,
		Participants:    codec.DecodeStringList(m.log, "events", r.EventID, "participants_json", r.ParticipantsJSON),
		OwnerID:         r.OwnerID,
		Type:            models.ParseEventType(r.Type),
		Visibility:      models.ParseVisibility(r.Visibility),
		PartOfSerie:     r.PartOfSerie,
		GroupID:         dbx.FromNullString(r.GroupID),
	}
	if string(e.Type) != r.Type {
		m.log.Warn(context.Background(), "unknown event type, using default",
			"entity", "events", "key", r.EventID, "value", r.Type)
	}
	if string(e.Visibility) != r.Visibility {
		m.log.Warn(context.Background(), "unknown visibility, using default",
			"entity", "events", "key", r.EventID, "value", r.Visibility)
	}
	if r.LocationLatitude.Valid && r.LocationLongitude.Valid && r.LocationName.Valid {
		e.Location = &models.Location{
			Latitude:  r.LocationLatitude.Float64,
			Longitude: r.LocationLongitude.Float64,
			Name:      r.LocationName.String,
		}
	}
	return e
}
