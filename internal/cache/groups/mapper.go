package groups

import (
	"time"

	"github.com/dmitrijs2005/eventcache/internal/cache/codec"
	"github.com/dmitrijs2005/eventcache/internal/dbx"
	"github.com/dmitrijs2005/eventcache/internal/logging"
	"github.com/dmitrijs2005/eventcache/internal/models"
)

// timeNow is a seam for tests that pin the ingestion timestamp.
var timeNow = time.Now

// Mapper converts between models.Group and the storable Record.
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

// ToRecord flattens a group into its storable shape and stamps CachedAt with
// the current ingestion time.
func (m *Mapper) ToRecord(g models.Group) Record {
	return Record{
		ID:            g.ID,
		Name:          g.Name,
		Category:      g.Category,
		Description:   g.Description,
		OwnerID:       g.OwnerID,
		PhotoURL:      dbx.ToNullString(g.PhotoURL),
		MemberIDsJSON: codec.EncodeStringList(g.MemberIDs),
		EventIDsJSON:  codec.EncodeStringList(g.EventIDs),
		SerieIDsJSON:  codec.EncodeStringList(g.SerieIDs),
		CachedAt:      timeNow().UnixMilli(),
	}
}

// ToRecordList maps a batch of groups.
func (m *Mapper) ToRecordList(groups []models.Group) []Record {
	records := make([]Record, len(groups))
	for i, g := range groups {
		records[i] = m.ToRecord(g)
	}
	return records
}

// ToDomain reconstructs a group from its stored shape; it never fails.
func (m *Mapper) ToDomain(r Record) models.Group {
	return models.Group{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		PhotoURL:    dbx.FromNullString(r.PhotoURL),
		MemberIDs:   codec.DecodeStringList(m.log, "groups", r.ID, "member_ids_json", r.MemberIDsJSON),
		EventIDs:    codec.DecodeStringList(m.log, "groups", r.ID, "event_ids_json", r.EventIDsJSON),
		SerieIDs:    codec.DecodeStringList(m.log, "groups", r.ID, "serie_ids_json", r.SerieIDsJSON),
	}
}
