package events

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinTime(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func sampleEvent() models.Event {
	return models.Event{
		EventID:     "e1",
		Title:       "Morning run",
		Description: "5k around the lake",
		Location: &models.Location{
			Latitude:  56.9496,
			Longitude: 24.1052,
			Name:      "Mežaparks",
		},
		Date:            models.Timestamp{Seconds: 1750000000, Nanos: 500},
		Duration:        60,
		MaxParticipants: 20,
		Participants:    []string{"user1", "user2", "user3"},
		OwnerID:         "owner1",
		Type:            models.EventTypeInPerson,
		Visibility:      models.VisibilityPublic,
		PartOfSerie:     true,
		GroupID:         "g1",
	}
}

func TestMapper_RoundTrip_AllCompositesPresent(t *testing.T) {
	m := NewMapper(nil)
	orig := sampleEvent()

	got := m.ToDomain(m.ToRecord(orig))

	assert.Equal(t, orig, got)
}

func TestMapper_RoundTrip_AbsentComposites(t *testing.T) {
	m := NewMapper(nil)
	orig := sampleEvent()
	orig.Location = nil
	orig.GroupID = ""
	orig.Participants = []string{}

	got := m.ToDomain(m.ToRecord(orig))

	assert.Equal(t, orig, got)
}

func TestMapper_ToRecord_StampsCachedAt(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	pinTime(t, now)

	m := NewMapper(nil)
	rec := m.ToRecord(sampleEvent())

	require.Equal(t, now.UnixMilli(), rec.CachedAt)
}

func TestMapper_ToRecord_AbsentLocationWritesAllNulls(t *testing.T) {
	m := NewMapper(nil)
	e := sampleEvent()
	e.Location = nil

	rec := m.ToRecord(e)

	assert.False(t, rec.LocationLatitude.Valid)
	assert.False(t, rec.LocationLongitude.Valid)
	assert.False(t, rec.LocationName.Valid)
}

func TestMapper_ToDomain_PartialLocationDecodesToAbsent(t *testing.T) {
	m := NewMapper(nil)
	rec := m.ToRecord(sampleEvent())

	// Only longitude survives; latitude and name are lost.
	rec.LocationLatitude.Valid = false
	rec.LocationName.Valid = false

	got := m.ToDomain(rec)

	assert.Nil(t, got.Location)
}

func TestMapper_ToDomain_EnumFallback(t *testing.T) {
	m := NewMapper(nil)
	rec := m.ToRecord(sampleEvent())
	rec.Type = "INVALID_TYPE"
	rec.Visibility = "SECRET"

	got := m.ToDomain(rec)

	assert.Equal(t, models.EventTypeInPerson, got.Type)
	assert.Equal(t, models.VisibilityPublic, got.Visibility)
}

func TestMapper_ToDomain_MalformedParticipantsFallsBackToEmpty(t *testing.T) {
	m := NewMapper(nil)
	rec := m.ToRecord(sampleEvent())
	rec.ParticipantsJSON = "{broken"

	got := m.ToDomain(rec)

	assert.Equal(t, []string{}, got.Participants)
}

func TestMapper_ToRecordList(t *testing.T) {
	m := NewMapper(nil)
	a := sampleEvent()
	b := sampleEvent()
	b.EventID = "e2"

	recs := m.ToRecordList([]models.Event{a, b})

	require.Len(t, recs, 2)
	assert.Equal(t, "e1", recs[0].EventID)
	assert.Equal(t, "e2", recs[1].EventID)

	assert.Empty(t, m.ToRecordList(nil))
}
