package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/eventcache/internal/cache/events"
	"github.com/dmitrijs2005/eventcache/internal/cache/groups"
	"github.com/dmitrijs2005/eventcache/internal/cache/profiles"
	"github.com/dmitrijs2005/eventcache/internal/cache/series"
	"github.com/dmitrijs2005/eventcache/internal/models"
)

// runSeed inserts a small connected data set for local development: one
// group whose owner also owns an event serie and a pair of events.
func (a *App) runSeed(ctx context.Context) error {
	c, err := a.provider.Get(ctx)
	if err != nil {
		return err
	}

	ownerUID := uuid.NewString()
	memberUID := uuid.NewString()
	groupID := uuid.NewString()
	serieID := uuid.NewString()
	eventIDs := []string{uuid.NewString(), uuid.NewString()}

	now := time.Now()
	start := models.TimestampFromTime(now.Add(48 * time.Hour))

	profileMapper := profiles.NewMapper(a.log)
	seedProfiles := []models.Profile{
		{
			UID:       ownerUID,
			Username:  "demo-owner",
			Email:     "owner@example.com",
			Country:   "LV",
			Interests: []string{"running"},
			CreatedAt: &models.Timestamp{Seconds: now.Unix()},
		},
		{
			UID:      memberUID,
			Username: "demo-member",
			Email:    "member@example.com",
		},
	}
	if err := c.Profiles.UpsertBatch(ctx, profileMapper.ToRecordList(seedProfiles)); err != nil {
		return err
	}

	groupMapper := groups.NewMapper(a.log)
	seedGroup := models.Group{
		ID:          groupID,
		Name:        "Demo runners",
		Category:    "sports",
		Description: "Seeded development group",
		OwnerID:     ownerUID,
		MemberIDs:   []string{ownerUID, memberUID},
		EventIDs:    eventIDs,
		SerieIDs:    []string{serieID},
	}
	if err := c.Groups.Upsert(ctx, groupMapper.ToRecord(seedGroup)); err != nil {
		return err
	}

	serieMapper := series.NewMapper(a.log)
	seedSerie := models.Serie{
		SerieID:         serieID,
		Title:           "Weekly demo run",
		Description:     "Seeded development serie",
		Date:            start,
		Participants:    []string{ownerUID, memberUID},
		EventIDs:        eventIDs,
		MaxParticipants: 20,
		OwnerID:         ownerUID,
		Visibility:      models.VisibilityPublic,
		GroupID:         groupID,
	}
	if err := c.Series.Upsert(ctx, serieMapper.ToRecord(seedSerie)); err != nil {
		return err
	}

	eventMapper := events.NewMapper(a.log)
	seedEvents := make([]models.Event, len(eventIDs))
	for i, id := range eventIDs {
		seedEvents[i] = models.Event{
			EventID:     id,
			Title:       fmt.Sprintf("Demo run #%d", i+1),
			Description: "Seeded development event",
			Location: &models.Location{
				Latitude:  56.9496,
				Longitude: 24.1052,
				Name:      "Mežaparks",
			},
			Date:            models.TimestampFromTime(now.Add(time.Duration(i+2) * 24 * time.Hour)),
			Duration:        60,
			MaxParticipants: 20,
			Participants:    []string{ownerUID},
			OwnerID:         ownerUID,
			Type:            models.EventTypeInPerson,
			Visibility:      models.VisibilityPublic,
			PartOfSerie:     true,
			GroupID:         groupID,
		}
	}
	if err := c.Events.UpsertBatch(ctx, eventMapper.ToRecordList(seedEvents)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "seeded %d profiles, 1 group, 1 serie, %d events\n",
		len(seedProfiles), len(seedEvents))
	return nil
}
