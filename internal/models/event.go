// Package models defines the domain objects mirrored into the local cache:
// events, event series, user profiles and groups, plus the value types and
// closed enumerations they share. These are the shapes the sync and
// presentation layers exchange; the flat storable records live next to each
// store implementation.
package models

// Event is a single scheduled event as owned by the backend.
type Event struct {
	// EventID is the globally unique identifier assigned by the backend.
	EventID string

	Title       string
	Description string

	// Location is absent for events without a fixed place.
	Location *Location

	// Date is when the event starts.
	Date Timestamp

	// Duration is the planned length in minutes.
	Duration int64

	MaxParticipants int64

	// Participants holds the UIDs of joined users.
	Participants []string

	OwnerID    string
	Type       EventType
	Visibility Visibility

	// PartOfSerie marks events generated from a serie.
	PartOfSerie bool

	// GroupID links the event to a group; empty when standalone.
	GroupID string
}

// Serie is a recurring event template with the events spawned from it.
type Serie struct {
	SerieID string

	Title       string
	Description string

	// Date is when the serie starts.
	Date Timestamp

	// LastEventEndTime is the end of the final generated event, once known.
	LastEventEndTime *Timestamp

	Participants []string
	EventIDs     []string

	MaxParticipants int64
	OwnerID         string
	Visibility      Visibility

	// GroupID links the serie to a group; empty when standalone.
	GroupID string
}

// Profile is a user profile as owned by the backend.
type Profile struct {
	UID      string
	Username string
	Email    string

	PhotoURL    string
	DateOfBirth string
	Country     string
	Bio         string

	// FCMToken is the push registration token last reported by the user.
	FCMToken string

	Interests []string

	EventsJoined int64
	Followers    int64
	Following    int64

	CreatedAt *Timestamp
	UpdatedAt *Timestamp
}

// Group is a community of users sharing events and series.
type Group struct {
	ID          string
	Name        string
	Category    string
	Description string
	OwnerID     string
	PhotoURL    string

	MemberIDs []string
	EventIDs  []string
	SerieIDs  []string
}
