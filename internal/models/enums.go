package models

// EventType classifies how an event is attended.
type EventType string

const (
	EventTypeInPerson EventType = "in_person"
	EventTypeOnline   EventType = "online"
	EventTypeHybrid   EventType = "hybrid"
)

// ParseEventType maps a stored name to an EventType. Unrecognized names
// (including the empty string) fall back to EventTypeInPerson so a stale or
// corrupted row never fails to decode. Every call site shares this one
// fallback policy.
func ParseEventType(s string) EventType {
	switch EventType(s) {
	case EventTypeInPerson, EventTypeOnline, EventTypeHybrid:
		return EventType(s)
	default:
		return EventTypeInPerson
	}
}

// Visibility controls who may discover an event or serie.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility maps a stored name to a Visibility, falling back to
// VisibilityPublic for unrecognized names.
func ParseVisibility(s string) Visibility {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityPrivate:
		return Visibility(s)
	default:
		return VisibilityPublic
	}
}
