package models

import "time"

// Timestamp is a (seconds, nanoseconds) instant as the backend serves it.
// The pair is stored and transported as-is so round-trips through the cache
// never lose sub-second precision. A Timestamp is either wholly present or
// wholly absent; its two halves are never nullable individually.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// TimestampFromTime converts a time.Time into a Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Time converts the Timestamp back into a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool {
	if ts.Seconds != other.Seconds {
		return ts.Seconds < other.Seconds
	}
	return ts.Nanos < other.Nanos
}

// Location is a place attached to an event. It is optional as a whole:
// either all three fields are known or the event has no location.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
}
