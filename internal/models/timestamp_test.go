package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	orig := time.Date(2025, 6, 14, 18, 30, 0, 123456789, time.UTC)

	ts := TimestampFromTime(orig)
	require.Equal(t, orig.Unix(), ts.Seconds)
	require.Equal(t, int32(123456789), ts.Nanos)

	assert.True(t, orig.Equal(ts.Time()))
}

func TestTimestampBefore(t *testing.T) {
	a := Timestamp{Seconds: 100, Nanos: 0}
	b := Timestamp{Seconds: 100, Nanos: 5}
	c := Timestamp{Seconds: 101, Nanos: 0}

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, a.Before(a))
}
