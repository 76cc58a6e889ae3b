package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want EventType
	}{
		{"in person", "in_person", EventTypeInPerson},
		{"online", "online", EventTypeOnline},
		{"hybrid", "hybrid", EventTypeHybrid},
		{"unknown falls back", "INVALID_TYPE", EventTypeInPerson},
		{"empty falls back", "", EventTypeInPerson},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseEventType(tc.in))
		})
	}
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Visibility
	}{
		{"public", "public", VisibilityPublic},
		{"private", "private", VisibilityPrivate},
		{"unknown falls back", "SECRET", VisibilityPublic},
		{"empty falls back", "", VisibilityPublic},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseVisibility(tc.in))
		})
	}
}
