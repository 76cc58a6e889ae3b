// Package codec implements the serialization contract for list columns:
// a JSON array of strings, validated in one place so malformed stored values
// degrade to the documented fallback instead of failing wherever the field
// happens to be read.
package codec

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/eventcache/internal/logging"
)

// EncodeStringList encodes values as a JSON array of strings. A nil or empty
// list encodes to "[]". Encoding is lossless and order-preserving for
// arbitrary string content, including whitespace, reserved characters and
// multi-byte text.
func EncodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		// json.Marshal cannot fail for []string; keep the column well-formed anyway.
		return "[]"
	}
	return string(data)
}

// DecodeStringList decodes a stored list column. Malformed input is not an
// error: it is logged and substituted with an empty list, so the read path
// degrades gracefully instead of corrupting. The entity/key/field triple
// identifies the offending row in the log.
func DecodeStringList(log logging.Logger, entity, key, field, raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		log.Warn(context.Background(), "malformed list column, substituting empty list",
			"entity", entity, "key", key, "field", field, "error", err)
		return []string{}
	}
	if values == nil {
		// JSON null decodes to a nil slice.
		values = []string{}
	}
	return values
}
