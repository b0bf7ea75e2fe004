package domain

import (
	"bytes"
	"encoding/json"
	"maps"
)

// IDField is the reserved document field holding the store-assigned id.
const IDField = "id"

// Document is an open-ended JSON object. The store assigns the reserved
// "id" field at insert time and never reassigns it afterwards.
type Document map[string]any

// ID returns the document id. ok is false when the field is absent or not
// numeric. Decoded JSON carries numbers as float64, freshly inserted
// documents carry int64; both are accepted.
func (d Document) ID() (int64, bool) {
	switch v := d[IDField].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

// Clone returns a copy of the document that shares no top-level storage
// with the original. Nested values are not deep-copied.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	return Document(maps.Clone(map[string]any(d)))
}

// Matches reports whether every field of query is present in d with an
// equal value. A nil or empty query matches any document. Fields missing
// from d never match.
func (d Document) Matches(query Document) bool {
	for k, want := range query {
		got, ok := d[k]
		if !ok || !equalValue(got, want) {
			return false
		}
	}
	return true
}

// equalValue compares two JSON-ish values through their canonical JSON
// encoding, so int 25 from a caller equals float64 25 from a decoded file.
// Map keys marshal in sorted order, making the comparison deterministic.
func equalValue(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
