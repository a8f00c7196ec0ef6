package docstore

import (
	"github.com/google/uuid"
)

// IDField is the reserved identifier field. It is assigned at insert time and
// never reassigned afterwards.
const IDField = "_id"

// Document is the unit of stored data: a mapping from field name to one of a
// small set of value kinds (string, number, bool, time.Time, list, nested
// map, nil). No core operation observes field order, so a plain map is
// sufficient. The matcher handles each kind exhaustively via type switch.
type Document map[string]any

// Predicate selects documents. Each entry is either a literal value (exact
// equality against the field) or a Regex condition. Entries are combined
// with AND; an empty or nil predicate matches every document.
type Predicate map[string]any

// Regex is the only supported operator condition: the field's string value
// must contain a substring matching Pattern. CaseInsensitive toggles a
// case-folding match.
type Regex struct {
	Pattern         string
	CaseInsensitive bool
}

// ID returns the document identifier, if one has been assigned.
func (d Document) ID() (uuid.UUID, bool) {
	id, ok := d[IDField].(uuid.UUID)
	return id, ok
}

// clone returns a shallow copy so callers cannot mutate stored state through
// results (same policy as returning copies from a store dump).
func (d Document) clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
