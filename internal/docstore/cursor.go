package docstore

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrCursorStarted is returned by Sort once iteration has begun.
var ErrCursorStarted = errors.New("cursor: sort after iteration started")

// Cursor is a one-pass, forward-only view over the documents that matched a
// Find call. The snapshot is taken when Find runs; later mutations of the
// collection are not visible through an existing cursor.
//
// A cursor is not safe for concurrent use and cannot be restarted.
type Cursor struct {
	docs    []Document
	pos     int
	started bool
}

// Sort orders the snapshot by the given field before consumption begins.
// Ascending by default; ties keep their original insertion order (the sort
// is stable). Calling Sort after the first Next is an error.
func (c *Cursor) Sort(field string, descending bool) error {
	if c.started {
		return ErrCursorStarted
	}
	sort.SliceStable(c.docs, func(i, j int) bool {
		cmp := compareValues(c.docs[i][field], c.docs[j][field])
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return nil
}

// Next returns the next document, or ok=false once the cursor is exhausted.
func (c *Cursor) Next() (Document, bool) {
	c.started = true
	if c.pos >= len(c.docs) {
		return nil, false
	}
	doc := c.docs[c.pos]
	c.pos++
	return doc, true
}

// Len reports how many documents the snapshot holds, consumed or not.
func (c *Cursor) Len() int {
	return len(c.docs)
}

// compareValues imposes a total order across the supported value kinds so
// sorting never panics on mixed fields: nil < bool < number < time < string,
// with anything else ordered by its string rendering.
func compareValues(a, b any) int {
	ka, kb := kindRank(a), kindRank(b)
	if ka != kb {
		return ka - kb
	}
	switch ka {
	case rankNil:
		return 0
	case rankBool:
		av, bv := a.(bool), b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case rankNumber:
		av, bv := asFloat(a), asFloat(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case rankTime:
		av, bv := a.(time.Time), b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		default:
			return 0
		}
	default:
		as, bs := stringKey(a), stringKey(b)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	}
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankTime
	rankString
)

func kindRank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int, int32, int64, float32, float64:
		return rankNumber
	case time.Time:
		return rankTime
	default:
		return rankString
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func stringKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
