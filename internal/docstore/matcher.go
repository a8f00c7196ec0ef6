package docstore

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/stayhub-dev/stayhub/internal/common"
)

// matchDocument reports whether doc satisfies every entry of p.
//
// Unsupported condition shapes (any map-like value that is not a Regex) are
// rejected with common.ErrValidation instead of being silently ignored, so a
// caller passing a bogus operator hears about it immediately.
func matchDocument(doc Document, p Predicate) (bool, error) {
	for field, cond := range p {
		ok, err := matchField(doc, field, cond)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchField(doc Document, field string, cond any) (bool, error) {
	switch c := cond.(type) {
	case Regex:
		re, err := compileRegex(c)
		if err != nil {
			return false, err
		}
		return re.MatchString(fieldString(doc[field])), nil
	case Predicate, Document, map[string]any:
		return false, fmt.Errorf("%w: unsupported operator for field %q", common.ErrValidation, field)
	default:
		if field == IDField {
			return matchID(doc, cond), nil
		}
		return equalValues(doc[field], cond), nil
	}
}

// matchID resolves identifier predicates. String values are parsed as a
// canonical UUID first, falling back to raw string comparison, because
// callers routinely pass identifiers straight from URL parameters.
func matchID(doc Document, cond any) bool {
	id, ok := doc.ID()
	if !ok {
		return false
	}
	switch v := cond.(type) {
	case uuid.UUID:
		return id == v
	case string:
		if parsed, err := uuid.Parse(v); err == nil {
			return id == parsed
		}
		return id.String() == v
	default:
		return false
	}
}

func compileRegex(c Regex) (*regexp.Regexp, error) {
	pattern := c.Pattern
	if c.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad regex %q: %v", common.ErrValidation, c.Pattern, err)
	}
	return re, nil
}

// fieldString renders a field value for regex matching. Missing fields and
// nils render as the empty string.
func fieldString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// equalValues is canonical equality: time values compare with Equal, all
// other kinds with deep equality. There is no coercion across kinds, so
// int(2) never equals float64(2).
func equalValues(a, b any) bool {
	if bt, ok := b.(time.Time); ok {
		at, ok := a.(time.Time)
		return ok && at.Equal(bt)
	}
	return reflect.DeepEqual(a, b)
}
