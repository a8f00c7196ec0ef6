package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectField(t *testing.T, cur *Cursor, field string) []any {
	t.Helper()
	var out []any
	for {
		doc, ok := cur.Next()
		if !ok {
			break
		}
		out = append(out, doc[field])
	}
	return out
}

func TestCursor_DefaultOrderIsInsertionOrder(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{{"n": "first"}, {"n": "second"}, {"n": "third"}})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"first", "second", "third"}, collectField(t, cur, "n"))
}

func TestCursor_SortNumericDescending(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{{"n": 3.0}, {"n": 1.0}, {"n": 2.0}})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	require.NoError(t, cur.Sort("n", true))

	assert.Equal(t, []any{3.0, 2.0, 1.0}, collectField(t, cur, "n"))
}

func TestCursor_SortAscendingIsDefaultDirection(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{{"n": 2.0}, {"n": 3.0}, {"n": 1.0}})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	require.NoError(t, cur.Sort("n", false))

	assert.Equal(t, []any{1.0, 2.0, 3.0}, collectField(t, cur, "n"))
}

func TestCursor_SortIsStableOnTies(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{
		{"price": 100.0, "tag": "a"},
		{"price": 100.0, "tag": "b"},
		{"price": 50.0, "tag": "c"},
	})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	require.NoError(t, cur.Sort("price", false))

	assert.Equal(t, []any{"c", "a", "b"}, collectField(t, cur, "tag"),
		"equal keys keep insertion order")
}

func TestCursor_SortByTimeField(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{
		{"at": base.Add(2 * time.Hour), "tag": "late"},
		{"at": base, "tag": "early"},
	})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	require.NoError(t, cur.Sort("at", true))

	assert.Equal(t, []any{"late", "early"}, collectField(t, cur, "tag"))
}

func TestCursor_SortMissingFieldsFirst(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{
		{"n": 1.0, "tag": "has"},
		{"tag": "missing"},
	})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	require.NoError(t, cur.Sort("n", false))

	assert.Equal(t, []any{"missing", "has"}, collectField(t, cur, "tag"))
}

func TestCursor_SortAfterConsumptionFails(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{{"n": 1}, {"n": 2}})

	cur, err := c.Find(nil)
	require.NoError(t, err)

	_, ok := cur.Next()
	require.True(t, ok)

	assert.ErrorIs(t, cur.Sort("n", false), ErrCursorStarted)
}

func TestCursor_NotRestartable(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.Insert(Document{"n": 1})

	cur, err := c.Find(nil)
	require.NoError(t, err)

	_, ok := cur.Next()
	require.True(t, ok)
	_, ok = cur.Next()
	require.False(t, ok)

	// Once the terminal position is reached the cursor stays exhausted.
	_, ok = cur.Next()
	assert.False(t, ok)
}

func TestCursor_LenSurvivesConsumption(t *testing.T) {
	c := NewDatabase().Collection("c")
	c.InsertMany([]Document{{"n": 1}, {"n": 2}})

	cur, err := c.Find(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cur.Len())

	for {
		if _, ok := cur.Next(); !ok {
			break
		}
	}
	assert.Equal(t, 2, cur.Len())
}
