package docstore

import (
	"sync"

	"github.com/google/uuid"
	"github.com/stayhub-dev/stayhub/internal/common"
)

// Collection is an insertion-ordered sequence of documents guarded by a
// single mutex. Identifiers are unique within a collection for its whole
// lifetime and are never reused, even after a delete.
type Collection struct {
	name string
	mu   sync.RWMutex
	docs []Document
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// newDocumentID produces a fresh opaque identifier. uuid.New panics if the
// randomness source is unavailable, which is the required behavior: an
// insert must abort rather than proceed with a degraded identifier.
func newDocumentID() uuid.UUID {
	return uuid.New()
}

// Insert stores a copy of doc with a freshly assigned identifier and returns
// that identifier. It appends in insertion order and never fails short of
// resource exhaustion.
func (c *Collection) Insert(doc Document) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(doc)
}

func (c *Collection) insertLocked(doc Document) uuid.UUID {
	stored := doc.clone()
	if stored == nil {
		stored = Document{}
	}
	id := newDocumentID()
	stored[IDField] = id
	c.docs = append(c.docs, stored)
	return id
}

// InsertMany inserts each document in input order. It is not atomic: each
// insert commits independently.
func (c *Collection) InsertMany(docs []Document) {
	for _, doc := range docs {
		c.Insert(doc)
	}
}

// InsertIfAbsent atomically checks p and, when nothing matches, inserts doc.
// It returns common.ErrDuplicate when a matching document already exists.
// This is the single critical section callers need to close the
// check-then-insert race of separate FindOne/Insert calls.
func (c *Collection) InsertIfAbsent(p Predicate, doc Document) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.docs {
		ok, err := matchDocument(existing, p)
		if err != nil {
			return uuid.Nil, err
		}
		if ok {
			return uuid.Nil, common.ErrDuplicate
		}
	}
	return c.insertLocked(doc), nil
}

// FindOne returns a copy of the first document (in collection order)
// matching p, or common.ErrNotFound.
func (c *Collection) FindOne(p Predicate) (Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		ok, err := matchDocument(doc, p)
		if err != nil {
			return nil, err
		}
		if ok {
			return doc.clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

// Find returns a cursor over a snapshot of the documents matching p, taken
// now. Mutating the collection afterwards does not affect the cursor.
func (c *Collection) Find(p Predicate) (*Cursor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var snapshot []Document
	for _, doc := range c.docs {
		ok, err := matchDocument(doc, p)
		if err != nil {
			return nil, err
		}
		if ok {
			snapshot = append(snapshot, doc.clone())
		}
	}
	return &Cursor{docs: snapshot}, nil
}

// Count returns the number of documents matching p without materializing
// them.
func (c *Collection) Count(p Predicate) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, doc := range c.docs {
		ok, err := matchDocument(doc, p)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// UpdateOne merges patch into the first document matching p and reports how
// many documents matched (0 or 1). The merge is a shallow field overwrite;
// the identifier field cannot be patched. The stored document is replaced
// rather than mutated in place, so snapshots held by existing cursors keep
// the pre-update version.
func (c *Collection) UpdateOne(p Predicate, patch Document) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		ok, err := matchDocument(doc, p)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		merged := doc.clone()
		for k, v := range patch {
			if k == IDField {
				continue
			}
			merged[k] = v
		}
		c.docs[i] = merged
		return 1, nil
	}
	return 0, nil
}

// DeleteOne removes the first document matching p and reports how many were
// deleted (0 or 1).
func (c *Collection) DeleteOne(p Predicate) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		ok, err := matchDocument(doc, p)
		if err != nil {
			return 0, err
		}
		if ok {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
