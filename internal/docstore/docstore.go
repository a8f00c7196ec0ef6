// Package docstore implements the embedded in-memory document store backing
// StayHub. It emulates the subset of a document-database API the route
// handlers rely on: equality, identifier and regex-substring predicates,
// lazy optionally-sorted cursors, and an atomic check-then-insert.
//
// Collections keep no state outside the process and are never persisted.
// Every exported Collection operation is a single critical section, so
// operations issued by one caller observe a total order matching call order.
package docstore

import "sync"

// Database is a named set of collections. A collection is created on first
// reference to its name and lives for the lifetime of the process.
//
// The database is an injected dependency of the services that use it; there
// is deliberately no package-level instance.
type Database struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

func NewDatabase() *Database {
	return &Database{collections: make(map[string]*Collection)}
}

// Collection returns the collection with the given name, creating it if it
// does not exist yet.
func (db *Database) Collection(name string) *Collection {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.collections[name]
	if !ok {
		c = &Collection{name: name}
		db.collections[name] = c
	}
	return c
}
