// Package engine implements the reconciliation engine: the idempotent
// get-or-create mapping from source records to destination entities, its
// identifier cache, and the backfill and poll drivers that feed it.
package engine

import (
	"sync"
)

// Cache is the in-memory mapping from a logical entity key to a destination
// identifier. Entries live for the process lifetime: once populated for a
// key, the destination is never re-queried for it, so renames or deletions
// at the destination are not detected.
type Cache struct {
	mu    sync.Mutex
	ids   map[string]string
	locks map[string]*sync.Mutex
}

// NewCache creates a new empty identifier cache
func NewCache() *Cache {
	return &Cache{
		ids:   make(map[string]string),
		locks: make(map[string]*sync.Mutex),
	}
}

// Get returns the cached identifier for a key
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.ids[key]
	return id, ok
}

// Put stores the identifier for a key
func (c *Cache) Put(key, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[key] = id
}

// Resolve returns the cached identifier for key, or runs fn to obtain one
// and caches the result. The whole check-then-resolve sequence is serialized
// per key: two concurrent resolutions for the same not-yet-cached entity
// cannot both observe a miss and both create a duplicate at the destination.
func (c *Cache) Resolve(key string, fn func() (string, error)) (string, error) {
	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if id, ok := c.Get(key); ok {
		return id, nil
	}

	id, err := fn()
	if err != nil {
		return "", err
	}
	c.Put(key, id)
	return id, nil
}

// keyLock returns the mutex guarding a single key's get-or-create sequence
func (c *Cache) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	return lock
}

// Len returns the number of cached identifiers
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids)
}
