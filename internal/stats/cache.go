package stats

import (
	"encoding/binary"
	"hash/fnv"
	"sync"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// Fingerprint returns a content hash of the trip collection, built from
// each trip's ID and UpdatedAt. Any insert, edit, or delete changes the
// fingerprint, so a snapshot cached under the old value is never served
// for the new collection.
func Fingerprint(trips []domain.Trip) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(trips)))
	h.Write(buf[:])
	for _, t := range trips {
		h.Write(t.ID[:])
		binary.BigEndian.PutUint64(buf[:], uint64(t.UpdatedAt.UnixNano()))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// SnapshotCache memoizes one computed value keyed on a collection
// fingerprint. Aggregation is always a full recomputation over the whole
// collection; the cache only avoids repeating it while nothing changed.
// Safe for concurrent use.
type SnapshotCache[T any] struct {
	mu    sync.Mutex
	key   uint64
	valid bool
	value T
}

// Get returns the cached value if it was stored under the same key.
func (c *SnapshotCache[T]) Get(key uint64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.key != key {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Put stores value under key, replacing any previous entry.
func (c *SnapshotCache[T]) Put(key uint64, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.value = value
	c.valid = true
}

// Invalidate drops the cached value. Mutating services call this after
// any write so the next read recomputes even if the fingerprint were to
// collide.
func (c *SnapshotCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
