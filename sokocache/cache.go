// Package sokocache is the solved-puzzle cache: once a start position has
// been solved, its LURD solution is kept keyed by the position's Zobrist
// hash so a repeat request never re-runs the search.
package sokocache

import (
	"encoding/gob"
	"io"
	"os"
	"sync"
)

// CachedSolution is one stored solve result. Boxes is kept alongside the
// hash so a hash collision across two different start positions can be
// detected on lookup rather than silently returning the wrong solution.
type CachedSolution struct {
	Boxes []int
	Name  string
	LURD  string
}

// Cache is a hash-bucketed solved-puzzle store, guarded by a RWMutex.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint32][]CachedSolution
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[uint32][]CachedSolution)}
}

// Lookup returns the cached solution for a start position, if one exists
// with a matching box set (to rule out a Zobrist collision).
func (c *Cache) Lookup(hash uint32, boxes []int) (CachedSolution, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, entry := range c.entries[hash] {
		if equalBoxes(entry.Boxes, boxes) {
			return entry, true
		}
	}
	return CachedSolution{}, false
}

// Store records a solved result, appending to the hash bucket rather than
// overwriting it so collisions accumulate instead of evicting each other.
func (c *Cache) Store(hash uint32, entry CachedSolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.entries[hash]
	for i, existing := range bucket {
		if equalBoxes(existing.Boxes, entry.Boxes) {
			bucket[i] = entry
			return
		}
	}
	c.entries[hash] = append(bucket, entry)
}

// Evict removes every entry stored under hash, returning how many were
// removed.
func (c *Cache) Evict(hash uint32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries[hash])
	delete(c.entries, hash)
	return n
}

// Len reports the total number of cached solutions across every bucket.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, bucket := range c.entries {
		n += len(bucket)
	}
	return n
}

func equalBoxes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type cacheDump struct {
	Entries map[uint32][]CachedSolution
}

// SaveToFile gob-encodes the whole cache to path, truncating any existing
// file.
func (c *Cache) SaveToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	c.mu.RLock()
	dump := cacheDump{Entries: make(map[uint32][]CachedSolution, len(c.entries))}
	for h, bucket := range c.entries {
		dump.Entries[h] = append([]CachedSolution(nil), bucket...)
	}
	c.mu.RUnlock()

	return gob.NewEncoder(file).Encode(&dump)
}

// LoadFromFile replaces the cache's contents with whatever is stored at
// path. A missing file is not an error. A truncated file (decoding stops at
// an EOF variant) is deleted and nil is returned, leaving the cache as it
// was; any other decode error is returned to the caller.
func (c *Cache) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var dump cacheDump
	if err := gob.NewDecoder(file).Decode(&dump); err != nil {
		if isEOFError(err) {
			file.Close()
			os.Remove(path)
			return nil
		}
		return err
	}

	c.mu.Lock()
	if dump.Entries != nil {
		c.entries = dump.Entries
	}
	c.mu.Unlock()
	return nil
}

func isEOFError(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
