package equity

import (
	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/bgkit/gammon/board"
)

// Rough bytes per cache entry: map slot plus ring slot.
const cacheEntrySize = 64

const (
	minCacheCapacity = 1 << 14
	maxCacheCapacity = 1 << 22
	// Fraction of system memory used when no capacity is configured.
	cacheMemoryFraction = 0.005
)

// Cache memoizes position evaluations. It is a fixed-capacity FIFO: once
// full, the oldest stored entry is evicted first. The engine runs a single
// call path per session, so no locking is needed.
type Cache struct {
	entries  map[uint64]float64
	order    []uint64
	head     int
	capacity int

	lookups uint64
	hits    uint64
	created uint64
}

// NewCache builds a cache with the given capacity. A capacity of zero or
// below derives one from a fraction of system memory, the same way the
// transposition table sizes itself in comparable engines.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		desired := int(cacheMemoryFraction * float64(memory.TotalMemory()) / cacheEntrySize)
		capacity = desired
		if capacity < minCacheCapacity {
			capacity = minCacheCapacity
		}
		if capacity > maxCacheCapacity {
			capacity = maxCacheCapacity
		}
		log.Debug().Int("capacity", capacity).Int("desired", desired).
			Msg("eval-cache-sized-from-memory")
	}
	return &Cache{
		entries:  make(map[uint64]float64, capacity),
		order:    make([]uint64, 0, capacity),
		capacity: capacity,
	}
}

func (c *Cache) lookup(key uint64) (float64, bool) {
	c.lookups++
	score, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return score, ok
}

func (c *Cache) store(key uint64, score float64) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = score
		return
	}
	if len(c.order) < c.capacity {
		c.order = append(c.order, key)
	} else {
		delete(c.entries, c.order[c.head])
		c.order[c.head] = key
		c.head = (c.head + 1) % c.capacity
	}
	c.entries[key] = score
	c.created++
}

// Clear drops every entry. Clearing never changes engine output, only its
// cost.
func (c *Cache) Clear() {
	clear(c.entries)
	c.order = c.order[:0]
	c.head = 0
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Stats returns lookup, hit and store counters since creation.
func (c *Cache) Stats() (lookups, hits, created uint64) {
	return c.lookups, c.hits, c.created
}

// cacheKey hashes the canonical snapshot encoding plus the point of view.
func cacheKey(pos board.Position, pov board.Player) uint64 {
	enc := pos.Encode()
	var buf [board.EncodedSize + 1]byte
	copy(buf[:], enc[:])
	buf[board.EncodedSize] = byte(pov)
	return xxhash.Sum64(buf[:])
}
