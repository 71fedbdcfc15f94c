package pythagoras

import "fmt"

// CalcKey encodes (width, heightFactor, lean) as a cache key. Each value is
// rounded to 2 decimal places before formatting, which collapses sub-pixel
// pointer jitter into a bounded number of distinct keys.
func CalcKey(width, heightFactor, lean float64) string {
	return fmt.Sprintf("%.2f:%.2f:%.2f", width, heightFactor, lean)
}

// CalcStats holds cache effectiveness counters.
type CalcStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// calcEntry is one cached result with its position in the LRU list.
type calcEntry struct {
	key        string
	value      CalcResult
	prev, next *calcEntry
}

// CalcCache memoizes Solve results under a capacity bound with LRU eviction.
// The same width recurs across many subtrees at the same depth and across
// rebuilds triggered by unrelated state changes, so hit rates are high even
// for small capacities.
//
// Not safe for concurrent use; pythagoras is single-threaded and unlocked.
// A caller adding multi-threaded rendering must synchronize access or take
// immutable snapshots.
type CalcCache struct {
	capacity int
	entries  map[string]*calcEntry
	head     *calcEntry // most recently used
	tail     *calcEntry // least recently used

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewCalcCache creates a cache holding at most capacity results.
// If capacity <= 0, DefaultCacheCapacity is used.
func NewCalcCache(capacity int) *CalcCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CalcCache{
		capacity: capacity,
		entries:  make(map[string]*calcEntry),
	}
}

// GetOrCompute returns the cached result for the rounded key of
// (width, heightFactor, lean), invoking Solve and storing on miss.
// A hit moves the entry to the front of the LRU list and does not grow
// the cache.
func (c *CalcCache) GetOrCompute(width, heightFactor, lean float64) CalcResult {
	key := CalcKey(width, heightFactor, lean)

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.moveToFront(e)
		return e.value
	}

	c.misses++
	value := Solve(width, heightFactor, lean)

	for len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	e := &calcEntry{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)
	return value
}

// Get returns the cached result for a key without computing on miss.
// Does not update recency.
func (c *CalcCache) Get(key string) (CalcResult, bool) {
	e, ok := c.entries[key]
	if !ok {
		return CalcResult{}, false
	}
	return e.value, true
}

// Len returns the number of cached results.
func (c *CalcCache) Len() int {
	return len(c.entries)
}

// Capacity returns the maximum number of cached results.
func (c *CalcCache) Capacity() int {
	return c.capacity
}

// Clear removes all entries. Counters are preserved.
func (c *CalcCache) Clear() {
	c.entries = make(map[string]*calcEntry)
	c.head = nil
	c.tail = nil
}

// Stats returns current cache effectiveness counters.
func (c *CalcCache) Stats() CalcStats {
	total := c.hits + c.misses
	var rate float64
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return CalcStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   rate,
	}
}

// --- LRU list ---

func (c *CalcCache) pushFront(e *calcEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *CalcCache) unlink(e *calcEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *CalcCache) moveToFront(e *calcEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *CalcCache) evictOldest() {
	oldest := c.tail
	if oldest == nil {
		return
	}
	c.unlink(oldest)
	delete(c.entries, oldest.key)
	c.evictions++
}
