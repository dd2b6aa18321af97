package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// entryCost is a conservative fixed-size estimate (bytes) of one
// DistanceCache entry: a composite key plus a float64 value plus the
// cache's own bookkeeping overhead. Distance-cache entries don't vary
// enough in size to justify measuring each one exactly.
const entryCost = 64

// DistanceCache is an in-process LRU bounded by a total byte budget
// (MAXMEM, §6) rather than an entry count, wrapping
// hashicorp/golang-lru's count-based Cache with its own eviction loop —
// golang-lru has no notion of a byte budget, so this package supplies
// one. Parameterized over the key type: package engine instantiates it as
// the CES-distance cache (§4.9). PairKey can key a pairwise
// concept-distance cache, but no such cache is built in this module.
type DistanceCache[K comparable] struct {
	mu     sync.Mutex
	lru    *lru.Cache[K, float64]
	sizes  map[K]int
	total  int
	maxmem int
}

// NewDistanceCache builds a DistanceCache capped at maxmem bytes.
func NewDistanceCache[K comparable](maxmem int) (*DistanceCache[K], error) {
	// golang-lru requires a positive count capacity even though eviction
	// here is actually governed by byte budget; size it generously so the
	// count cap itself is never the active constraint.
	backing, err := lru.New[K, float64](1 << 20)
	if err != nil {
		return nil, err
	}

	return &DistanceCache[K]{
		lru:    backing,
		sizes:  make(map[K]int),
		maxmem: maxmem,
	}, nil
}

// Get returns the cached distance for key, if present.
func (c *DistanceCache[K]) Get(key K) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Get(key)
}

// Put records the distance for key, evicting least-recently-used entries
// until the cache is back within its byte budget.
func (c *DistanceCache[K]) Put(key K, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, existed := c.sizes[key]; !existed {
		c.sizes[key] = entryCost
		c.total += entryCost
	}
	c.lru.Add(key, value)

	for c.total > c.maxmem && c.lru.Len() > 0 {
		oldest, _, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		if sz, ok := c.sizes[oldest]; ok {
			c.total -= sz
			delete(c.sizes, oldest)
		}
	}
}

// PairKey identifies an unordered pair of fingerprints — the natural key
// for a pairwise concept-distance cache. Fingerprints are ordered before
// storing so (a, b) and (b, a) share an entry.
type PairKey struct {
	A, B Fingerprint
}

// NewPairKey builds a PairKey with its fingerprints in a canonical order.
func NewPairKey(a, b Fingerprint) PairKey {
	if a > b {
		a, b = b, a
	}

	return PairKey{A: a, B: b}
}

// Len reports the number of entries currently cached.
func (c *DistanceCache[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}
