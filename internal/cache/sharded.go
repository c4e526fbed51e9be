package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount must be a power of 2 for selection by mask.
	ShardCount = 16
	shardMask  = ShardCount - 1

	// DefaultEntries is the per-shard entry limit used for non-positive
	// limits.
	DefaultEntries = 64

	// DefaultBytes is the per-shard byte limit used for non-positive limits.
	DefaultBytes = 4 << 20
)

// Entry is a rendered response body.
type Entry struct {
	ContentType string
	Body        []byte
}

// Size returns the bytes the entry counts against its shard's budget.
func (e Entry) Size() int {
	return len(e.Body) + len(e.ContentType)
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Bytes     int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Cache is a sharded LRU of response bodies.
type Cache struct {
	shards     [ShardCount]*shard
	maxEntries int // per shard
	maxBytes   int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*node
	lru     lruList
}

// New returns a cache holding at most maxEntries entries and maxBytes body
// bytes in each of its ShardCount shards. An entry larger than maxBytes is
// never stored.
func New(maxEntries, maxBytes int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultEntries
	}
	if maxBytes <= 0 {
		maxBytes = DefaultBytes
	}
	c := &Cache{maxEntries: maxEntries, maxBytes: maxBytes}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]*node)}
	}
	return c
}

// hashKey computes the FNV-1a hash of a key.
func hashKey(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	return h.Sum64()
}

func (c *Cache) shardFor(key string) *shard {
	return c.shards[hashKey(key)&shardMask]
}

// Get returns the entry for key and marks it recently used.
func (c *Cache) Get(key string) (Entry, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	n, ok := s.entries[key]
	if ok {
		s.lru.moveToFront(n)
	}
	s.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return Entry{}, false
	}
	c.hits.Add(1)
	return n.entry, true
}

// Set stores e under key, evicting least recently used entries of the same
// shard until both limits hold.
func (c *Cache) Set(key string, e Entry) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.insert(s, key, e)
}

// insert must be called with s.mu held.
func (c *Cache) insert(s *shard, key string, e Entry) {
	if old, ok := s.entries[key]; ok {
		s.lru.remove(old)
		delete(s.entries, key)
	}
	if e.Size() > c.maxBytes {
		return
	}
	for s.lru.len >= c.maxEntries || s.lru.bytes+e.Size() > c.maxBytes {
		oldest := s.lru.oldest()
		if oldest == nil {
			break
		}
		s.lru.remove(oldest)
		delete(s.entries, oldest.key)
		c.evictions.Add(1)
	}
	n := &node{key: key, entry: e}
	s.lru.pushFront(n)
	s.entries[key] = n
}

// GetOrCreate returns the cached entry for key or builds it with create.
// The shard stays locked while create runs, so concurrent requests for the
// same key render once. Errors from create are returned and not cached.
func (c *Cache) GetOrCreate(key string, create func() (Entry, error)) (e Entry, hit bool, err error) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[key]; ok {
		s.lru.moveToFront(n)
		c.hits.Add(1)
		return n.entry, true, nil
	}
	c.misses.Add(1)

	e, err = create()
	if err != nil {
		return Entry{}, false, err
	}
	c.insert(s, key, e)
	return e, false, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache) Delete(key string) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.remove(n)
	delete(s.entries, key)
	return true
}

// Clear removes every entry. Counters are kept.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*node)
		s.lru = lruList{}
		s.mu.Unlock()
	}
}

// Len returns the number of entries across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.lru.len
		s.mu.Unlock()
	}
	return total
}

// Stats returns current counters.
func (c *Cache) Stats() Stats {
	st := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	for _, s := range c.shards {
		s.mu.Lock()
		st.Len += s.lru.len
		st.Bytes += s.lru.bytes
		s.mu.Unlock()
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total)
	}
	return st
}
