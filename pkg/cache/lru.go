package cache

import (
	"container/list"
	"sync"
	"time"
)

type lruEntry[K comparable, V any] struct {
	key      K
	value    V
	lastUsed time.Time
}

// LRUCache is a thread-safe LRU cache with optional idle expiry.
// Evicted entries are passed to the evict callback after the cache lock is
// released, so the callback may call back into the cache.
type LRUCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// Option configures an LRUCache.
type Option[K comparable, V any] func(*LRUCache[K, V])

// WithTTL expires entries that were not used for d. Zero disables expiry.
func WithTTL[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithEvictCallback registers fn for entries leaving the cache by capacity,
// expiry, Remove or Clear. It is not called when Put replaces a value.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		c.onEvict = fn
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// NewLRUCache creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	c := &LRUCache[K, V]{
		capacity: capacity,
		now:      time.Now,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as recently used.
// Expired entries are evicted and reported as missing.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	entry := elem.Value.(*lruEntry[K, V])
	now := c.now()
	if c.expired(entry, now) {
		evicted = append(evicted, c.removeElement(elem))
		var zero V
		return zero, false
	}

	entry.lastUsed = now
	c.eviction.MoveToFront(elem)
	return entry.value, true
}

// GetOrCreate returns the cached value for key or stores the result of
// create. created reports whether create was called. create runs under the
// cache lock and must not use the cache.
func (c *LRUCache[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		if !c.expired(entry, now) {
			entry.lastUsed = now
			c.eviction.MoveToFront(elem)
			return entry.value, false
		}
		evicted = append(evicted, c.removeElement(elem))
	}

	value = create()
	evicted = append(evicted, c.insert(key, value, now)...)
	return value, true
}

// Put adds or replaces the value for key. It returns the previous value and
// whether one existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		old := entry.value
		entry.value = value
		entry.lastUsed = now
		return old, true
	}

	evicted = c.insert(key, value, now)
	var zero V
	return zero, false
}

// Remove deletes key and returns its value.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	entry := c.removeElement(elem)
	evicted = append(evicted, entry)
	return entry.value, true
}

// Len returns the number of entries, including expired ones not yet pruned.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Prune evicts every expired entry and returns how many were removed.
func (c *LRUCache[K, V]) Prune() int {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl == 0 {
		return 0
	}
	now := c.now()
	// oldest entries sit at the back
	for elem := c.eviction.Back(); elem != nil; {
		entry := elem.Value.(*lruEntry[K, V])
		if !c.expired(entry, now) {
			break
		}
		prev := elem.Prev()
		evicted = append(evicted, c.removeElement(elem))
		elem = prev
	}
	return len(evicted)
}

// Clear removes all entries.
func (c *LRUCache[K, V]) Clear() {
	var evicted []*lruEntry[K, V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.eviction.Front(); elem != nil; elem = elem.Next() {
		evicted = append(evicted, elem.Value.(*lruEntry[K, V]))
	}
	c.items = make(map[K]*list.Element)
	c.eviction.Init()
}

// Must be called with lock held.
func (c *LRUCache[K, V]) insert(key K, value V, now time.Time) []*lruEntry[K, V] {
	c.items[key] = c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value, lastUsed: now})

	var evicted []*lruEntry[K, V]
	for c.eviction.Len() > c.capacity {
		evicted = append(evicted, c.removeElement(c.eviction.Back()))
	}
	return evicted
}

// Must be called with lock held.
func (c *LRUCache[K, V]) removeElement(elem *list.Element) *lruEntry[K, V] {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
	return entry
}

func (c *LRUCache[K, V]) expired(entry *lruEntry[K, V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(entry.lastUsed) > c.ttl
}

func (c *LRUCache[K, V]) notify(entries []*lruEntry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range entries {
		c.onEvict(e.key, e.value)
	}
}
