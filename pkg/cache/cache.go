// Package cache is an in-process LRU with per-entry TTL for order reads.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by result (hit, miss, expired).",
	}, []string{"cache", "result"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped for capacity or expiry.",
	}, []string{"cache", "reason"})
)

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	cache map[string]*list.Element
}

type Option func(*LRUCache)

// WithName sets the cache label on metrics.
func WithName(name string) Option {
	return func(c *LRUCache) { c.name = name }
}

func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.interval = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		name:     "default",
		capacity: capacity,
		ttl:      ttl,
		interval: defaultJanitorInterval,
		now:      time.Now,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		cacheLookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	ent := ele.Value.(*entry)
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		cacheLookups.WithLabelValues(c.name, "expired").Inc()
		return nil, false
	}
	c.ll.MoveToFront(ele)
	cacheLookups.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)
	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.cache[key] = c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})

	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
		cacheEvictions.WithLabelValues(c.name, "capacity").Inc()
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.cache, e.Value.(*entry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start runs the janitor in the background until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// cleanup drops expired entries and returns how many were removed.
func (c *LRUCache) cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var removed int
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
			removed++
		}
		e = prev
	}
	if removed > 0 {
		cacheEvictions.WithLabelValues(c.name, "expired").Add(float64(removed))
	}
	return removed
}
