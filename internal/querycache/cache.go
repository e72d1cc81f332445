// Package querycache provides a keyed result cache with staleness
// windows, request coalescing, retry with backoff and explicit
// invalidation, modeled on the data-fetching layer it replaces.
package querycache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// FetchFunc loads the value for a key.
type FetchFunc func(ctx context.Context) (any, error)

// Options configure a Cache.
type Options struct {
	// StaleAfter is the staleness window: a read past it still returns
	// the cached value but triggers a background refetch.
	StaleAfter time.Duration
	// EvictAfter is the eviction window: a read past it is a full miss.
	EvictAfter time.Duration
	// MaxAttempts caps fetch attempts, including the first.
	MaxAttempts int
	// Backoff is the initial retry delay; it doubles per attempt.
	Backoff time.Duration
	// Retryable exempts error kinds from retry. Nil retries everything.
	Retryable func(error) bool
}

func (o Options) withDefaults() Options {
	if o.StaleAfter <= 0 {
		o.StaleAfter = 2 * time.Minute
	}
	if o.EvictAfter <= 0 {
		o.EvictAfter = 5 * time.Minute
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Backoff <= 0 {
		o.Backoff = 500 * time.Millisecond
	}
	return o
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

type inflight struct {
	done  chan struct{}
	value any
	err   error
}

// Cache is a stale-while-revalidate query cache. At most one fetch per
// key is in flight at a time; concurrent requesters share its result.
type Cache struct {
	opts Options

	mu        sync.Mutex
	entries   map[string]*cacheEntry
	inflights map[string]*inflight
	// gens guard installs: any mutation of a key bumps its generation,
	// so a fetch abandoned by invalidation or removal cannot clobber
	// newer state.
	gens map[string]uint64

	now func() time.Time
}

// New creates a cache with the given options.
func New(opts Options) *Cache {
	return &Cache{
		opts:      opts.withDefaults(),
		entries:   make(map[string]*cacheEntry),
		inflights: make(map[string]*inflight),
		gens:      make(map[string]uint64),
		now:       time.Now,
	}
}

// Fetch returns the cached value for key, or loads it with fn.
//
// Fresh hits return without fetching. Stale hits return the last known
// value immediately and trigger exactly one background refetch. Misses
// join an in-flight fetch when one exists, otherwise start one. The
// fetch itself runs detached from ctx: cancelling one waiter abandons
// only that wait, never the shared fetch.
func (c *Cache) Fetch(ctx context.Context, key string, fn FetchFunc) (any, error) {
	c.mu.Lock()

	now := c.now()
	e := c.entries[key]
	if e != nil && now.Sub(e.fetchedAt) >= c.opts.EvictAfter {
		delete(c.entries, key)
		e = nil
	}

	if e != nil {
		if !e.stale && now.Sub(e.fetchedAt) < c.opts.StaleAfter {
			value := e.value
			c.mu.Unlock()
			return value, nil
		}
		// Stale: serve the old value, refresh in the background.
		value := e.value
		if c.inflights[key] == nil {
			c.startFetch(key, fn)
		}
		c.mu.Unlock()
		return value, nil
	}

	fl := c.inflights[key]
	if fl == nil {
		fl = c.startFetch(key, fn)
	}
	c.mu.Unlock()

	select {
	case <-fl.done:
		return fl.value, fl.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// startFetch launches the single fetch for key. Caller holds the lock.
func (c *Cache) startFetch(key string, fn FetchFunc) *inflight {
	fl := &inflight{done: make(chan struct{})}
	c.inflights[key] = fl
	gen := c.gens[key]

	go func() {
		value, err := c.fetchWithRetry(fn)

		c.mu.Lock()
		if c.inflights[key] == fl {
			delete(c.inflights, key)
		}
		if err == nil && c.gens[key] == gen {
			c.entries[key] = &cacheEntry{value: value, fetchedAt: c.now()}
		}
		c.mu.Unlock()

		fl.value = value
		fl.err = err
		close(fl.done)
	}()
	return fl
}

// fetchWithRetry runs fn with exponential backoff up to MaxAttempts,
// honouring the retryable predicate.
func (c *Cache) fetchWithRetry(fn FetchFunc) (any, error) {
	delay := c.opts.Backoff
	var value any
	var err error
	for attempt := 1; ; attempt++ {
		value, err = fn(context.Background())
		if err == nil {
			return value, nil
		}
		if c.opts.Retryable != nil && !c.opts.Retryable(err) {
			return nil, err
		}
		if attempt >= c.opts.MaxAttempts {
			return nil, err
		}
		time.Sleep(delay)
		delay *= 2
	}
}

// Set stores a value directly (write-through after a mutation).
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[key]++
	c.entries[key] = &cacheEntry{value: value, fetchedAt: c.now()}
}

// Invalidate marks the key immediately stale; the next read serves the
// old value and refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[key]++
	if e := c.entries[key]; e != nil {
		e.stale = true
	}
}

// InvalidatePrefix marks every key under the prefix immediately stale.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.gens[key]++
			e.stale = true
		}
	}
	// Keys currently only in flight still need their install guarded.
	for key := range c.inflights {
		if strings.HasPrefix(key, prefix) {
			c.gens[key]++
		}
	}
}

// Remove drops the key entirely; the next read is a full miss.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[key]++
	delete(c.entries, key)
}
