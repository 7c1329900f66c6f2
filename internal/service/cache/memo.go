// Package cache provides an in-process TTL memoization layer for expensive loads.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/guttosm/portfolio-service/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a produced value stays fresh when no TTL is configured.
const DefaultTTL = 5 * time.Minute

const defaultName = "memo"

// memoEntry is a produced value and the moment it was stored.
type memoEntry[T any] struct {
	data      T
	timestamp time.Time
}

// Memo caches the results of a Producer per key for a fixed TTL.
// Failed productions are never stored. It implements Cache and Inspector.
type Memo[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*memoEntry[T]
	order []string

	name  string
	now   func() time.Time
	group *singleflight.Group
}

// Option configures a Memo.
type Option func(*options)

type options struct {
	name         string
	now          func() time.Time
	singleFlight bool
}

// WithName labels the cache in metrics and logs.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSingleFlight coalesces concurrent misses on the same key into one producer call.
func WithSingleFlight() Option {
	return func(o *options) {
		o.singleFlight = true
	}
}

// NewMemo creates an empty cache. A non-positive ttl uses DefaultTTL.
func NewMemo[T any](ttl time.Duration, opts ...Option) *Memo[T] {
	o := options{name: defaultName, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Memo[T]{
		ttl:   ttl,
		items: make(map[string]*memoEntry[T]),
		name:  o.name,
		now:   o.now,
	}
	if o.singleFlight {
		m.group = &singleflight.Group{}
	}
	return m
}

// Name returns the label used in metrics.
func (m *Memo[T]) Name() string {
	return m.name
}

// TTL returns the freshness window.
func (m *Memo[T]) TTL() time.Duration {
	return m.ttl
}

// Get returns the cached value for key if it is younger than the TTL.
// Otherwise it calls producer, stores a successful result and returns it.
// A producer error is returned as is and leaves the cache untouched.
func (m *Memo[T]) Get(ctx context.Context, key string, producer Producer[T]) (T, error) {
	if value, ok := m.lookup(key); ok {
		metrics.RecordCacheOperation(m.name, "get", "hit")
		return value, nil
	}
	metrics.RecordCacheOperation(m.name, "get", "miss")

	if m.group == nil {
		return m.produce(ctx, key, producer)
	}

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		return m.produce(ctx, key, producer)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	// a nil interface result comes back as an untyped nil
	value, _ := v.(T)
	return value, nil
}

// lookup returns a fresh entry's data.
func (m *Memo[T]) lookup(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.items[key]
	if !ok || m.now().Sub(entry.timestamp) >= m.ttl {
		var zero T
		return zero, false
	}
	return entry.data, true
}

// produce runs the producer outside the lock and stores a successful result.
func (m *Memo[T]) produce(ctx context.Context, key string, producer Producer[T]) (T, error) {
	value, err := producer(ctx)
	if err != nil {
		metrics.RecordCacheOperation(m.name, "produce", "error")
		var zero T
		return zero, err
	}

	m.mu.Lock()
	if _, exists := m.items[key]; !exists {
		m.order = append(m.order, key)
	}
	m.items[key] = &memoEntry[T]{data: value, timestamp: m.now()}
	size := len(m.items)
	m.mu.Unlock()

	metrics.RecordCacheOperation(m.name, "produce", "success")
	metrics.UpdateCacheSize(m.name, size)
	return value, nil
}

// Evict removes key. Missing keys are ignored.
func (m *Memo[T]) Evict(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; !ok {
		return
	}
	delete(m.items, key)
	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}

	metrics.RecordCacheOperation(m.name, "evict", "success")
	metrics.UpdateCacheSize(m.name, len(m.items))
}

// Clear removes every entry.
func (m *Memo[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*memoEntry[T])
	m.order = nil

	metrics.RecordCacheOperation(m.name, "clear", "success")
	metrics.UpdateCacheSize(m.name, 0)
}

// Stats returns the current keys in insertion order with their ages.
func (m *Memo[T]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	stats := Stats{
		Size:    len(m.items),
		Keys:    make([]string, 0, len(m.order)),
		Entries: make([]EntryStat, 0, len(m.order)),
	}
	for _, key := range m.order {
		age := int64(now.Sub(m.items[key].timestamp) / time.Second)
		if age < 0 {
			age = 0
		}
		stats.Keys = append(stats.Keys, key)
		stats.Entries = append(stats.Entries, EntryStat{Key: key, Age: age})
	}
	return stats
}
