// Package memo provides an in-process read-through layer for point lookups,
// backed by a sharded, TTL-bound sturdyc client. It sits in front of a store's
// GetByID so hot presentation reads skip SQLite entirely, while writers
// invalidate the affected keys to keep read-your-writes semantics.
package memo

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the sizing of a memo client.
type Config struct {
	// Capacity is the maximum number of memoized lookups.
	Capacity int
	// NumShards controls lock granularity for concurrent access.
	NumShards int
	// TTL bounds how long a lookup may be served without touching the store.
	TTL time.Duration
	// EvictionPercentage is the share of entries evicted when full (1-100).
	EvictionPercentage int
}

// DefaultConfig returns sizing suitable for a single client process.
func DefaultConfig() Config {
	return Config{
		Capacity:           4096,
		NumShards:          64,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	}
}

// withDefaults fills unset sizing fields, so a zero Config is usable.
// sturdyc shards by modulo and would otherwise divide by zero.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Capacity <= 0 {
		c.Capacity = d.Capacity
	}
	if c.NumShards <= 0 {
		c.NumShards = d.NumShards
	}
	if c.TTL <= 0 {
		c.TTL = d.TTL
	}
	if c.EvictionPercentage <= 0 {
		c.EvictionPercentage = d.EvictionPercentage
	}
	return c
}

// lookup carries both the value and its presence, so "not found" is memoized
// as a normal value instead of an error.
type lookup[T any] struct {
	value T
	found bool
}

// FetchByID loads a record from the underlying store.
type FetchByID[T any] func(ctx context.Context, id string) (T, bool, error)

// ByID memoizes a store's point lookups. Bulk invalidation works by bumping a
// generation counter embedded in every cache key: old generations simply stop
// being referenced and age out of the sturdyc client.
type ByID[T any] struct {
	name   string
	client *sturdyc.Client[lookup[T]]
	gen    atomic.Uint64
	fetch  FetchByID[T]
}

// NewByID builds a memo for one store. The name keeps keys of different
// entity kinds disjoint when sizing or debugging. Zero cfg fields fall back
// to DefaultConfig values.
func NewByID[T any](name string, cfg Config, fetch FetchByID[T]) *ByID[T] {
	cfg = cfg.withDefaults()
	client := sturdyc.New[lookup[T]](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)
	return &ByID[T]{name: name, client: client, fetch: fetch}
}

func (m *ByID[T]) key(id string) string {
	return fmt.Sprintf("%s:%d:%s", m.name, m.gen.Load(), id)
}

// Get returns the memoized lookup for id, fetching through to the store on a
// miss. Store errors are never memoized.
func (m *ByID[T]) Get(ctx context.Context, id string) (T, bool, error) {
	res, err := m.client.GetOrFetch(ctx, m.key(id), func(ctx context.Context) (lookup[T], error) {
		value, found, err := m.fetch(ctx, id)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: value, found: found}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return res.value, res.found, nil
}

// Invalidate drops the memoized lookup for a single id.
func (m *ByID[T]) Invalidate(id string) {
	m.client.Delete(m.key(id))
}

// InvalidateAll drops every memoized lookup by moving to a new generation.
func (m *ByID[T]) InvalidateAll() {
	m.gen.Add(1)
}
