package cache

import (
	"context"

	"github.com/goliatone/go-wordnet-cache/internal/cacheinfra"
)

// KeySerializer builds a cache key from a method name + arbitrary args.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(method string, args ...any) string
}

// Stats is a snapshot of a cache's counters.
type Stats = cacheinfra.Stats

// FetchFn is the function signature GetOrFetch expects when fetching from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// RecordCache is a bounded map from key to an ordered list of records.
// Implementations are safe for concurrent use and never return or retain the
// caller's slices.
type RecordCache[T any] interface {
	// Get returns a fresh copy of the records stored under key. It never
	// touches the source of truth.
	Get(key string) ([]T, bool)
	// Put stores a copy of records, evicting one entry when the cache is full.
	Put(key string, records []T)
	Len() int
	Stats() Stats
}

// GetOrFetch returns the cached records for key, or calls fetchFn and stores
// its result. Errors are returned as is and never cached.
func GetOrFetch[T any](ctx context.Context, c RecordCache[T], key string, fetchFn FetchFn[[]T]) ([]T, error) {
	if records, ok := c.Get(key); ok {
		return records, nil
	}

	records, err := fetchFn(ctx)
	if err != nil {
		return nil, err
	}

	c.Put(key, records)

	if records == nil {
		records = []T{}
	}
	return records, nil
}
