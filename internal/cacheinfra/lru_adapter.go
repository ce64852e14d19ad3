package cacheinfra

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

// EvictionPolicy selects which entry is dropped when the cache is full.
type EvictionPolicy string

const (
	// PolicyLRU evicts the least recently read or written entry.
	PolicyLRU EvictionPolicy = "lru"
	// PolicyFIFO evicts the oldest written entry. Reads do not refresh it.
	PolicyFIFO EvictionPolicy = "fifo"
)

// Config holds the configuration for the bounded cache adapter.
type Config struct {
	// Enabled turns the cache on. A disabled cache misses every read and
	// ignores writes.
	Enabled bool

	// Capacity is the maximum number of entries. Must be greater than 0.
	Capacity int

	// Policy is PolicyLRU or PolicyFIFO.
	Policy EvictionPolicy

	// StoreEmpty keeps empty results so repeated lookups for missing keys
	// do not reach the database.
	StoreEmpty bool
}

// DefaultConfig returns a Config with the defaults used by the lookups.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Capacity:   1000,
		Policy:     PolicyLRU,
		StoreEmpty: true,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.Policy != PolicyLRU && c.Policy != PolicyFIFO {
		return &ConfigError{Field: "Policy", Message: fmt.Sprintf("must be %q or %q", PolicyLRU, PolicyFIFO)}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// Stats is a point in time snapshot of cache activity.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
	Capacity  int   `json:"capacity"`
}

// BoundedCache stores ordered record lists by key. It never holds more than
// Capacity entries and hands out copies only.
type BoundedCache[T any] struct {
	entries *lru.Cache[string, []T]
	cfg     Config

	hits      *xsync.Counter
	misses    *xsync.Counter
	evictions *xsync.Counter
}

// NewBoundedCache validates cfg and builds the cache.
func NewBoundedCache[T any](cfg Config) (*BoundedCache[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &BoundedCache[T]{
		cfg:       cfg,
		hits:      xsync.NewCounter(),
		misses:    xsync.NewCounter(),
		evictions: xsync.NewCounter(),
	}

	if !cfg.Enabled {
		return c, nil
	}

	// Add evicts and inserts under one lock, so Len never exceeds Capacity.
	entries, err := lru.NewWithEvict[string, []T](cfg.Capacity, func(string, []T) {
		c.evictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	c.entries = entries

	return c, nil
}

// Get returns a copy of the records stored under key.
func (c *BoundedCache[T]) Get(key string) ([]T, bool) {
	if c.entries == nil {
		c.misses.Inc()
		return nil, false
	}

	var (
		records []T
		ok      bool
	)
	if c.cfg.Policy == PolicyFIFO {
		records, ok = c.entries.Peek(key)
	} else {
		records, ok = c.entries.Get(key)
	}

	if !ok {
		c.misses.Inc()
		return nil, false
	}

	c.hits.Inc()
	return clone(records), true
}

// Put stores a copy of records under key, replacing any previous entry.
// Writing an existing key makes it the newest entry under both policies.
func (c *BoundedCache[T]) Put(key string, records []T) {
	if c.entries == nil {
		return
	}
	if len(records) == 0 && !c.cfg.StoreEmpty {
		return
	}
	c.entries.Add(key, clone(records))
}

// Len returns the number of stored entries.
func (c *BoundedCache[T]) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Stats returns the current counters.
func (c *BoundedCache[T]) Stats() Stats {
	capacity := 0
	if c.entries != nil {
		capacity = c.cfg.Capacity
	}
	return Stats{
		Hits:      c.hits.Value(),
		Misses:    c.misses.Value(),
		Evictions: c.evictions.Value(),
		Entries:   c.Len(),
		Capacity:  capacity,
	}
}

// Keys returns the stored keys from oldest to newest.
func (c *BoundedCache[T]) Keys() []string {
	if c.entries == nil {
		return nil
	}
	return c.entries.Keys()
}

// clone returns a copy of records that is never nil.
func clone[T any](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	return out
}
