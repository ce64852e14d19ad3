package cache

import (
	"github.com/goliatone/go-wordnet-cache/internal/cacheinfra"
)

// EvictionPolicy selects which entry a full cache drops.
type EvictionPolicy = cacheinfra.EvictionPolicy

const (
	// PolicyLRU evicts the least recently used entry. Reads refresh recency.
	PolicyLRU = cacheinfra.PolicyLRU
	// PolicyFIFO evicts the oldest inserted entry. Reads do not refresh it.
	PolicyFIFO = cacheinfra.PolicyFIFO
)

// ConfigError is returned by Validate for invalid values.
type ConfigError = cacheinfra.ConfigError

// Config exposes cache configuration options for consumers of the cache package.
type Config struct {
	Enabled      bool           `mapstructure:"enabled" json:"enabled"`
	MaxEntries   int            `mapstructure:"max_entries" json:"max_entries"`
	Policy       EvictionPolicy `mapstructure:"policy" json:"policy"`
	CacheMissing bool           `mapstructure:"cache_missing" json:"cache_missing"`
	Deduplicate  bool           `mapstructure:"deduplicate" json:"deduplicate"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	cfg := convertFromInternal(cacheinfra.DefaultConfig())
	cfg.Deduplicate = true
	return cfg
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewRecordCache constructs the default bounded cache implementation using the provided configuration.
func NewRecordCache[T any](cfg Config) (RecordCache[T], error) {
	c, err := cacheinfra.NewBoundedCache[T](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Enabled:    c.Enabled,
		Capacity:   c.MaxEntries,
		Policy:     c.Policy,
		StoreEmpty: c.CacheMissing,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Enabled:      cfg.Enabled,
		MaxEntries:   cfg.Capacity,
		Policy:       cfg.Policy,
		CacheMissing: cfg.StoreEmpty,
	}
}
