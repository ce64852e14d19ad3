package sqlstore

import "fmt"

// Driver names registered by the blank imports in drivers.go.
const (
	// DriverSQLite3 is github.com/mattn/go-sqlite3 (cgo).
	DriverSQLite3 = "sqlite3"
	// DriverSQLite is modernc.org/sqlite (pure Go).
	DriverSQLite = "sqlite"
)

// Config describes how the lexical database is opened.
type Config struct {
	// Path of the SQLite file. The file must exist.
	Path string `mapstructure:"path" json:"path"`

	// Driver is DriverSQLite3 or DriverSQLite.
	Driver string `mapstructure:"driver" json:"driver"`

	// LoadIntoMemory copies every table into an in-memory database at open.
	LoadIntoMemory bool `mapstructure:"load_into_memory" json:"load_into_memory"`

	// PageCacheSize is applied with PRAGMA cache_size for file backed stores.
	// Zero leaves the driver default.
	PageCacheSize int `mapstructure:"page_cache_size" json:"page_cache_size"`

	// CreateIndexes creates the lookup indexes if they are missing.
	CreateIndexes bool `mapstructure:"create_indexes" json:"create_indexes"`

	Strategy Strategy `mapstructure:"strategy" json:"strategy"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Path:           "wnjpn.db",
		Driver:         DriverSQLite3,
		LoadIntoMemory: true,
		PageCacheSize:  2000,
		CreateIndexes:  true,
		Strategy:       StrategyPrepared,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Path == "" {
		return &ConfigError{Field: "Path", Message: "must not be empty"}
	}

	if c.Driver != DriverSQLite3 && c.Driver != DriverSQLite {
		return &ConfigError{Field: "Driver", Message: fmt.Sprintf("must be %q or %q", DriverSQLite3, DriverSQLite)}
	}

	if c.PageCacheSize < 0 {
		return &ConfigError{Field: "PageCacheSize", Message: "must be non-negative"}
	}

	if !c.Strategy.Valid() {
		return &ConfigError{Field: "Strategy", Message: fmt.Sprintf("must be %q or %q", StrategyPrepared, StrategyUnprepared)}
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
