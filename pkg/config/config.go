// Package config loads the settings shared by the store, the record caches
// and the logger from defaults, an optional file and WORDNET_ environment
// variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// EnvPrefix is prepended to every environment override, e.g.
// WORDNET_DATABASE_PATH or WORDNET_CACHE_MAX_ENTRIES.
const EnvPrefix = "WORDNET"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full runtime configuration.
type Config struct {
	Database sqlstore.Config `mapstructure:"database" json:"database"`
	Cache    cache.Config    `mapstructure:"cache" json:"cache"`
	Log      LogConfig       `mapstructure:"log" json:"log"`
}

// LogConfig controls the slog handler built by NewLogger.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Database: sqlstore.DefaultConfig(),
		Cache:    cache.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Validate checks the level and format names.
func (c LogConfig) Validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return &sqlstore.ConfigError{Field: "Level", Message: err.Error()}
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return &sqlstore.ConfigError{Field: "Format", Message: fmt.Sprintf("must be %q or %q", FormatText, FormatJSON)}
	}
	return nil
}

// Load reads the configuration. An empty path skips the file and uses
// defaults plus environment overrides only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.load_into_memory", d.Database.LoadIntoMemory)
	v.SetDefault("database.page_cache_size", d.Database.PageCacheSize)
	v.SetDefault("database.create_indexes", d.Database.CreateIndexes)
	v.SetDefault("database.strategy", string(d.Database.Strategy))

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.max_entries", d.Cache.MaxEntries)
	v.SetDefault("cache.policy", string(d.Cache.Policy))
	v.SetDefault("cache.cache_missing", d.Cache.CacheMissing)
	v.SetDefault("cache.deduplicate", d.Cache.Deduplicate)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// NewLogger builds a slog logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}
