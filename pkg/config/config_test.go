package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/pkg/testsupport"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := testsupport.TempFile(t, "wordnet.yaml", []byte(`
database:
  path: /data/wnjpn.db
  driver: sqlite
  load_into_memory: false
  page_cache_size: 500
  strategy: unprepared
cache:
  max_entries: 64
  policy: fifo
  cache_missing: false
log:
  level: debug
  format: json
`))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Path != "/data/wnjpn.db" || cfg.Database.Driver != sqlstore.DriverSQLite {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Database.LoadIntoMemory || cfg.Database.PageCacheSize != 500 || cfg.Database.Strategy != sqlstore.StrategyUnprepared {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}
	if !cfg.Database.CreateIndexes {
		t.Error("keys missing from the file should keep their defaults")
	}
	if cfg.Cache.MaxEntries != 64 || cfg.Cache.Policy != cache.PolicyFIFO || cfg.Cache.CacheMissing {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if !cfg.Cache.Enabled || !cfg.Cache.Deduplicate {
		t.Errorf("unexpected cache defaults %+v", cfg.Cache)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != FormatJSON {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_Environment(t *testing.T) {
	path := testsupport.TempFile(t, "wordnet.yaml", []byte("cache:\n  max_entries: 64\n"))

	t.Setenv("WORDNET_DATABASE_PATH", "/env/wnjpn.db")
	t.Setenv("WORDNET_CACHE_MAX_ENTRIES", "7")
	t.Setenv("WORDNET_CACHE_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Path != "/env/wnjpn.db" {
		t.Errorf("expected path from environment, got %q", cfg.Database.Path)
	}
	if cfg.Cache.MaxEntries != 7 {
		t.Errorf("environment should win over the file, got %d", cfg.Cache.MaxEntries)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache disabled from environment")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"database driver", "database:\n  driver: postgres\n", "Driver"},
		{"database strategy", "database:\n  strategy: lazy\n", "Strategy"},
		{"cache entries", "cache:\n  max_entries: 0\n", "Capacity"},
		{"cache policy", "cache:\n  policy: random\n", "Policy"},
		{"log level", "log:\n  level: loud\n", "Level"},
		{"log format", "log:\n  format: xml\n", "Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testsupport.TempFile(t, "wordnet.yaml", []byte(tt.content))

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error naming %s, got %v", tt.field, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(t.TempDir() + "/missing.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn", Format: FormatJSON}, &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept", "cache", "word")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record should be filtered at warn level")
	}

	var record map[string]any
	testsupport.DecodeJSON(t, []byte(strings.TrimSpace(out)), &record)
	if record["msg"] != "kept" || record["cache"] != "word" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})

	var cfgErr *sqlstore.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "Format" {
		t.Errorf("expected Format config error, got %v", err)
	}
}
