package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/pkg/config"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
	"github.com/goliatone/go-wordnet-cache/wordnet"
)

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger shared by the store and the repositories.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Container wires the components built from a config.Config: one store, one
// key serializer and the cached repositories on top of them. It owns the store
// and must be closed.
type Container struct {
	config        config.Config
	logger        *slog.Logger
	store         *sqlstore.Store
	keySerializer cache.KeySerializer
	repositories  *wordnet.Repositories
}

// NewContainer validates cfg, opens the store and builds the repositories.
func NewContainer(ctx context.Context, cfg config.Config, opts ...Option) (*Container, error) {
	c := &Container{
		config:        cfg,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		keySerializer: cache.NewDefaultKeySerializer(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := sqlstore.Open(ctx, cfg.Database, sqlstore.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	repos, err := wordnet.NewRepositories(store, cfg.Cache,
		wordnet.WithLogger(c.logger),
		wordnet.WithKeySerializer(c.keySerializer),
	)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	c.store = store
	c.repositories = repos
	return c, nil
}

// NewContainerWithDefaults opens the database at path with default settings
// for everything else.
func NewContainerWithDefaults(ctx context.Context, path string, opts ...Option) (*Container, error) {
	cfg := config.Default()
	cfg.Database.Path = path
	return NewContainer(ctx, cfg, opts...)
}

// Store returns the shared statement store.
func (c *Container) Store() *sqlstore.Store {
	return c.store
}

// KeySerializer returns the key serializer shared by every repository.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() config.Config {
	return c.config
}

func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Repositories returns the cached entity repositories.
func (c *Container) Repositories() *wordnet.Repositories {
	return c.repositories
}

// Stats returns the counters of every entity cache.
func (c *Container) Stats() map[string]cache.Stats {
	return c.repositories.Stats()
}

// Close releases the prepared statements and the database.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// NewLookup creates a cached lookup for a custom record type. It gets its own
// cache configured like the entity caches and shares the container's key
// serializer, so callers can run extra queries through the store with the same
// caching semantics.
//
// Since Go methods cannot have type parameters, this is provided as a package-level function.
// Example: NewLookup[wordnet.Word](container, "word_by_pron")
func NewLookup[T any](container *Container, name string) (*repositorycache.Lookup[T], error) {
	records, err := cache.NewRecordCache[T](container.config.Cache)
	if err != nil {
		return nil, err
	}

	return repositorycache.New(records, container.keySerializer,
		repositorycache.WithName(name),
		repositorycache.WithDeduplication(container.config.Cache.Deduplicate),
		repositorycache.WithLogger(container.logger.With("cache", name)),
	), nil
}
