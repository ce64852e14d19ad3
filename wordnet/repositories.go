package wordnet

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
)

// Names of the per-entity caches as reported by Repositories.Stats.
const (
	CacheWord             = "word"
	CacheSense            = "sense"
	CacheSynset           = "synset"
	CacheSynsetDefinition = "synset_definition"
	CacheSynsetLink       = "synset_link"
)

// Option configures NewRepositories.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	keySerializer cache.KeySerializer
}

// WithLogger sets the logger handed to every lookup.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithKeySerializer replaces the default cache key serializer.
func WithKeySerializer(ks cache.KeySerializer) Option {
	return func(o *options) {
		if ks != nil {
			o.keySerializer = ks
		}
	}
}

// Repositories bundles the five entity repositories. Each one owns a separate
// cache, so keys never collide across entity types.
type Repositories struct {
	Words       *WordRepository
	Senses      *SenseRepository
	Synsets     *SynsetRepository
	Definitions *SynsetDefinitionRepository
	Links       *SynsetLinkRepository
}

// NewRepositories builds every repository on q with one cache per entity
// configured by cfg.
func NewRepositories(q Querier, cfg cache.Config, opts ...Option) (*Repositories, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		keySerializer: cache.NewDefaultKeySerializer(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	lookupOpts := func(name string) []repositorycache.Option {
		return []repositorycache.Option{
			repositorycache.WithName(name),
			repositorycache.WithDeduplication(cfg.Deduplicate),
			repositorycache.WithLogger(o.logger.With("cache", name)),
		}
	}

	words, err := cache.NewRecordCache[Word](cfg)
	if err != nil {
		return nil, err
	}
	senses, err := cache.NewRecordCache[Sense](cfg)
	if err != nil {
		return nil, err
	}
	synsets, err := cache.NewRecordCache[Synset](cfg)
	if err != nil {
		return nil, err
	}
	defs, err := cache.NewRecordCache[SynsetDefinition](cfg)
	if err != nil {
		return nil, err
	}
	links, err := cache.NewRecordCache[SynsetLink](cfg)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("repositories ready",
		"enabled", cfg.Enabled,
		"max_entries", cfg.MaxEntries,
		"policy", string(cfg.Policy),
		"deduplicate", cfg.Deduplicate,
	)

	return &Repositories{
		Words:       NewWordRepository(q, words, o.keySerializer, lookupOpts(CacheWord)...),
		Senses:      NewSenseRepository(q, senses, o.keySerializer, lookupOpts(CacheSense)...),
		Synsets:     NewSynsetRepository(q, synsets, o.keySerializer, lookupOpts(CacheSynset)...),
		Definitions: NewSynsetDefinitionRepository(q, defs, o.keySerializer, lookupOpts(CacheSynsetDefinition)...),
		Links:       NewSynsetLinkRepository(q, links, o.keySerializer, lookupOpts(CacheSynsetLink)...),
	}, nil
}

// Stats returns the cache counters of every repository keyed by cache name.
func (r *Repositories) Stats() map[string]cache.Stats {
	return map[string]cache.Stats{
		CacheWord:             r.Words.Stats(),
		CacheSense:            r.Senses.Stats(),
		CacheSynset:           r.Synsets.Stats(),
		CacheSynsetDefinition: r.Definitions.Stats(),
		CacheSynsetLink:       r.Links.Stats(),
	}
}
