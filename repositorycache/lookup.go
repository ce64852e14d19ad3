package repositorycache

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/goliatone/go-wordnet-cache/cache"
	"golang.org/x/sync/singleflight"
)

// Option configures a Lookup.
type Option func(*settings)

type settings struct {
	name        string
	deduplicate bool
	logger      *slog.Logger
}

// WithName sets the name used in logs. It defaults to the snake_case name of
// the record type.
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithDeduplication collapses concurrent misses for the same key into one
// fetch when enabled.
func WithDeduplication(enabled bool) Option {
	return func(s *settings) {
		s.deduplicate = enabled
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Lookup is a read-through cache in front of a fetch function. It builds the
// key, serves hits from the cache, runs the fetch on a miss, stores the result
// and hands every caller its own copy.
type Lookup[T any] struct {
	cache         cache.RecordCache[T]
	keySerializer cache.KeySerializer
	group         singleflight.Group
	name          string
	deduplicate   bool
	logger        *slog.Logger
}

// New creates a Lookup backed by records.
func New[T any](records cache.RecordCache[T], keySerializer cache.KeySerializer, opts ...Option) *Lookup[T] {
	s := settings{
		name:   defaultName[T](),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Lookup[T]{
		cache:         records,
		keySerializer: keySerializer,
		name:          s.name,
		deduplicate:   s.deduplicate,
		logger:        s.logger,
	}
}

// Name returns the lookup name.
func (l *Lookup[T]) Name() string {
	return l.name
}

// Stats returns the counters of the underlying cache.
func (l *Lookup[T]) Stats() cache.Stats {
	return l.cache.Stats()
}

// List returns every record for method and args. The result is never nil.
func (l *Lookup[T]) List(ctx context.Context, method string, fetchFn cache.FetchFn[[]T], args ...any) ([]T, error) {
	key := l.keySerializer.SerializeKey(method, args...)

	if cacheBypassFromContext(ctx) {
		return l.load(ctx, key, fetchFn)
	}

	if !l.deduplicate {
		return cache.GetOrFetch(ctx, l.cache, key, fetchFn)
	}

	if records, ok := l.cache.Get(key); ok {
		return records, nil
	}
	return l.loadShared(ctx, key, fetchFn)
}

// First returns the first record for method and args. found is false when
// there are no records.
func (l *Lookup[T]) First(ctx context.Context, method string, fetchFn cache.FetchFn[[]T], args ...any) (record T, found bool, err error) {
	records, err := l.List(ctx, method, fetchFn, args...)
	if err != nil || len(records) == 0 {
		return record, false, err
	}
	return records[0], true, nil
}

// load fetches and stores the result for key.
func (l *Lookup[T]) load(ctx context.Context, key string, fetchFn cache.FetchFn[[]T]) ([]T, error) {
	records, err := fetchFn(ctx)
	if err != nil {
		l.logger.Debug("lookup fetch failed", "lookup", l.name, "key", key, "error", err)
		return nil, err
	}

	l.cache.Put(key, records)
	l.logger.Debug("lookup populated", "lookup", l.name, "key", key, "records", len(records))

	if records == nil {
		records = []T{}
	}
	return records, nil
}

// loadShared runs load once per key for all concurrent callers. A caller
// stops waiting when its own context ends.
func (l *Lookup[T]) loadShared(ctx context.Context, key string, fetchFn cache.FetchFn[[]T]) ([]T, error) {
	ch := l.group.DoChan(key, func() (any, error) {
		return l.load(ctx, key, fetchFn)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			// The shared fetch ran on another caller's context. If only that
			// context ended, this caller fetches on its own.
			if res.Shared && isContextError(res.Err) && ctx.Err() == nil {
				return l.load(ctx, key, fetchFn)
			}
			return nil, res.Err
		}

		records := res.Val.([]T)
		if res.Shared {
			return clone(records), nil
		}
		return records, nil
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func clone[T any](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	return out
}
