package repositorycache

import (
	"context"
)

type cacheBypassContextKey struct{}

// WithCacheBypass marks the context so lookups skip the cache read and go to
// the database. The fresh result still replaces the cached entry.
func WithCacheBypass(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, cacheBypassContextKey{}, true)
}

func cacheBypassFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	bypass, _ := ctx.Value(cacheBypassContextKey{}).(bool)
	return bypass
}
