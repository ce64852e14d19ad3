// Package repositorycache provides the generic read-through lookup that every
// lexical repository funnels through.
//
// # Overview
//
// A Lookup sits in front of a fetch function (usually a single store query)
// and a cache.RecordCache. For each call it:
//
//  1. builds the key from the method name and arguments
//  2. returns a copy of the cached records on a hit
//  3. on a miss runs the fetch, stores the result and returns a copy
//
// Fetch errors are returned to the caller and never stored. Empty results are
// stored when the cache is configured to keep them.
//
// # Basic Usage
//
//	records, _ := cache.NewRecordCache[wordnet.Sense](cache.DefaultConfig())
//	senses := repositorycache.New(records, cache.NewDefaultKeySerializer(),
//		repositorycache.WithDeduplication(true),
//	)
//
//	result, err := senses.List(ctx, "FindBySynset", func(ctx context.Context) ([]wordnet.Sense, error) {
//		var out []wordnet.Sense
//		err := store.Select(ctx, sqlstore.FindSensesBySynset, &out, "06142412-n")
//		return out, err
//	}, "06142412-n")
//
// # Concurrent misses
//
// With WithDeduplication, concurrent misses for one key share a single fetch
// through golang.org/x/sync/singleflight. Every caller still receives its own
// copy. A waiting caller returns as soon as its own context ends, and when the
// shared fetch failed only because the first caller's context ended, a caller
// whose context is still live fetches again on its own.
//
// Without deduplication, concurrent misses may each query and populate the
// same key. Both writes store equal data.
//
// # Bypassing the cache
//
// WithCacheBypass returns a context that skips the cache read. The fetched
// result still replaces the cached entry:
//
//	fresh, err := senses.List(repositorycache.WithCacheBypass(ctx), "FindBySynset", fetch, id)
package repositorycache
