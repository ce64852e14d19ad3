// Package cache provides the bounded record cache and key serialization used
// by the lexical lookups.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - RecordCache: a bounded, concurrency safe map from key to an ordered list of records
//   - KeySerializer: builds stable cache keys from method names and arguments
//
// A RecordCache never hands out the slices it stores. Get returns a fresh copy
// and Put stores one, so callers may mutate results freely.
//
// # Basic Usage
//
//	words, err := cache.NewRecordCache[wordnet.Word](cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey("FindByLemma", "natural_language_processing")
//
//	result, err := cache.GetOrFetch(ctx, words, key, func(ctx context.Context) ([]wordnet.Word, error) {
//		return loadWords(ctx, "natural_language_processing")
//	})
//
// # Eviction
//
// A full cache evicts exactly one entry per insert:
//
//   - PolicyLRU (default): the least recently read or written entry
//   - PolicyFIFO: the oldest written entry; reads do not refresh it
//
// Empty results are stored when Config.CacheMissing is set, so repeated
// lookups of absent keys are answered from memory. Fetch errors are never
// stored.
//
// # Keys
//
// The default serializer joins segments with KeySeparator and escapes ':'
// and '%' inside string arguments, so distinct argument lists never share a
// key. Strings, integers, floats, bools, fmt.Stringer values, pointers and nil
// are supported.
package cache
