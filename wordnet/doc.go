// Package wordnet provides cached lookups over a read-only WordNet lexical
// database: words, senses, synsets, synset definitions and synset links.
//
// Every lookup goes through a per-entity bounded cache keyed by the lookup
// method and its arguments, and falls back to a shared sqlstore.Store on a
// miss. Returned records are always copies owned by the caller.
//
//	store, err := sqlstore.Open(ctx, sqlstore.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	repos, err := wordnet.NewRepositories(store, cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	words, err := repos.Words.FindByLemma(ctx, "Natural Language Processing")
//	hypernyms, err := repos.Links.FindBySynsetAndRelation(ctx, "06142412-n", wordnet.LinkHypernym)
//
// Single-record lookups return an error wrapping ErrNotFound when nothing
// matches. Lookups with an unknown Lang, POS or Link fail with
// ErrInvalidArgument before touching the cache or the database.
package wordnet
