package wordnet

import (
	"context"
	"fmt"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// WordRepository looks up words by lemma or id.
type WordRepository struct {
	q      Querier
	lookup *repositorycache.Lookup[Word]
}

// NewWordRepository returns a repository caching into records.
func NewWordRepository(q Querier, records cache.RecordCache[Word], keySerializer cache.KeySerializer, opts ...repositorycache.Option) *WordRepository {
	return &WordRepository{
		q:      q,
		lookup: repositorycache.New(records, keySerializer, opts...),
	}
}

// FindByLemma returns the words whose lemma matches the canonical form of
// lemma, in either language.
func (r *WordRepository) FindByLemma(ctx context.Context, lemma string) ([]Word, error) {
	lemma = CanonicalLemma(lemma)
	if lemma == "" {
		return []Word{}, nil
	}

	return r.lookup.List(ctx, "FindByLemma",
		selectAll[Word](r.q, sqlstore.FindWordsByLemma, lemma),
		lemma,
	)
}

// FindByLemmaAndPOS is FindByLemma restricted to one part of speech.
func (r *WordRepository) FindByLemmaAndPOS(ctx context.Context, lemma string, pos POS) ([]Word, error) {
	if err := validatePOS(pos); err != nil {
		return nil, err
	}

	lemma = CanonicalLemma(lemma)
	if lemma == "" {
		return []Word{}, nil
	}

	return r.lookup.List(ctx, "FindByLemmaAndPOS",
		selectAll[Word](r.q, sqlstore.FindWordsByLemmaAndPOS, lemma, string(pos)),
		lemma, pos,
	)
}

// FindByID returns the word with the given id or an error wrapping ErrNotFound.
func (r *WordRepository) FindByID(ctx context.Context, id int64) (Word, error) {
	word, found, err := r.lookup.First(ctx, "FindByID",
		selectAll[Word](r.q, sqlstore.FindWordByID, id),
		id,
	)
	if err != nil {
		return Word{}, err
	}
	if !found {
		return Word{}, fmt.Errorf("word %d: %w", id, ErrNotFound)
	}
	return word, nil
}

// Stats returns the cache counters.
func (r *WordRepository) Stats() cache.Stats {
	return r.lookup.Stats()
}
