package wordnet

import (
	"context"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// SenseRepository looks up the word/synset associations.
type SenseRepository struct {
	q      Querier
	lookup *repositorycache.Lookup[Sense]
}

func NewSenseRepository(q Querier, records cache.RecordCache[Sense], keySerializer cache.KeySerializer, opts ...repositorycache.Option) *SenseRepository {
	return &SenseRepository{
		q:      q,
		lookup: repositorycache.New(records, keySerializer, opts...),
	}
}

func (r *SenseRepository) FindBySynset(ctx context.Context, synsetID string) ([]Sense, error) {
	if synsetID == "" {
		return []Sense{}, nil
	}

	return r.lookup.List(ctx, "FindBySynset",
		selectAll[Sense](r.q, sqlstore.FindSensesBySynset, synsetID),
		synsetID,
	)
}

func (r *SenseRepository) FindByWordID(ctx context.Context, wordID int64) ([]Sense, error) {
	return r.lookup.List(ctx, "FindByWordID",
		selectAll[Sense](r.q, sqlstore.FindSensesByWordID, wordID),
		wordID,
	)
}

func (r *SenseRepository) FindBySynsetAndLang(ctx context.Context, synsetID string, lang Lang) ([]Sense, error) {
	if err := validateLang(lang); err != nil {
		return nil, err
	}
	if synsetID == "" {
		return []Sense{}, nil
	}

	return r.lookup.List(ctx, "FindBySynsetAndLang",
		selectAll[Sense](r.q, sqlstore.FindSensesBySynsetAndLang, synsetID, string(lang)),
		synsetID, lang,
	)
}

func (r *SenseRepository) Stats() cache.Stats {
	return r.lookup.Stats()
}
