package wordnet

import (
	"context"
	"fmt"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// SynsetDefinitionRepository looks up synset glosses.
type SynsetDefinitionRepository struct {
	q      Querier
	lookup *repositorycache.Lookup[SynsetDefinition]
}

func NewSynsetDefinitionRepository(q Querier, records cache.RecordCache[SynsetDefinition], keySerializer cache.KeySerializer, opts ...repositorycache.Option) *SynsetDefinitionRepository {
	return &SynsetDefinitionRepository{
		q:      q,
		lookup: repositorycache.New(records, keySerializer, opts...),
	}
}

// FindBySynsetAndLang returns the first definition of synsetID in lang, or an
// error wrapping ErrNotFound.
func (r *SynsetDefinitionRepository) FindBySynsetAndLang(ctx context.Context, synsetID string, lang Lang) (SynsetDefinition, error) {
	if err := validateLang(lang); err != nil {
		return SynsetDefinition{}, err
	}
	if synsetID == "" {
		return SynsetDefinition{}, fmt.Errorf("definition of %q (%s): %w", synsetID, lang, ErrNotFound)
	}

	def, found, err := r.lookup.First(ctx, "FindBySynsetAndLang",
		selectAll[SynsetDefinition](r.q, sqlstore.FindSynsetDefinitionBySynsetAndLang, synsetID, string(lang)),
		synsetID, lang,
	)
	if err != nil {
		return SynsetDefinition{}, err
	}
	if !found {
		return SynsetDefinition{}, fmt.Errorf("definition of %q (%s): %w", synsetID, lang, ErrNotFound)
	}
	return def, nil
}

func (r *SynsetDefinitionRepository) Stats() cache.Stats {
	return r.lookup.Stats()
}
