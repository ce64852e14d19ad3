package wordnet

import (
	"context"
	"fmt"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// SynsetRepository looks up synsets by id or name. Returned synsets are fully
// populated.
type SynsetRepository struct {
	q      Querier
	lookup *repositorycache.Lookup[Synset]
}

func NewSynsetRepository(q Querier, records cache.RecordCache[Synset], keySerializer cache.KeySerializer, opts ...repositorycache.Option) *SynsetRepository {
	return &SynsetRepository{
		q:      q,
		lookup: repositorycache.New(records, keySerializer, opts...),
	}
}

// FindByID returns the synset with the given id, e.g. "06142412-n", or an
// error wrapping ErrNotFound.
func (r *SynsetRepository) FindByID(ctx context.Context, id string) (Synset, error) {
	if id == "" {
		return Synset{}, fmt.Errorf("synset %q: %w", id, ErrNotFound)
	}

	synset, found, err := r.lookup.First(ctx, "FindByID",
		selectAll[Synset](r.q, sqlstore.FindSynsetByID, id),
		id,
	)
	if err != nil {
		return Synset{}, err
	}
	if !found {
		return Synset{}, fmt.Errorf("synset %q: %w", id, ErrNotFound)
	}
	return synset, nil
}

// FindByName returns the synsets with the given name. Names are matched
// exactly.
func (r *SynsetRepository) FindByName(ctx context.Context, name string) ([]Synset, error) {
	if name == "" {
		return []Synset{}, nil
	}

	return r.lookup.List(ctx, "FindByName",
		selectAll[Synset](r.q, sqlstore.FindSynsetsByName, name),
		name,
	)
}

func (r *SynsetRepository) FindByNameAndPOS(ctx context.Context, name string, pos POS) ([]Synset, error) {
	if err := validatePOS(pos); err != nil {
		return nil, err
	}
	if name == "" {
		return []Synset{}, nil
	}

	return r.lookup.List(ctx, "FindByNameAndPOS",
		selectAll[Synset](r.q, sqlstore.FindSynsetsByNameAndPOS, name, string(pos)),
		name, pos,
	)
}

func (r *SynsetRepository) Stats() cache.Stats {
	return r.lookup.Stats()
}
