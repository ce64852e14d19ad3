package wordnet

import (
	"context"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/repositorycache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// SynsetLinkRepository looks up the outgoing relations of a synset.
type SynsetLinkRepository struct {
	q      Querier
	lookup *repositorycache.Lookup[SynsetLink]
}

func NewSynsetLinkRepository(q Querier, records cache.RecordCache[SynsetLink], keySerializer cache.KeySerializer, opts ...repositorycache.Option) *SynsetLinkRepository {
	return &SynsetLinkRepository{
		q:      q,
		lookup: repositorycache.New(records, keySerializer, opts...),
	}
}

// FindBySynset returns every link whose source is synsetID.
func (r *SynsetLinkRepository) FindBySynset(ctx context.Context, synsetID string) ([]SynsetLink, error) {
	if synsetID == "" {
		return []SynsetLink{}, nil
	}

	return r.lookup.List(ctx, "FindBySynset",
		selectAll[SynsetLink](r.q, sqlstore.FindSynsetLinksBySynset, synsetID),
		synsetID,
	)
}

// FindBySynsetAndRelation returns the links of one relation type whose
// source is synsetID.
func (r *SynsetLinkRepository) FindBySynsetAndRelation(ctx context.Context, synsetID string, link Link) ([]SynsetLink, error) {
	if err := validateLink(link); err != nil {
		return nil, err
	}
	if synsetID == "" {
		return []SynsetLink{}, nil
	}

	return r.lookup.List(ctx, "FindBySynsetAndRelation",
		selectAll[SynsetLink](r.q, sqlstore.FindSynsetLinksBySynsetAndLink, synsetID, string(link)),
		synsetID, link,
	)
}

func (r *SynsetLinkRepository) Stats() cache.Stats {
	return r.lookup.Stats()
}
