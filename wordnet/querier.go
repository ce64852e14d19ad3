package wordnet

import (
	"context"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// Querier runs a registered query and decodes the rows into dest, a pointer
// to a slice of records. *sqlstore.Store implements it.
type Querier interface {
	Select(ctx context.Context, id sqlstore.QueryID, dest any, args ...any) error
}

var _ Querier = (*sqlstore.Store)(nil)

// selectAll returns a fetch function running id with args.
func selectAll[T any](q Querier, id sqlstore.QueryID, args ...any) cache.FetchFn[[]T] {
	return func(ctx context.Context) ([]T, error) {
		var records []T
		if err := q.Select(ctx, id, &records, args...); err != nil {
			return nil, err
		}
		return records, nil
	}
}
