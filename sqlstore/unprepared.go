package sqlstore

import (
	"context"
	"sync/atomic"
)

// UnpreparedExecutor prepares, runs and closes a new statement on every call.
// It keeps no state between calls.
type UnpreparedExecutor struct {
	db     Preparer
	closed atomic.Bool
}

func NewUnpreparedExecutor(db Preparer) *UnpreparedExecutor {
	return &UnpreparedExecutor{db: db}
}

func (e *UnpreparedExecutor) Query(ctx context.Context, id QueryID, scan ScanFunc, args ...any) error {
	if !id.Valid() {
		return &QueryError{Query: id, Err: ErrUnknownQuery}
	}
	if e.closed.Load() {
		return &QueryError{Query: id, Err: ErrClosed}
	}

	stmt, err := e.db.PrepareContext(ctx, id.Text())
	if err != nil {
		return &QueryError{Query: id, Err: err}
	}
	defer stmt.Close()

	return run(ctx, id, stmt.QueryContext, scan, args)
}

func (e *UnpreparedExecutor) Close() error {
	e.closed.Store(true)
	return nil
}
