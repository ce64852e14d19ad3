package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

type preparedStmt struct {
	stmt *sql.Stmt
	// guards bind, execute and drain of stmt
	sem *semaphore.Weighted
}

// PreparedExecutor holds one prepared statement per registered query. Calls
// for the same query are serialized; calls for different queries proceed in
// parallel.
type PreparedExecutor struct {
	stmts  map[QueryID]*preparedStmt
	closed atomic.Bool
}

// NewPreparedExecutor prepares every registered query. If any statement fails
// to prepare, the ones already prepared are closed and an *InitError is
// returned.
func NewPreparedExecutor(ctx context.Context, db Preparer) (*PreparedExecutor, error) {
	e := &PreparedExecutor{stmts: make(map[QueryID]*preparedStmt, len(registry))}

	for _, id := range Queries() {
		stmt, err := db.PrepareContext(ctx, id.Text())
		if err != nil {
			closeErr := e.closeStatements()
			return nil, &InitError{Stage: "prepare", Query: id, Err: errors.Join(err, closeErr)}
		}
		e.stmts[id] = &preparedStmt{stmt: stmt, sem: semaphore.NewWeighted(1)}
	}

	return e, nil
}

// Query runs id with args while holding the statement's lock. Waiting for the
// lock honours ctx.
func (e *PreparedExecutor) Query(ctx context.Context, id QueryID, scan ScanFunc, args ...any) error {
	ps, ok := e.stmts[id]
	if !ok {
		return &QueryError{Query: id, Err: ErrUnknownQuery}
	}

	if err := ps.sem.Acquire(ctx, 1); err != nil {
		return &QueryError{Query: id, Err: err}
	}
	defer ps.sem.Release(1)

	if e.closed.Load() {
		return &QueryError{Query: id, Err: ErrClosed}
	}

	return run(ctx, id, ps.stmt.QueryContext, scan, args)
}

// Close waits for in-flight queries and closes every statement.
func (e *PreparedExecutor) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	for _, ps := range e.stmts {
		// Acquire with a background context cannot fail.
		_ = ps.sem.Acquire(context.Background(), 1)
	}
	err := e.closeStatements()
	for _, ps := range e.stmts {
		ps.sem.Release(1)
	}
	return err
}

func (e *PreparedExecutor) closeStatements() error {
	var errs []error
	for _, ps := range e.stmts {
		if err := ps.stmt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
