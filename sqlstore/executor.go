package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrUnknownQuery is wrapped in a *QueryError when an executor is asked
	// for a query it does not hold.
	ErrUnknownQuery = errors.New("sqlstore: unknown query")
	// ErrClosed is wrapped in a *QueryError when an executor is used after Close.
	ErrClosed = errors.New("sqlstore: executor closed")
)

// ScanFunc consumes an open result cursor. It may stop early; the executor
// checks the cursor error and closes it afterwards. Errors returned by a
// ScanFunc are passed through unchanged.
type ScanFunc func(rows *sql.Rows) error

// Executor runs registered queries.
type Executor interface {
	Query(ctx context.Context, id QueryID, scan ScanFunc, args ...any) error
	Close() error
}

// Preparer is the subset of *sql.DB the executors need.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Strategy selects how statements are managed.
type Strategy string

const (
	// StrategyPrepared prepares every registered query once and reuses it.
	StrategyPrepared Strategy = "prepared"
	// StrategyUnprepared prepares a fresh statement for each call.
	StrategyUnprepared Strategy = "unprepared"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyPrepared || s == StrategyUnprepared
}

// NewExecutor builds the executor for strategy.
func NewExecutor(ctx context.Context, strategy Strategy, db Preparer) (Executor, error) {
	switch strategy {
	case StrategyPrepared, "":
		return NewPreparedExecutor(ctx, db)
	case StrategyUnprepared:
		return NewUnpreparedExecutor(db), nil
	default:
		return nil, &InitError{Stage: "executor", Err: fmt.Errorf("unknown strategy %q", strategy)}
	}
}

type queryer func(ctx context.Context, args ...any) (*sql.Rows, error)

// run executes q and hands the cursor to scan.
func run(ctx context.Context, id QueryID, q queryer, scan ScanFunc, args []any) error {
	if err := ctx.Err(); err != nil {
		return &QueryError{Query: id, Err: err}
	}

	rows, err := q(ctx, args...)
	if err != nil {
		return &QueryError{Query: id, Err: err}
	}
	defer rows.Close()

	if err := scan(rows); err != nil {
		return err
	}

	if err := rows.Err(); err != nil {
		return &QueryError{Query: id, Err: err}
	}

	if err := rows.Close(); err != nil {
		return &QueryError{Query: id, Err: err}
	}
	return nil
}
