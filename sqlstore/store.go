package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is a handle over the lexical database. It owns the single database
// connection and the statement executor, and is safe for concurrent use.
type Store struct {
	db     *bun.DB
	exec   Executor
	logger *slog.Logger
}

// Open bootstraps a Store from cfg. Every failure is an *InitError.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := NewStore(nil, nil, opts...)
	logger := s.logger

	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Stage: "config", Err: err}
	}

	sqldb, inMemory, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	fail := func(err error) (*Store, error) {
		db.Close()
		logger.Error("store bootstrap failed", "path", cfg.Path, "error", err)
		return nil, err
	}

	if cfg.CreateIndexes {
		if err := createIndexes(ctx, db); err != nil {
			return fail(err)
		}
	}

	if !inMemory && cfg.PageCacheSize > 0 {
		if err := applyPageCacheSize(ctx, sqldb, cfg.PageCacheSize); err != nil {
			return fail(err)
		}
	}

	exec, err := NewExecutor(ctx, cfg.Strategy, sqldb)
	if err != nil {
		return fail(err)
	}

	logger.Info("store opened",
		"path", cfg.Path,
		"driver", cfg.Driver,
		"in_memory", inMemory,
		"strategy", string(cfg.Strategy),
	)

	s.db = db
	s.exec = exec
	return s, nil
}

// NewStore wraps an already opened database and executor.
func NewStore(db *bun.DB, exec Executor, opts ...Option) *Store {
	s := &Store{
		db:     db,
		exec:   exec,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select runs id with args and decodes every row into dest, which must be a
// pointer to a slice of structs tagged with bun column names.
func (s *Store) Select(ctx context.Context, id QueryID, dest any, args ...any) error {
	err := s.exec.Query(ctx, id, func(rows *sql.Rows) error {
		if err := s.db.ScanRows(ctx, rows, dest); err != nil {
			if errors.Is(err, ErrUndecodable) {
				return &DecodeError{Query: id, Err: err}
			}
			return &QueryError{Query: id, Err: err}
		}
		return nil
	}, args...)

	if err != nil {
		s.logger.Debug("select failed", "query", id.String(), "error", err)
	}
	return err
}

// DB returns the underlying bun handle.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Close releases the statements and the connection.
func (s *Store) Close() error {
	return errors.Join(s.exec.Close(), s.db.Close())
}
