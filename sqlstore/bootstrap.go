package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/uptrace/bun"
)

// Tables copied when the database is loaded into memory.
var Tables = []string{"word", "sense", "synset", "synset_def", "synlink"}

type indexDef struct {
	name    string
	table   string
	columns []string
}

var indexes = []indexDef{
	{"word_wordid_idx", "word", []string{"wordid"}},
	{"word_lemma_idx", "word", []string{"lemma", "pos"}},
	{"sense_synset_idx", "sense", []string{"synset"}},
	{"sense_wordid_idx", "sense", []string{"wordid"}},
	{"synset_id_idx", "synset", []string{"synset"}},
	{"synset_name_idx", "synset", []string{"name"}},
	{"synset_def_id_idx", "synset_def", []string{"synset"}},
	{"synlink_idx", "synlink", []string{"synset1", "link"}},
}

// openDatabase opens cfg.Path on a single connection. With LoadIntoMemory the
// returned handle is an in-memory copy and inMemory is true.
func openDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (db *sql.DB, inMemory bool, err error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, false, &InitError{Stage: "open", Err: err}
	}
	if info.IsDir() {
		return nil, false, &InitError{Stage: "open", Err: fmt.Errorf("%s is a directory", cfg.Path)}
	}

	dsn := cfg.Path
	if cfg.LoadIntoMemory {
		dsn = ":memory:"
	}

	db, err = sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, false, &InitError{Stage: "open", Err: err}
	}

	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, false, &InitError{Stage: "open", Err: err}
	}

	if !cfg.LoadIntoMemory {
		logger.Debug("opened database file", "path", cfg.Path, "driver", cfg.Driver)
		return db, false, nil
	}

	if err := loadIntoMemory(ctx, db, cfg.Path); err != nil {
		db.Close()
		return nil, false, err
	}

	logger.Debug("loaded database into memory", "path", cfg.Path, "driver", cfg.Driver, "tables", len(Tables))
	return db, true, nil
}

func loadIntoMemory(ctx context.Context, db *sql.DB, path string) error {
	if _, err := db.ExecContext(ctx, "ATTACH DATABASE ? AS disk", path); err != nil {
		return &InitError{Stage: "load", Err: err}
	}

	for _, table := range Tables {
		stmt := fmt.Sprintf("CREATE TABLE main.%[1]s AS SELECT * FROM disk.%[1]s ORDER BY rowid", table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_, _ = db.ExecContext(ctx, "DETACH DATABASE disk")
			return &InitError{Stage: "load", Err: fmt.Errorf("copy table %s: %w", table, err)}
		}
	}

	if _, err := db.ExecContext(ctx, "DETACH DATABASE disk"); err != nil {
		return &InitError{Stage: "load", Err: err}
	}
	return nil
}

func createIndexes(ctx context.Context, db *bun.DB) error {
	for _, idx := range indexes {
		_, err := db.NewCreateIndex().
			Table(idx.table).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return &InitError{Stage: "index", Err: fmt.Errorf("create %s: %w", idx.name, err)}
		}
	}
	return nil
}

func applyPageCacheSize(ctx context.Context, db *sql.DB, pages int) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA cache_size = %d", pages)); err != nil {
		return &InitError{Stage: "pragma", Err: err}
	}
	return nil
}
