package testsupport

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed testdata/lexicon.sql
var lexiconSQL string

// Well known rows of the seeded lexicon.
const (
	NLPSynsetID        = "06142412-n"
	NLPLemma           = "natural_language_processing"
	NLPJapaneseWordID  = int64(201821)
	NLPJapaneseLemma   = "自然言語処理"
	CorruptedLemma     = "corrupted_entry"
	CorruptedWordID    = int64(900001)
	ImportLemma        = "import"
	ComputerScienceID  = "06141324-n"
	MissingSynsetID    = "00000000-n"
	NLPHypernymCount   = 2
	NLPEnglishSenses   = 2
	NLPSenseCount      = 3
	NLPLinkCount       = 3
	ImportSynsetsCount = 2
)

// LexiconStatements returns the statements that build the seeded lexicon.
func LexiconStatements() []string {
	return SplitStatements(lexiconSQL)
}

// SplitStatements splits a SQL script on ';'. Statements must not contain
// semicolons inside literals.
func SplitStatements(script string) []string {
	var stmts []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// WriteDatabase creates a SQLite file at path and runs stmts against it.
func WriteDatabase(path string, stmts []string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

// LexiconDB writes the seeded lexicon into a temporary directory and returns
// the database path. The file is removed when the test ends.
func LexiconDB(t testing.TB) string {
	t.Helper()
	return DatabaseFromStatements(t, LexiconStatements())
}

// DatabaseFromStatements writes a temporary database built from stmts.
func DatabaseFromStatements(t testing.TB, stmts []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wnjpn.db")
	if err := WriteDatabase(path, stmts); err != nil {
		t.Fatalf("failed to build fixture database: %v", err)
	}
	return path
}

// TempFile creates a temporary file with the given content.
func TempFile(t testing.TB, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

// DecodeJSON unmarshals data into dest or fails the test.
func DecodeJSON(t testing.TB, data []byte, dest any) {
	t.Helper()

	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON %q: %v", data, err)
	}
}
