package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/wordmaster/internal/word"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// slotName is the fixed, versionless key the whole collection lives under.
// Readers tolerate missing optional fields by applying defaults, so there is
// no schema version tag.
const slotName = "wordmaster_words"

// Storage is the durable backing for the word collection. The collection is
// read and written as a single serialized unit, never per record.
type Storage interface {
	// Load returns the full collection. A missing slot yields (nil, nil).
	Load(ctx context.Context) ([]word.Word, error)

	// Save replaces the full collection.
	Save(ctx context.Context, words []word.Word) error

	// Close releases the backing resources.
	Close() error
}

// SQLite is a Storage backed by a single-row slot table in SQLite.
type SQLite struct {
	db *sql.DB
}

var _ Storage = (*SQLite)(nil)

// Open creates a SQLite storage at dsn. It applies recommended pragmas and
// creates the slot table if needed.
func Open(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS storage (
		slot  TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create storage table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]word.Word, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storage WHERE slot = ?`, slotName,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", slotName, err)
	}

	var words []word.Word
	if err := json.Unmarshal(value, &words); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", slotName, err)
	}
	// Older writers may have omitted the enum fields; coerce to defaults
	// rather than letting empty values escape the closed sets.
	for i := range words {
		words[i].Difficulty = word.NormalizeDifficulty(string(words[i].Difficulty))
		words[i].Category = word.NormalizeCategory(string(words[i].Category))
	}
	return words, nil
}

func (s *SQLite) Save(ctx context.Context, words []word.Word) error {
	if words == nil {
		words = []word.Word{}
	}
	value, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO storage (slot, value) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value`,
		slotName, value,
	)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slotName, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultStorePath resolves the database file path in priority order:
// 1. WORDMASTER_DB environment variable
// 2. $XDG_DATA_HOME/wordmaster/wordmaster.db
// 3. ~/.local/share/wordmaster/wordmaster.db
func DefaultStorePath() (string, error) {
	if p := os.Getenv("WORDMASTER_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "wordmaster", "wordmaster.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
