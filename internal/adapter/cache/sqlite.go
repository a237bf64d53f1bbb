// Package cache stores raw enrichment payloads in a local SQLite file so
// repeated smart-add lookups for the same word skip the network.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS enrich_cache (
	word       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// Store is a word-keyed payload cache backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
// Use ":memory:" for an ephemeral cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached payload for word, or ok=false on a miss.
// The key is case-insensitive.
func (s *Store) Get(ctx context.Context, word string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM enrich_cache WHERE word = ?`,
		cacheKey(word),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %q: %w", word, err)
	}
	return payload, true, nil
}

// Put stores (or replaces) the payload for word.
func (s *Store) Put(ctx context.Context, word string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO enrich_cache (word, payload, created_at) VALUES (?, ?, ?)`,
		cacheKey(word), payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("cache: put %q: %w", word, err)
	}
	return nil
}

func cacheKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
