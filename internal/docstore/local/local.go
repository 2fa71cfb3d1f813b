// Package local is the durable local mirror: a SQLite key-value table with
// two named slots per user, one holding the full document array (trashed
// documents included) and one the numbering counters. Every save rewrites the
// full state, so a crash after any mutation loses at most the in-flight
// remote sync, never the mutation itself.
package local

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

const schema = `
	CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)
`

type Store struct {
	db *sql.DB
}

// New prepares the slot table on the given SQLite handle.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating slots table: %w", err)
	}

	return &Store{db: db}, nil
}

func docsKey(userID string) string     { return "docs:" + userID }
func countersKey(userID string) string { return "counters:" + userID }

func (s *Store) Save(userID string, docs []*document.Document, counters document.Counters) error {
	rawDocs, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encoding documents: %w", err)
	}

	rawCounters, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("encoding counters: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)`

	if _, err := tx.Exec(query, docsKey(userID), rawDocs); err != nil {
		return fmt.Errorf("writing documents slot: %w", err)
	}

	if _, err := tx.Exec(query, countersKey(userID), rawCounters); err != nil {
		return fmt.Errorf("writing counters slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}

	return nil
}

// Load reads both slots. Absent or malformed slots yield empty state rather
// than an error, so a corrupted mirror degrades to a fresh start instead of
// blocking the session.
func (s *Store) Load(userID string) ([]*document.Document, document.Counters, error) {
	var docs []*document.Document

	raw, err := s.read(docsKey(userID))
	if err != nil {
		return nil, document.Counters{}, err
	}

	if raw != nil {
		if err := json.Unmarshal(raw, &docs); err != nil {
			docs = nil
		}
	}

	var counters document.Counters

	raw, err = s.read(countersKey(userID))
	if err != nil {
		return nil, document.Counters{}, err
	}

	if raw != nil {
		if err := json.Unmarshal(raw, &counters); err != nil {
			counters = document.Counters{}
		}
	}

	return docs, counters, nil
}

func (s *Store) read(key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}

	return value, nil
}
