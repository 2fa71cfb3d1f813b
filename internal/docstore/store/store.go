// Package store is the Postgres-backed remote document collection. Documents
// are stored per user as JSONB rows keyed by (user_id, id), alongside a
// singleton counters row per user:
//
//	CREATE TABLE documents (
//	    user_id    TEXT        NOT NULL,
//	    id         UUID        NOT NULL,
//	    doc        JSONB       NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (user_id, id)
//	);
//
//	CREATE TABLE document_counters (
//	    user_id    TEXT PRIMARY KEY,
//	    estimate   INT  NOT NULL DEFAULT 0,
//	    invoice    INT  NOT NULL DEFAULT 0,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FetchDocuments(ctx context.Context, userID string) ([]*document.Document, error) {
	query := `SELECT doc FROM documents WHERE user_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Document

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		var doc document.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}

		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

func (s *Store) FetchCounters(ctx context.Context, userID string) (document.Counters, error) {
	query := `SELECT estimate, invoice FROM document_counters WHERE user_id = $1`

	var counters document.Counters

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&counters.Estimate, &counters.Invoice)
	if err != nil {
		if err == sql.ErrNoRows {
			// First session for this user.
			return document.Counters{}, nil
		}

		return document.Counters{}, fmt.Errorf("fetching counters: %w", err)
	}

	return counters, nil
}

func (s *Store) UpsertDocument(ctx context.Context, userID string, doc *document.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	query := `
		INSERT INTO documents (user_id, id, doc, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, userID, doc.ID, raw); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	return nil
}

func (s *Store) DeleteDocument(ctx context.Context, userID string, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE user_id = $1 AND id = $2`

	if _, err := s.db.ExecContext(ctx, query, userID, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}

func (s *Store) SaveCounters(ctx context.Context, userID string, counters document.Counters) error {
	query := `
		INSERT INTO document_counters (user_id, estimate, invoice, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			estimate = GREATEST(document_counters.estimate, EXCLUDED.estimate),
			invoice = GREATEST(document_counters.invoice, EXCLUDED.invoice),
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, userID, counters.Estimate, counters.Invoice); err != nil {
		return fmt.Errorf("saving counters: %w", err)
	}

	return nil
}
