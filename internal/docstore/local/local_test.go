package local_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/jobdocs/internal/database"
	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore/local"
)

func newTestStore(t *testing.T) *local.Store {
	t.Helper()

	db, err := database.OpenLocal(filepath.Join(t.TempDir(), "jobdocs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := local.New(db)
	require.NoError(t, err)

	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	deleted := now.Add(-time.Hour)
	docs := []*document.Document{
		{
			ID:           uuid.New(),
			DocType:      document.DocTypeEstimate,
			Title:        "Estimate #E-0001",
			Meta:         document.Meta{EstimateNumber: "E-0001", IssueDate: "2026-08-28"},
			LineItems:    []document.LineItem{{ID: uuid.New(), Name: "Labor", Qty: 1, Rate: 0}},
			CreatedAt:    now,
			LastEditedAt: now,
		},
		{
			ID:           uuid.New(),
			DocType:      document.DocTypeInvoice,
			Title:        "Invoice #I-0001",
			Meta:         document.Meta{InvoiceNumber: "I-0001"},
			CreatedAt:    now,
			LastEditedAt: now,
			DeletedAt:    &deleted,
		},
	}
	counters := document.Counters{Estimate: 1, Invoice: 1}

	require.NoError(t, store.Save("u1", docs, counters))

	gotDocs, gotCounters, err := store.Load("u1")
	require.NoError(t, err)
	require.Len(t, gotDocs, 2, "trashed documents are mirrored too")
	assert.Equal(t, counters, gotCounters)
	assert.Equal(t, docs[0].ID, gotDocs[0].ID)
	require.NotNil(t, gotDocs[1].DeletedAt)
	assert.True(t, deleted.Equal(*gotDocs[1].DeletedAt))
}

func TestStore_SaveReplacesFullState(t *testing.T) {
	store := newTestStore(t)

	doc := &document.Document{ID: uuid.New(), Title: "Estimate #E-0001"}
	require.NoError(t, store.Save("u1", []*document.Document{doc}, document.Counters{Estimate: 1}))
	require.NoError(t, store.Save("u1", nil, document.Counters{Estimate: 1}))

	docs, counters, err := store.Load("u1")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, document.Counters{Estimate: 1}, counters)
}

func TestStore_LoadMissingUser(t *testing.T) {
	store := newTestStore(t)

	docs, counters, err := store.Load("nobody")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, document.Counters{}, counters)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("u1", []*document.Document{{ID: uuid.New()}}, document.Counters{Estimate: 3}))

	docs, counters, err := store.Load("u2")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, document.Counters{}, counters)
}
