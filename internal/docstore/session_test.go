package docstore_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

const testUser = "user-1"

var estimateParams = docstore.CreateParams{
	Industry:   "construction",
	TemplateID: "construction-estimate-v1",
	Language:   "en",
}

// fakeLocal is an in-memory LocalStore that keeps state across sessions, the
// way the durable slots do across process restarts.
type fakeLocal struct {
	mu       sync.Mutex
	docs     map[string][]*document.Document
	counters map[string]document.Counters
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{
		docs:     make(map[string][]*document.Document),
		counters: make(map[string]document.Counters),
	}
}

func (f *fakeLocal) Save(userID string, docs []*document.Document, counters document.Counters) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]*document.Document, len(docs))
	for i, d := range docs {
		stored[i] = d.Clone()
	}

	f.docs[userID] = stored
	f.counters[userID] = counters

	return nil
}

func (f *fakeLocal) Load(userID string) ([]*document.Document, document.Counters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.docs[userID], f.counters[userID], nil
}

func newTestService(t *testing.T) (*docstore.Service, *docstore.MockRepository, *fakeLocal) {
	t.Helper()

	ctrl := gomock.NewController(t)
	remote := docstore.NewMockRepository(ctrl)

	// Outbound sync is fire-and-forget; tests drain it via Close and only
	// pin the write calls where the sync behavior itself is under test.
	remote.EXPECT().UpsertDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	remote.EXPECT().DeleteDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	remote.EXPECT().SaveCounters(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	local := newFakeLocal()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := docstore.NewService(template.NewCatalog(), local, remote, logger)

	t.Cleanup(svc.Close)

	return svc, remote, local
}

func expectEmptyRemote(remote *docstore.MockRepository) {
	remote.EXPECT().FetchDocuments(gomock.Any(), testUser).Return(nil, nil)
	remote.EXPECT().FetchCounters(gomock.Any(), testUser).Return(document.Counters{}, nil)
}

func TestSession_CreateFromTemplate_Scenario(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	doc, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	assert.Equal(t, document.DocTypeEstimate, doc.DocType)
	assert.Equal(t, document.StatusDraft, doc.Status)
	assert.Equal(t, "E-0001", doc.Meta.EstimateNumber)
	assert.Empty(t, doc.Meta.InvoiceNumber)
	assert.Empty(t, doc.Meta.DueDate)
	assert.Equal(t, "Estimate #E-0001", doc.Title)

	require.Len(t, doc.LineItems, 2)
	assert.Equal(t, "Labor", doc.LineItems[0].Name)
	assert.Equal(t, "Materials", doc.LineItems[1].Name)

	for _, li := range doc.LineItems {
		assert.Equal(t, document.Amount(1), li.Qty)
		assert.Equal(t, document.Amount(0), li.Rate)
	}

	assert.True(t, doc.Show.EstimateNumber)
	assert.False(t, doc.Show.DueDate)
	assert.Equal(t, "construction", doc.Industry)
	assert.Equal(t, doc.CreatedAt, doc.LastEditedAt)
	assert.Nil(t, doc.DeletedAt)
}

func TestSession_CreateFromTemplate_InvoiceSpanish(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	doc, err := sess.CreateFromTemplate(docstore.CreateParams{
		Industry:   "construction",
		TemplateID: "construction-invoice-v1",
		Language:   "es",
	})
	require.NoError(t, err)

	assert.Equal(t, document.DocTypeInvoice, doc.DocType)
	assert.Equal(t, "I-0001", doc.Meta.InvoiceNumber)
	assert.Empty(t, doc.Meta.EstimateNumber)
	assert.Equal(t, "Factura #I-0001", doc.Title)
	assert.Equal(t, "Mano de obra", doc.LineItems[0].Name)

	issue, err := time.Parse(time.DateOnly, doc.Meta.IssueDate)
	require.NoError(t, err)
	due, err := time.Parse(time.DateOnly, doc.Meta.DueDate)
	require.NoError(t, err)
	assert.Equal(t, issue.AddDate(0, 0, 15), due)
}

func TestSession_CreateFromTemplate_UnknownTemplate(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	doc, err := sess.CreateFromTemplate(docstore.CreateParams{TemplateID: "construction-estimate-v9"})
	assert.ErrorIs(t, err, template.ErrNotFound)
	assert.Nil(t, doc)

	assert.Empty(t, sess.List(docstore.ListFilter{}), "nothing persisted")
	assert.Equal(t, document.Counters{}, sess.Counters(), "no sequence number consumed")
}

func TestSession_IDUniqueness(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	seen := make(map[uuid.UUID]struct{})

	for range 50 {
		doc, err := sess.CreateFromTemplate(estimateParams)
		require.NoError(t, err)

		_, dup := seen[doc.ID]
		require.False(t, dup, "document id reused")

		seen[doc.ID] = struct{}{}
	}
}

func TestSession_CounterMonotonicity_AcrossInitSession(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	for i, want := range []string{"E-0001", "E-0002", "E-0003"} {
		doc, err := sess.CreateFromTemplate(estimateParams)
		require.NoError(t, err)
		assert.Equal(t, want, doc.Meta.EstimateNumber, "create %d", i)
	}

	// A stale remote (e.g. an offline session on this device got ahead of the
	// last successful sync) must not regress the counter on re-init.
	remote.EXPECT().FetchDocuments(gomock.Any(), testUser).Return(nil, nil)
	remote.EXPECT().FetchCounters(gomock.Any(), testUser).Return(document.Counters{Estimate: 1}, nil)

	sess = svc.InitSession(context.Background(), testUser)

	doc, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)
	assert.Equal(t, "E-0004", doc.Meta.EstimateNumber)
}

func TestSession_InitSession_ReplacesWithRemote(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	_, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	remoteDoc := &document.Document{
		ID:           uuid.New(),
		DocType:      document.DocTypeEstimate,
		Title:        "Estimate #E-0009",
		Meta:         document.Meta{EstimateNumber: "E-0009"},
		LastEditedAt: time.Now(),
	}
	remote.EXPECT().FetchDocuments(gomock.Any(), testUser).Return([]*document.Document{remoteDoc}, nil)
	remote.EXPECT().FetchCounters(gomock.Any(), testUser).Return(document.Counters{Estimate: 9}, nil)

	sess = svc.InitSession(context.Background(), testUser)

	docs := sess.List(docstore.ListFilter{})
	require.Len(t, docs, 1, "remote snapshot replaces local state")
	assert.Equal(t, remoteDoc.ID, docs[0].ID)
}

func TestSession_InitSession_RemoteFailureKeepsLocal(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	remote.EXPECT().FetchDocuments(gomock.Any(), testUser).Return(nil, assert.AnError)

	sess = svc.InitSession(context.Background(), testUser)

	docs := sess.List(docstore.ListFilter{})
	require.Len(t, docs, 1, "local state survives a remote outage")
	assert.Equal(t, created.ID, docs[0].ID)

	doc, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)
	assert.Equal(t, "E-0002", doc.Meta.EstimateNumber, "counter continues from local value")
}

func TestSession_SoftDeleteRestore_RoundTrip(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	deleted := sess.SoftDelete(created.ID)
	require.NotNil(t, deleted)
	require.NotNil(t, deleted.DeletedAt)
	assert.Equal(t, *deleted.DeletedAt, deleted.LastEditedAt)

	assert.Empty(t, sess.List(docstore.ListFilter{}))
	require.Len(t, sess.ListDeleted(), 1)

	restored := sess.Restore(created.ID)
	require.NotNil(t, restored)
	assert.Nil(t, restored.DeletedAt)

	assert.Len(t, sess.List(docstore.ListFilter{}), 1)
	assert.Empty(t, sess.ListDeleted())
}

func TestSession_SoftDelete_UnknownID(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	assert.Nil(t, sess.SoftDelete(uuid.New()))
	assert.Nil(t, sess.Restore(uuid.New()))
}

func TestSession_HardDelete_Idempotent(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	sess.HardDelete(created.ID)
	assert.Nil(t, sess.Get(created.ID))

	sess.HardDelete(created.ID)
	assert.Nil(t, sess.Get(created.ID))
	assert.Empty(t, sess.List(docstore.ListFilter{}))
	assert.Empty(t, sess.ListDeleted())
}

func TestSession_Patch_TitleOnly(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	pre := sess.Get(created.ID)

	title := "Kitchen remodel"
	patched := sess.Patch(created.ID, document.Patch{Title: &title})
	require.NotNil(t, patched)

	want := pre.Clone()
	want.Title = title
	want.LastEditedAt = patched.LastEditedAt

	assert.Equal(t, want, patched, "only title and lastEditedAt change")
	assert.True(t, patched.LastEditedAt.After(pre.LastEditedAt))
}

func TestSession_Patch_UnknownID(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	title := "X"
	assert.Nil(t, sess.Patch(uuid.New(), document.Patch{Title: &title}))
}

func TestSession_List_Ordering(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	first, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)
	second, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)
	third, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	ids := func(docs []*document.Document) []uuid.UUID {
		out := make([]uuid.UUID, len(docs))
		for i, d := range docs {
			out[i] = d.ID
		}
		return out
	}

	assert.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, ids(sess.List(docstore.ListFilter{})))

	title := "Patched"
	require.NotNil(t, sess.Patch(first.ID, document.Patch{Title: &title}))

	assert.Equal(t, []uuid.UUID{first.ID, third.ID, second.ID}, ids(sess.List(docstore.ListFilter{})),
		"patching the oldest document moves it to the front")
}

func TestSession_List_Query(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)

	a, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)
	_, err = sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	title := "Kitchen remodel"
	require.NotNil(t, sess.Patch(a.ID, document.Patch{Title: &title}))

	matches := sess.List(docstore.ListFilter{Query: "kitchen"})
	require.Len(t, matches, 1)
	assert.Equal(t, a.ID, matches[0].ID)

	assert.Len(t, sess.List(docstore.ListFilter{Query: "estimate"}), 1)
	assert.Empty(t, sess.List(docstore.ListFilter{Query: "zzz"}))
}

func TestSession_LocalMirror_SurvivesRestart(t *testing.T) {
	svc, remote, local := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	docs, counters, err := local.Load(testUser)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, created.ID, docs[0].ID)
	assert.Equal(t, document.Counters{Estimate: 1}, counters)
}

func TestSession_Get_ReturnsCopy(t *testing.T) {
	svc, remote, _ := newTestService(t)
	expectEmptyRemote(remote)

	sess := svc.InitSession(context.Background(), testUser)
	created, err := sess.CreateFromTemplate(estimateParams)
	require.NoError(t, err)

	got := sess.Get(created.ID)
	got.Title = "mutated by caller"
	got.LineItems[0].Name = "mutated"

	fresh := sess.Get(created.ID)
	assert.Equal(t, created.Title, fresh.Title)
	assert.Equal(t, "Labor", fresh.LineItems[0].Name)
}
