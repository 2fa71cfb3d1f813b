package docstore

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore/syncer"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

// dueDateOffsetDays is how far past the issue date an invoice falls due.
const dueDateOffsetDays = 15

// Session is a user-scoped document store. The in-memory map is authoritative
// for all reads; every mutation synchronously rewrites the local mirror and
// enqueues a best-effort remote sync before returning. No operation ever
// blocks its caller on network IO.
type Session struct {
	userID  string
	catalog *template.Catalog
	local   LocalStore
	logger  *slog.Logger
	syncer  *syncer.Dispatcher

	mu       sync.RWMutex
	docs     map[uuid.UUID]*document.Document
	counters document.Counters

	now func() time.Time
}

// UserID returns the opaque user identifier the session is scoped to.
func (s *Session) UserID() string {
	return s.userID
}

// CreateParams identifies the template a new document is instantiated from.
type CreateParams struct {
	Industry   string
	TemplateID string
	Language   string
}

// ListFilter narrows List results. Query matches case-insensitively against
// document titles.
type ListFilter struct {
	Query string
}

// CreateFromTemplate mints a new document from the template's localized
// defaults, consuming the next sequence number for the template's doc type.
// Returns template.ErrNotFound (nothing persisted) when the id is unknown.
func (s *Session) CreateFromTemplate(params CreateParams) (*document.Document, error) {
	tmpl, err := s.catalog.TemplateByID(params.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", params.TemplateID, err)
	}

	lang := params.Language
	if lang == "" {
		lang = template.DefaultLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	number := document.FormatNumber(tmpl.DocType, s.counters.Next(tmpl.DocType))
	now := s.now()

	meta := document.Meta{
		IssueDate: now.Format(time.DateOnly),
		PageNo:    "1",
		PageCount: "1",
	}

	switch tmpl.DocType {
	case document.DocTypeInvoice:
		meta.InvoiceNumber = number
		meta.DueDate = now.AddDate(0, 0, dueDateOffsetDays).Format(time.DateOnly)
	default:
		meta.EstimateNumber = number
	}

	items := make([]document.LineItem, len(tmpl.Defaults.LineItems))
	for i, li := range tmpl.Defaults.LineItems {
		items[i] = document.LineItem{
			ID:   uuid.New(),
			Name: li.Name.ForLanguage(lang),
			Qty:  li.Qty,
			Rate: li.Rate,
		}
	}

	doc := &document.Document{
		ID:           uuid.New(),
		Industry:     tmpl.Industry,
		TemplateID:   tmpl.ID,
		Language:     lang,
		DocType:      tmpl.DocType,
		Status:       document.StatusDraft,
		Title:        fmt.Sprintf("%s #%s", tmpl.Defaults.Title.ForLanguage(lang), number),
		Meta:         meta,
		Show:         tmpl.Defaults.Show,
		LineItems:    items,
		Notes:        tmpl.Defaults.Notes.ForLanguage(lang),
		Terms:        tmpl.Defaults.Terms.ForLanguage(lang),
		Description:  tmpl.Description.ForLanguage(lang),
		CreatedAt:    now,
		LastEditedAt: now,
	}

	s.docs[doc.ID] = doc
	s.persistLocked(doc.ID)

	return doc.Clone(), nil
}

// Get returns the document, or nil when the id is unknown. Purely an
// in-memory lookup; the remote collection is only consulted at session init.
func (s *Session) Get(id uuid.UUID) *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}

	return doc.Clone()
}

// Patch merges the partial update into the document and stamps lastEditedAt.
// Returns nil when the id is unknown.
func (s *Session) Patch(id uuid.UUID, patch document.Patch) *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}

	patch.Apply(doc)
	doc.LastEditedAt = s.now()
	s.persistLocked(id)

	return doc.Clone()
}

// List returns live documents, most recently edited first.
func (s *Session) List(filter ListFilter) []*document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var out []*document.Document

	for _, doc := range s.docs {
		if doc.Deleted() {
			continue
		}

		if query != "" && !strings.Contains(strings.ToLower(doc.Title), query) {
			continue
		}

		out = append(out, doc.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastEditedAt.After(out[j].LastEditedAt)
	})

	return out
}

// ListDeleted returns trashed documents, most recently deleted first.
func (s *Session) ListDeleted() []*document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*document.Document

	for _, doc := range s.docs {
		if !doc.Deleted() {
			continue
		}

		out = append(out, doc.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeletedAt.After(*out[j].DeletedAt)
	})

	return out
}

// SoftDelete moves the document to the trash. Returns nil for unknown ids.
func (s *Session) SoftDelete(id uuid.UUID) *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}

	now := s.now()
	doc.DeletedAt = &now
	doc.LastEditedAt = now
	s.persistLocked(id)

	return doc.Clone()
}

// Restore returns a trashed document to the live set. It reappears in List
// ordered by its new lastEditedAt. Returns nil for unknown ids.
func (s *Session) Restore(id uuid.UUID) *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}

	doc.DeletedAt = nil
	doc.LastEditedAt = s.now()
	s.persistLocked(id)

	return doc.Clone()
}

// HardDelete permanently removes the document locally and schedules the
// remote delete. Deleting an unknown id is a no-op, so the operation is
// idempotent. The consumed sequence number is never reused.
func (s *Session) HardDelete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return
	}

	delete(s.docs, id)
	s.persistLocked(id)
}

// Counters returns a copy of the current numbering counters.
func (s *Session) Counters() document.Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.counters
}

// Close stops the outbound sync dispatcher after draining queued tasks.
func (s *Session) Close() {
	s.syncer.Close()
}

// persistLocked writes the full local mirror and enqueues a remote sync for
// the affected document. Local write failures are logged and swallowed: the
// in-memory mutation has already succeeded, the state just won't survive a
// restart. The caller must hold s.mu.
func (s *Session) persistLocked(id uuid.UUID) {
	s.saveLocalLocked()

	task := syncer.Task{DocID: id, Counters: s.counters}
	if doc, ok := s.docs[id]; ok {
		task.Doc = doc.Clone()
	}

	s.syncer.Enqueue(task)
}

func (s *Session) saveLocalLocked() {
	docs := make([]*document.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}

	if err := s.local.Save(s.userID, docs, s.counters); err != nil {
		s.logger.Warn("failed to persist local state", "user", s.userID, "error", err)
	}
}
