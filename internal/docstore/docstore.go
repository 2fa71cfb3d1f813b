// Package docstore implements the local-first document store: an in-memory
// authoritative map per user session, mirrored synchronously to local durable
// storage and asynchronously, best-effort, to the user's remote collection.
package docstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore/syncer"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

//go:generate mockgen -source=docstore.go -destination=repository_mock.go -package=docstore

// Repository is the remote per-user document collection.
type Repository interface {
	FetchDocuments(ctx context.Context, userID string) ([]*document.Document, error)
	FetchCounters(ctx context.Context, userID string) (document.Counters, error)
	UpsertDocument(ctx context.Context, userID string, doc *document.Document) error
	DeleteDocument(ctx context.Context, userID string, id uuid.UUID) error
	SaveCounters(ctx context.Context, userID string, counters document.Counters) error
}

// LocalStore is the durable local mirror. It is the synchronous read path
// across process restarts and the offline fallback when the remote is
// unreachable. Load tolerates absent or malformed slots by returning empty
// state.
type LocalStore interface {
	Save(userID string, docs []*document.Document, counters document.Counters) error
	Load(userID string) ([]*document.Document, document.Counters, error)
}

// Service owns the shared collaborators and the per-user sessions.
type Service struct {
	catalog *template.Catalog
	local   LocalStore
	remote  Repository
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(catalog *template.Catalog, local LocalStore, remote Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		catalog:  catalog,
		local:    local,
		remote:   remote,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// InitSession builds a fresh session for the user: local state is loaded
// first, then the remote collection and counters replace it when both fetches
// succeed. Counters reconcile by per-type max so a sequence can never regress
// below numbers already minted locally. Remote failures are logged and the
// session continues on local state alone.
func (s *Service) InitSession(ctx context.Context, userID string) *Session {
	docs, counters, err := s.local.Load(userID)
	if err != nil {
		s.logger.Warn("failed to load local state, starting empty", "user", userID, "error", err)

		docs, counters = nil, document.Counters{}
	}

	remoteDocs, err := s.remote.FetchDocuments(ctx, userID)
	if err != nil {
		s.logger.Warn("remote fetch failed, continuing offline", "user", userID, "error", err)
	} else {
		remoteCounters, err := s.remote.FetchCounters(ctx, userID)
		if err != nil {
			s.logger.Warn("remote counters fetch failed, continuing offline", "user", userID, "error", err)
		} else {
			docs = remoteDocs
			counters.Merge(remoteCounters)
		}
	}

	sess := &Session{
		userID:   userID,
		catalog:  s.catalog,
		local:    s.local,
		logger:   s.logger,
		syncer:   syncer.New(userID, s.remote, s.logger),
		docs:     make(map[uuid.UUID]*document.Document, len(docs)),
		counters: counters,
		now:      time.Now,
	}
	for _, d := range docs {
		sess.docs[d.ID] = d.Clone()
	}

	// Re-serialize so the local mirror reflects the reconciled snapshot.
	sess.mu.Lock()
	sess.saveLocalLocked()
	sess.mu.Unlock()

	s.mu.Lock()
	if old, ok := s.sessions[userID]; ok {
		old.Close()
	}

	s.sessions[userID] = sess
	s.mu.Unlock()

	return sess
}

// Session returns the user's active session, initializing one on first use.
func (s *Service) Session(ctx context.Context, userID string) *Session {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()

	if ok {
		return sess
	}

	return s.InitSession(ctx, userID)
}

// Close stops all session sync dispatchers, draining queued work.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		sess.Close()
	}

	s.sessions = make(map[string]*Session)
}
