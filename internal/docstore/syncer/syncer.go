// Package syncer dispatches fire-and-forget remote writes. Tasks carry the
// full document snapshot taken at enqueue time; delivery is at-most-once with
// no retry, and failures are logged, never surfaced to the mutating caller.
package syncer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

// Remote is the subset of the remote collection the dispatcher writes to.
type Remote interface {
	UpsertDocument(ctx context.Context, userID string, doc *document.Document) error
	DeleteDocument(ctx context.Context, userID string, id uuid.UUID) error
	SaveCounters(ctx context.Context, userID string, counters document.Counters) error
}

// Task is one outbound sync unit. A nil Doc means the document was hard
// deleted and should be removed remotely. Counters ride along on every task.
type Task struct {
	DocID    uuid.UUID
	Doc      *document.Document
	Counters document.Counters
}

// Dispatcher drains tasks on a single background worker, preserving enqueue
// order within a session. Enqueue never blocks: when the queue is full the
// task is dropped with a warning, which is within the store's best-effort
// contract (the local mirror already holds the mutation).
type Dispatcher struct {
	userID string
	remote Remote
	logger *slog.Logger

	mu     sync.Mutex
	closed bool

	tasks chan Task
	done  chan struct{}
}

const queueDepth = 64

func New(userID string, remote Remote, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		userID: userID,
		remote: remote,
		logger: logger,
		tasks:  make(chan Task, queueDepth),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

// Enqueue schedules a task. Returns false if the task was dropped because the
// dispatcher is closed or the queue is full.
func (d *Dispatcher) Enqueue(t Task) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return false
	}

	select {
	case d.tasks <- t:
		return true
	default:
		d.logger.Warn("sync queue full, dropping task", "user", d.userID, "doc", t.DocID)
		return false
	}
}

// Close stops intake and blocks until queued tasks are drained.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ctx := context.Background()

	for t := range d.tasks {
		if t.Doc != nil {
			if err := d.remote.UpsertDocument(ctx, d.userID, t.Doc); err != nil {
				d.logger.Warn("remote document sync failed", "user", d.userID, "doc", t.DocID, "error", err)
			}
		} else {
			if err := d.remote.DeleteDocument(ctx, d.userID, t.DocID); err != nil {
				d.logger.Warn("remote document delete failed", "user", d.userID, "doc", t.DocID, "error", err)
			}
		}

		if err := d.remote.SaveCounters(ctx, d.userID, t.Counters); err != nil {
			d.logger.Warn("remote counters sync failed", "user", d.userID, "error", err)
		}
	}
}
