package roster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/core/events"
)

// Record is what a store element must expose for keying, filtering and
// display. Families without a workflow status return "" from StatusKey and
// the status filter is a no-op for them.
type Record interface {
	RecordID() int64
	DisplayName() string
	StatusKey() string
	CategoryKey() string
}

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Fetcher is the abstract request capability a store loads through: it
// returns the already-normalized collection for one roster.
type Fetcher[T Record] func(ctx context.Context) ([]T, error)

// Store owns the raw collection for one screen instance. Two stores never
// share state; simultaneously open screens hold independent copies and can
// diverge until each reloads.
type Store[T Record] struct {
	name    string
	fetcher Fetcher[T]
	bus     *events.Bus
	logger  *slog.Logger

	mu      sync.RWMutex
	records map[int64]T
	status  Status
	errMsg  string
}

func NewStore[T Record](name string, fetcher Fetcher[T], bus *events.Bus, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		name:    name,
		fetcher: fetcher,
		bus:     bus,
		logger:  logger,
		records: make(map[int64]T),
	}
}

// Load fetches the collection and replaces the raw state atomically. There is
// no cancellation of in-flight loads: when two loads overlap, whichever
// response resolves last wins, even if it was issued first. On failure the
// collection is cleared rather than keeping last-known-good data.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	records, err := s.fetcher(ctx)
	if err != nil {
		msg := internal.UserMessage(err)
		s.mu.Lock()
		s.records = make(map[int64]T)
		s.status = StatusError
		s.errMsg = msg
		s.mu.Unlock()

		s.logger.Error("roster load failed", "roster", s.name, "error", err)
		s.bus.Publish(events.New(events.TypeRosterLoadFailed, map[string]interface{}{
			"roster":  s.name,
			"message": msg,
		}))
		return err
	}

	byID := make(map[int64]T, len(records))
	for _, r := range records {
		byID[r.RecordID()] = r
	}

	s.mu.Lock()
	s.records = byID
	s.status = StatusReady
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info("roster loaded", "roster", s.name, "count", len(byID))
	s.bus.Publish(events.New(events.TypeRosterLoaded, map[string]interface{}{
		"roster": s.name,
		"count":  len(byID),
	}))
	return nil
}

// Reload re-invokes Load with the fetcher the store was built with. Workflow
// services call it after every successful mutation.
func (s *Store[T]) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Subscribe registers a handler for this store's load lifecycle events.
func (s *Store[T]) Subscribe(handler events.Handler) {
	forRoster := func(e events.Event) {
		if e.Data["roster"] == s.name {
			handler(e)
		}
	}
	s.bus.Subscribe(events.TypeRosterLoaded, forRoster)
	s.bus.Subscribe(events.TypeRosterLoadFailed, forRoster)
}

func (s *Store[T]) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store[T]) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Records returns a copy of the raw collection, in no particular order.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	return out
}

func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// View projects the current raw collection through the filter/sort pipeline.
func (s *Store[T]) View(filters Filters, cmp Comparator[T]) []T {
	return Project(s.Records(), filters, cmp)
}
