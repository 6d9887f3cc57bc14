package events

import (
	"log/slog"
	"sync"
	"time"
)

type Type string

const (
	TypeRosterLoaded     Type = "roster.loaded"
	TypeRosterLoadFailed Type = "roster.load_failed"
	TypeRecordCreated    Type = "record.created"
	TypeRecordUpdated    Type = "record.updated"
	TypeRecordDeleted    Type = "record.deleted"
	TypeAbsenceApproved  Type = "absence.approved"
	TypeAbsenceRejected  Type = "absence.rejected"
)

// Event carries a roster lifecycle notification. Data holds event-specific
// attributes (record ids, counts, error messages).
type Event struct {
	Type       Type
	OccurredAt time.Time
	Data       map[string]interface{}
}

func New(t Type, data map[string]interface{}) Event {
	return Event{Type: t, OccurredAt: time.Now(), Data: data}
}

type Handler func(Event)

// Bus is a small in-process pub/sub used by the roster stores and the
// workflow services so screens can react to reloads without polling.
// Handlers run synchronously on the publisher's goroutine.
type Bus struct {
	handlers map[Type][]Handler
	logger   *slog.Logger
	mu       sync.RWMutex
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(t Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[t] = append(b.handlers[t], handler)
	b.logger.Debug("event handler registered",
		"event_type", t,
		"total_handlers", len(b.handlers[t]))
}

func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event type", "event_type", event.Type)
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}
