package personnel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/internal/roster"
)

// API is the slice of the request capability the workflow needs.
type API interface {
	Post(ctx context.Context, path string, body, out interface{}) error
	Patch(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string) error
}

// Notifier surfaces user-visible feedback; the embedding application
// supplies the implementation.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Confirmer is the blocking yes/no prompt used before irreversible actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Service executes the personnel mutation workflow. Actions are invoked one
// at a time by the caller; there is no queueing, batching or retrying. No
// optimistic state change is ever applied, so a failed request leaves the
// store untouched.
type Service struct {
	api       API
	store     *roster.Store[Record]
	notifier  Notifier
	confirmer Confirmer
	bus       *events.Bus
	logger    *slog.Logger
}

func NewService(api API, store *roster.Store[Record], notifier Notifier, confirmer Confirmer, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		api:       api,
		store:     store,
		notifier:  notifier,
		confirmer: confirmer,
		bus:       bus,
		logger:    logger,
	}
}

// Create validates presence of the required fields, maps the flat form into
// the nested payload and dispatches it. On success the store reloads and the
// optional callback runs.
func (s *Service) Create(ctx context.Context, form FormInput, onSuccess func()) error {
	if err := form.Validate(); err != nil {
		s.logger.Error("personnel create validation failed", "error", err)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	if err := s.api.Post(ctx, "/personnel", form.ToPayload(), nil); err != nil {
		s.logger.Error("personnel create failed", "error", err)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	s.afterMutation(ctx, events.TypeRecordCreated, 0)
	s.notifier.Info("personnel record created")
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

// Update resolves the target id through the form's fallback chain and fails
// fast, with zero requests, when none resolve. The record is fully replaced,
// not patched field by field; cleared optional dates go out as null.
func (s *Service) Update(ctx context.Context, form UpdateFormInput, onSuccess func()) error {
	id, err := form.ResolveID()
	if err != nil {
		s.logger.Error("personnel update with unresolvable id")
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	if err := form.Validate(); err != nil {
		s.logger.Error("personnel update validation failed", "error", err, "record_id", id)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	if err := s.api.Patch(ctx, fmt.Sprintf("/personnel/%d", id), form.ToPayload(), nil); err != nil {
		s.logger.Error("personnel update failed", "error", err, "record_id", id)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	s.afterMutation(ctx, events.TypeRecordUpdated, id)
	s.notifier.Info("personnel record updated")
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

// Delete permanently removes a record after explicit confirmation. A
// declined confirmation aborts with zero requests.
func (s *Service) Delete(ctx context.Context, id int64) error {
	confirmed, err := s.confirmer.Confirm(ctx,
		fmt.Sprintf("Permanently delete personnel record %d? This cannot be undone.", id))
	if err != nil {
		return err
	}
	if !confirmed {
		s.notifier.Info("deletion cancelled")
		return nil
	}

	if err := s.api.Delete(ctx, fmt.Sprintf("/personnel/%d", id)); err != nil {
		s.logger.Error("personnel delete failed", "error", err, "record_id", id)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	s.afterMutation(ctx, events.TypeRecordDeleted, id)
	s.notifier.Info("personnel record deleted")
	return nil
}

func (s *Service) afterMutation(ctx context.Context, eventType events.Type, id int64) {
	s.bus.Publish(events.New(eventType, map[string]interface{}{
		"roster":    "personnel",
		"record_id": id,
	}))
	if err := s.store.Reload(ctx); err != nil {
		// The mutation itself succeeded; the stale view surfaces through the
		// store's own error state.
		s.logger.Warn("reload after personnel mutation failed", "error", err)
	}
}
