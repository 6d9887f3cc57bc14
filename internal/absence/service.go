package absence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kbelhadj/roster-management/internal"
	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/internal/roster"
)

// API is the slice of the request capability the workflow needs.
type API interface {
	Post(ctx context.Context, path string, body, out interface{}) error
}

type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Confirmer is the confirmation capability: a blocking yes/no prompt plus a
// free-text prompt for the rejection reason.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	Ask(ctx context.Context, prompt string) (string, error)
}

// Service executes the approve/reject workflow. Guard rejections (acting on
// a non-PENDING record, an empty rejection reason) are local failures that
// never reach the network.
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

// Approve transitions a PENDING request to APPROVED with an audit comment,
// after an explicit confirmation step.
func (s *Service) Approve(ctx context.Context, id int64, comment string) error {
	record, ok := s.store.Get(id)
	if !ok {
		s.notifier.Error(internal.UserMessage(internal.ErrRecordNotFound))
		return internal.ErrRecordNotFound
	}
	if !record.CanBeApproved() {
		s.logger.Warn("cannot approve absence in current status",
			"absence_id", id,
			"current_status", record.Status)
		s.notifier.Error(internal.UserMessage(internal.ErrInvalidStatus))
		return internal.ErrInvalidStatus
	}

	confirmed, err := s.confirmer.Confirm(ctx,
		fmt.Sprintf("Approve absence request %d for %s?", id, record.PersonnelName))
	if err != nil {
		return err
	}
	if !confirmed {
		s.notifier.Info("approval cancelled")
		return nil
	}

	payload := absenceDatamodel.ApprovePayload{Comment: comment}
	if err := s.api.Post(ctx, fmt.Sprintf("/absences/%d/approve", id), payload, nil); err != nil {
		s.logger.Error("absence approval failed", "error", err, "absence_id", id)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	s.afterMutation(ctx, events.TypeAbsenceApproved, id)
	s.notifier.Info("absence request approved")
	return nil
}

// Reject prompts for a reason and transitions a PENDING request to REJECTED.
// An empty reason aborts with zero network calls.
func (s *Service) Reject(ctx context.Context, id int64) error {
	record, ok := s.store.Get(id)
	if !ok {
		s.notifier.Error(internal.UserMessage(internal.ErrRecordNotFound))
		return internal.ErrRecordNotFound
	}
	if !record.CanBeRejected() {
		s.logger.Warn("cannot reject absence in current status",
			"absence_id", id,
			"current_status", record.Status)
		s.notifier.Error(internal.UserMessage(internal.ErrInvalidStatus))
		return internal.ErrInvalidStatus
	}

	reason, err := s.confirmer.Ask(ctx,
		fmt.Sprintf("Reason for rejecting absence request %d:", id))
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		s.notifier.Error(internal.UserMessage(internal.ErrEmptyReason))
		return internal.ErrEmptyReason
	}

	payload := absenceDatamodel.RejectPayload{Reason: reason}
	if err := s.api.Post(ctx, fmt.Sprintf("/absences/%d/reject", id), payload, nil); err != nil {
		s.logger.Error("absence rejection failed", "error", err, "absence_id", id)
		s.notifier.Error(internal.UserMessage(err))
		return err
	}

	s.afterMutation(ctx, events.TypeAbsenceRejected, id)
	s.notifier.Info("absence request rejected")
	return nil
}

func (s *Service) afterMutation(ctx context.Context, eventType events.Type, id int64) {
	s.bus.Publish(events.New(eventType, map[string]interface{}{
		"roster":    "absences",
		"record_id": id,
	}))
	if err := s.store.Reload(ctx); err != nil {
		s.logger.Warn("reload after absence mutation failed", "error", err)
	}
}
