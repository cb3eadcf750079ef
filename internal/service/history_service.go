package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// HistoryService owns the History lifecycle. Every successful mutation is
// published on the event bus; the SNS broadcaster subscribes there, so the
// store itself stays side-effect free.
type HistoryService struct {
	repo     domain.HistoryRepository
	eventBus domain.EventBus
	logger   logger.Logger
}

func NewHistoryService(repo domain.HistoryRepository, eventBus domain.EventBus, logger logger.Logger) *HistoryService {
	return &HistoryService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Save validates and persists a row, then broadcasts it.
func (s *HistoryService) Save(ctx context.Context, history *domain.History) (*domain.History, error) {
	// codecov:ignore:start
	ctx, span := tracing.StartServiceSpan(ctx, "HistoryService", "Save")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "traineeId", history.Recipient.TraineeID)
	// codecov:ignore:end

	if err := history.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.Save(ctx, history)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save history: %v", err))
		// codecov:ignore:start
		tracing.MarkSpanError(ctx, err)
		// codecov:ignore:end
		return nil, fmt.Errorf("failed to save history: %w", err)
	}
	history.ID = id

	s.publishSaved(ctx, history)
	return history, nil
}

func (s *HistoryService) FindByID(ctx context.Context, id string) (*domain.History, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HistoryService) FindAllForTrainee(ctx context.Context, traineeID string) ([]*domain.History, error) {
	return s.repo.FindAllByRecipient(ctx, traineeID)
}

func (s *HistoryService) FindAllForTraineeWithStatus(ctx context.Context, traineeID string, status domain.NotificationStatus) ([]*domain.History, error) {
	return s.repo.FindAllByRecipientAndStatus(ctx, traineeID, status)
}

// UpdateStatus sets the status unconditionally after checking it is valid
// for the row's channel.
func (s *HistoryService) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, detail string) error {
	history, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !status.ValidFor(history.Recipient.Channel) {
		return &domain.InvalidStatusTransitionError{Channel: history.Recipient.Channel, Status: status}
	}

	if err := s.repo.UpdateStatus(ctx, id, status, detail); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to update history status: %v", err))
		return err
	}

	history.Status = status
	history.StatusDetail = detail
	s.publishSaved(ctx, history)
	return nil
}

// UpdateStatusIfNewer applies a provider status event unless a newer one has
// already been recorded. Stale events return false with no error.
func (s *HistoryService) UpdateStatusIfNewer(ctx context.Context, id string, eventAt time.Time, status domain.NotificationStatus, detail string) (bool, error) {
	// codecov:ignore:start
	ctx, span := tracing.StartServiceSpan(ctx, "HistoryService", "UpdateStatusIfNewer")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "notificationId", id)
	// codecov:ignore:end

	history, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !status.ValidFor(history.Recipient.Channel) {
		return false, &domain.InvalidStatusTransitionError{Channel: history.Recipient.Channel, Status: status}
	}

	modified, err := s.repo.UpdateStatusIfNewer(ctx, id, eventAt, status, detail)
	if err != nil {
		// codecov:ignore:start
		tracing.MarkSpanError(ctx, err)
		// codecov:ignore:end
		return false, err
	}
	if modified == 0 {
		return false, nil
	}

	history.Status = status
	history.StatusDetail = detail
	history.LatestStatusEventAt = &eventAt
	s.publishSaved(ctx, history)
	return true, nil
}

// MarkRead transitions an in-app row to READ, setting readAt on the first
// read only.
func (s *HistoryService) MarkRead(ctx context.Context, id, traineeID string) (*domain.History, error) {
	history, err := s.repo.FindByIDAndRecipient(ctx, id, traineeID)
	if err != nil {
		return nil, err
	}
	if !domain.StatusRead.ValidFor(history.Recipient.Channel) {
		return nil, &domain.InvalidStatusTransitionError{Channel: history.Recipient.Channel, Status: domain.StatusRead}
	}

	var readAt *time.Time
	if history.ReadAt == nil {
		now := time.Now().UTC()
		readAt = &now
	}

	if err := s.repo.UpdateReadAt(ctx, id, domain.StatusRead, readAt); err != nil {
		return nil, err
	}

	history.Status = domain.StatusRead
	if readAt != nil {
		history.ReadAt = readAt
	}
	s.publishSaved(ctx, history)
	return history, nil
}

// Archive transitions an in-app row to ARCHIVED, preserving readAt.
func (s *HistoryService) Archive(ctx context.Context, id, traineeID string) (*domain.History, error) {
	history, err := s.repo.FindByIDAndRecipient(ctx, id, traineeID)
	if err != nil {
		return nil, err
	}
	if !domain.StatusArchived.ValidFor(history.Recipient.Channel) {
		return nil, &domain.InvalidStatusTransitionError{Channel: history.Recipient.Channel, Status: domain.StatusArchived}
	}

	if err := s.repo.UpdateReadAt(ctx, id, domain.StatusArchived, nil); err != nil {
		return nil, err
	}

	history.Status = domain.StatusArchived
	s.publishSaved(ctx, history)
	return history, nil
}

// Delete removes a row owned by the trainee and broadcasts the deletion.
func (s *HistoryService) Delete(ctx context.Context, id, traineeID string) error {
	deleted, err := s.repo.DeleteByIDAndRecipient(ctx, id, traineeID)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.ErrNotFound{Entity: "History", ID: id}
	}

	s.eventBus.Publish(ctx, domain.EventPayload{
		Type:     domain.EventHistoryDeleted,
		EntityID: id,
	})
	return nil
}

// Rebroadcast republishes rows by id. Missing rows are logged and skipped so
// one stale id cannot wedge an outbox batch.
func (s *HistoryService) Rebroadcast(ctx context.Context, ids []string) error {
	for _, id := range ids {
		history, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if domain.IsNotFound(err) {
				s.logger.WithField("notificationId", id).Warn("Skipping rebroadcast of missing history row")
				continue
			}
			return err
		}
		s.publishSaved(ctx, history)
	}
	return nil
}

func (s *HistoryService) publishSaved(ctx context.Context, history *domain.History) {
	s.eventBus.Publish(ctx, domain.EventPayload{
		Type:     domain.EventHistorySaved,
		EntityID: history.ID,
		History:  history,
	})
}
