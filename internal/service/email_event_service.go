package service

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// EmailEventService applies provider feedback (bounces, complaints,
// deliveries) to the History rows the mail was sent from. Events are matched
// by the NotificationId header stamped at send time; the monotonicity gate on
// the row keeps late-arriving events from rolling a status back.
type EmailEventService struct {
	historyService domain.HistoryService
	logger         logger.Logger
}

func NewEmailEventService(historyService domain.HistoryService, logger logger.Logger) *EmailEventService {
	return &EmailEventService{
		historyService: historyService,
		logger:         logger,
	}
}

func (s *EmailEventService) HandleEvent(ctx context.Context, event *domain.EmailEvent) error {
	id := event.NotificationID()
	if id == "" {
		s.logger.WithField("eventType", event.NotificationType).
			Warn("Email event carries no notification id, skipping")
		return nil
	}

	status, detail, eventAt, err := event.StatusUpdate()
	if err != nil {
		// Feedback types outside the bounce/complaint/delivery set are
		// informational; consuming them keeps the queue clear.
		s.logger.WithField("notificationId", id).Warn(fmt.Sprintf("Unhandled email event: %v", err))
		return nil
	}

	updated, err := s.historyService.UpdateStatusIfNewer(ctx, id, eventAt, status, detail)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.WithField("notificationId", id).
				Warn("Email event for unknown notification, skipping")
			return nil
		}
		return fmt.Errorf("failed to apply email event to notification %s: %w", id, err)
	}
	if !updated {
		s.logger.WithFields(map[string]interface{}{
			"notificationId": id,
			"eventAt":        eventAt,
		}).Info("Stale email event ignored")
		return nil
	}

	s.logger.WithFields(map[string]interface{}{
		"notificationId": id,
		"status":         string(status),
		"detail":         detail,
	}).Info("Notification status updated from email event")
	return nil
}
