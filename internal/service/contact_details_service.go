package service

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ContactDetailsService retries failed emails when a trainee fixes their
// contact address. Only rows whose recorded contact differs from the new
// address are retried; a row that already failed against the same address
// would fail again.
type ContactDetailsService struct {
	historyService domain.HistoryService
	emailSender    domain.EmailSender
	logger         logger.Logger
}

func NewContactDetailsService(
	historyService domain.HistoryService,
	emailSender domain.EmailSender,
	logger logger.Logger,
) *ContactDetailsService {
	return &ContactDetailsService{
		historyService: historyService,
		emailSender:    emailSender,
		logger:         logger,
	}
}

func (s *ContactDetailsService) HandleUpdate(ctx context.Context, event *domain.ContactDetailsUpdatedEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}
	if event.Email == "" {
		s.logger.WithField("traineeId", event.TraineeID).
			Warn("Contact details update without an email address, nothing to retry")
		return nil
	}

	failed, err := s.historyService.FindAllForTraineeWithStatus(ctx, event.TraineeID, domain.StatusFailed)
	if err != nil {
		return fmt.Errorf("failed to find failed notifications for trainee %s: %w", event.TraineeID, err)
	}

	resent := 0
	for _, history := range failed {
		if history.Recipient.Channel != domain.ChannelEmail {
			continue
		}
		if history.Recipient.Contact == event.Email {
			continue
		}

		// A resend error aborts the pass; rows already retried are PENDING
		// now, so the redelivered event picks up where this one stopped.
		if err := s.emailSender.Resend(ctx, history, event.Email); err != nil {
			return fmt.Errorf("failed to resend notification %s: %w", history.ID, err)
		}
		resent++
	}

	if resent > 0 {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": event.TraineeID,
			"count":     resent,
		}).Info("Resent failed notifications to updated address")
	}
	return nil
}
