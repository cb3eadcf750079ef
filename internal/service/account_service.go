package service

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// AccountService reacts to identity directory events: the post-registration
// welcome row and the sign-in email change alerts.
type AccountService struct {
	historyService domain.HistoryService
	inAppSender    domain.InAppSender
	emailSender    domain.EmailSender
	logger         logger.Logger
}

func NewAccountService(
	historyService domain.HistoryService,
	inAppSender domain.InAppSender,
	emailSender domain.EmailSender,
	logger logger.Logger,
) *AccountService {
	return &AccountService{
		historyService: historyService,
		inAppSender:    inAppSender,
		emailSender:    emailSender,
		logger:         logger,
	}
}

// HandleConfirmed writes the WELCOME in-app row once per trainee. A
// re-confirmed account, or a redelivered event, finds the existing row and
// skips.
func (s *AccountService) HandleConfirmed(ctx context.Context, event *domain.AccountConfirmedEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	rows, err := s.historyService.FindAllForTrainee(ctx, event.TraineeID)
	if err != nil {
		return fmt.Errorf("failed to check welcome history for trainee %s: %w", event.TraineeID, err)
	}
	for _, row := range rows {
		if row.Type == domain.KindWelcome {
			s.logger.WithField("traineeId", event.TraineeID).Info("Welcome notification already exists, skipping")
			return nil
		}
	}

	variables := map[string]interface{}{
		"familyName": event.FamilyName,
		"givenName":  event.GivenName,
	}
	if err := s.inAppSender.CreateNotifications(ctx, event.TraineeID, nil, domain.KindWelcome, variables, false, nil); err != nil {
		return err
	}

	s.logger.WithField("traineeId", event.TraineeID).Info("Welcome notification created")
	return nil
}

// HandleUpdated alerts both addresses of a sign-in email change: the new
// one as confirmation, the old one so a hijacked change is noticed.
func (s *AccountService) HandleUpdated(ctx context.Context, event *domain.AccountUpdatedEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	variables := map[string]interface{}{
		"newEmail":      event.NewEmail,
		"previousEmail": event.PreviousEmail,
	}

	if err := s.emailSender.SendMessage(ctx, event.TraineeID, event.NewEmail, domain.KindEmailUpdatedNew, nil, variables, nil, false); err != nil {
		return fmt.Errorf("failed to notify new address for trainee %s: %w", event.TraineeID, err)
	}

	if event.PreviousEmail == "" {
		s.logger.WithField("traineeId", event.TraineeID).Info("No previous address on email update, old-address alert skipped")
		return nil
	}
	if err := s.emailSender.SendMessage(ctx, event.TraineeID, event.PreviousEmail, domain.KindEmailUpdatedOld, nil, variables, nil, false); err != nil {
		return fmt.Errorf("failed to notify previous address for trainee %s: %w", event.TraineeID, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"newEmail":  event.NewEmail,
	}).Info("Email update notifications sent")
	return nil
}
