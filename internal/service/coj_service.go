package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// CojService emails a trainee their signed Conditions of Joining document
// once it lands in the object store.
type CojService struct {
	recipientService domain.RecipientService
	emailSender      domain.EmailSender
	logger           logger.Logger
}

func NewCojService(
	recipientService domain.RecipientService,
	emailSender domain.EmailSender,
	logger logger.Logger,
) *CojService {
	return &CojService{
		recipientService: recipientService,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// HandlePublished sends the COJ_CONFIRMATION email with the signed document
// attached.
func (s *CojService) HandlePublished(ctx context.Context, event *domain.CojPublishedEvent) error {
	if event.PersonID == "" {
		return domain.ErrMissingTraineeID
	}
	if event.ProgrammeMembership == "" {
		return domain.NewValidationError("programme membership tisId is required")
	}

	variables := map[string]interface{}{
		"programmeName": event.ProgrammeName,
	}
	if event.SignedAt != nil {
		variables["signedAt"] = *event.SignedAt
	}

	email := ""
	recipient, err := s.recipientService.Resolve(ctx, event.PersonID)
	switch {
	case err == nil:
		email = recipient.Email
		variables["familyName"] = recipient.FamilyName
		variables["givenName"] = recipient.GivenName
	case errors.Is(err, domain.ErrNoAccount):
		// An empty address makes the sender record the failure.
		s.logger.WithField("traineeId", event.PersonID).Warn("No account found for COJ confirmation")
	default:
		return fmt.Errorf("failed to resolve recipient for COJ %s: %w", event.ProgrammeMembership, err)
	}

	ref := domain.NewTisReference(domain.ReferenceProgrammeMembership, event.ProgrammeMembership)
	attachments := []domain.Attachment{event.Pdf}
	if err := s.emailSender.SendMessage(ctx, event.PersonID, email, domain.KindCojConfirmation, ref, variables, attachments, false); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId":           event.PersonID,
		"programmeMembership": event.ProgrammeMembership,
	}).Info("COJ confirmation sent")
	return nil
}
