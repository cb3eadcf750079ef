package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// GmcService turns GMC registration outcomes into notifications: an in-app
// row on update, and rejection emails to the trainee and their local office.
type GmcService struct {
	recipientService domain.RecipientService
	contactsService  domain.ContactsService
	inAppSender      domain.InAppSender
	emailSender      domain.EmailSender
	logger           logger.Logger
}

func NewGmcService(
	recipientService domain.RecipientService,
	contactsService domain.ContactsService,
	inAppSender domain.InAppSender,
	emailSender domain.EmailSender,
	logger logger.Logger,
) *GmcService {
	return &GmcService{
		recipientService: recipientService,
		contactsService:  contactsService,
		inAppSender:      inAppSender,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// HandleUpdate writes a GMC_UPDATED in-app row.
func (s *GmcService) HandleUpdate(ctx context.Context, event *domain.GmcDetailsEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	variables := map[string]interface{}{
		"gmcNumber": event.GmcNumber,
		"gmcStatus": event.GmcStatus,
	}

	ref := domain.NewTisReference(domain.ReferenceGmc, event.GmcNumber)
	if err := s.inAppSender.CreateNotifications(ctx, event.TraineeID, ref, domain.KindGmcUpdated, variables, false, nil); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"gmcNumber": event.GmcNumber,
	}).Info("GMC update notification created")
	return nil
}

// HandleRejected emails the trainee and, when the deanery's GMC_UPDATE
// contact is an email address, the local office as well.
func (s *GmcService) HandleRejected(ctx context.Context, event *domain.GmcDetailsEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	variables := map[string]interface{}{
		"gmcNumber": event.GmcNumber,
		"gmcStatus": event.GmcStatus,
	}

	email := ""
	recipient, err := s.recipientService.Resolve(ctx, event.TraineeID)
	switch {
	case err == nil:
		email = recipient.Email
		variables["familyName"] = recipient.FamilyName
		variables["givenName"] = recipient.GivenName
	case errors.Is(err, domain.ErrNoAccount):
		// An empty address makes the sender record the failure.
		s.logger.WithField("traineeId", event.TraineeID).Warn("No account found for GMC rejection")
	default:
		return fmt.Errorf("failed to resolve recipient for GMC rejection: %w", err)
	}

	ref := domain.NewTisReference(domain.ReferenceGmc, event.GmcNumber)
	if err := s.emailSender.SendMessage(ctx, event.TraineeID, email, domain.KindGmcRejectedTrainee, ref, variables, nil, false); err != nil {
		return err
	}

	return s.notifyLocalOffice(ctx, event, ref, variables)
}

// notifyLocalOffice sends the GMC_REJECTED_LO email. A missing contact list
// or a non-address contact skips the send; the trainee email already went.
func (s *GmcService) notifyLocalOffice(ctx context.Context, event *domain.GmcDetailsEvent, ref *domain.TisReference, variables map[string]interface{}) error {
	contacts, err := s.contactsService.GetContacts(ctx, event.ManagingDeanery)
	if err != nil {
		s.logger.WithField("localOffice", event.ManagingDeanery).
			Warn(fmt.Sprintf("Local office contacts unavailable, GMC rejection not escalated: %v", err))
		return nil
	}

	contact := s.contactsService.PickContact(contacts, domain.ContactTypeGmcUpdate, "", domain.DefaultContact)
	if s.contactsService.Classify(contact) != domain.ContactEmail {
		s.logger.WithFields(map[string]interface{}{
			"localOffice": event.ManagingDeanery,
			"contact":     contact,
		}).Info("Local office GMC contact is not an email address, skipping escalation")
		return nil
	}

	if err := s.emailSender.SendMessage(ctx, event.TraineeID, contact, domain.KindGmcRejectedLo, ref, variables, nil, false); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId":   event.TraineeID,
		"localOffice": event.ManagingDeanery,
	}).Info("GMC rejection escalated to local office")
	return nil
}
