package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ltftContactTypes are the deanery contacts surfaced to LTFT templates,
// keyed into the variables by their type name.
var ltftContactTypes = []domain.ContactType{
	domain.ContactTypeLtft,
	domain.ContactTypeLtftSupport,
	domain.ContactTypeSupportedReturnToTraining,
	domain.ContactTypeTssSupport,
}

// LtftService maps LTFT application transitions onto notification sends.
// The trainee channel fires for every state; the TPD channel only for
// approvals and submissions.
type LtftService struct {
	recipientService domain.RecipientService
	contactsService  domain.ContactsService
	emailSender      domain.EmailSender
	logger           logger.Logger
}

func NewLtftService(
	recipientService domain.RecipientService,
	contactsService domain.ContactsService,
	emailSender domain.EmailSender,
	logger logger.Logger,
) *LtftService {
	return &LtftService{
		recipientService: recipientService,
		contactsService:  contactsService,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// HandleUpdate sends the trainee-channel email for an LTFT transition.
func (s *LtftService) HandleUpdate(ctx context.Context, event *domain.LtftUpdateEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	kind, err := event.NotificationKind()
	if err != nil {
		return err
	}

	email := ""
	recipient, err := s.recipientService.Resolve(ctx, event.TraineeID)
	switch {
	case err == nil:
		email = recipient.Email
	case errors.Is(err, domain.ErrNoAccount):
		// An empty address makes the sender record the failure.
		s.logger.WithField("traineeId", event.TraineeID).Warn("No account found for LTFT notification")
	default:
		return fmt.Errorf("failed to resolve recipient for LTFT form %s: %w", event.FormRef, err)
	}

	variables := s.buildVariables(ctx, event)

	ref := domain.NewTisReference(domain.ReferenceLtft, event.FormRef)
	if err := s.emailSender.SendMessage(ctx, event.TraineeID, email, kind, ref, variables, nil, false); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"formRef":   event.FormRef,
		"kind":      string(kind),
	}).Info("LTFT notification sent")
	return nil
}

// HandleTpdUpdate sends the TPD-channel email. States outside the TPD set
// are consumed without sending.
func (s *LtftService) HandleTpdUpdate(ctx context.Context, event *domain.LtftUpdateEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}

	kind, ok := event.TpdNotificationKind()
	if !ok {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": event.TraineeID,
			"state":     event.State,
		}).Debug("LTFT state does not notify the TPD")
		return nil
	}

	variables := s.buildVariables(ctx, event)

	// The TPD greeting names the trainee. No account is fine; the names
	// stay blank and the send still goes to the TPD address.
	recipient, err := s.recipientService.Resolve(ctx, event.TraineeID)
	var ambiguous *domain.AmbiguousAccountError
	switch {
	case err == nil:
		variables["familyName"] = recipient.FamilyName
		variables["givenName"] = recipient.GivenName
	case errors.Is(err, domain.ErrNoAccount), errors.As(err, &ambiguous):
		s.logger.WithField("traineeId", event.TraineeID).Warn("No trainee details for TPD notification")
	default:
		return fmt.Errorf("failed to resolve trainee for LTFT form %s: %w", event.FormRef, err)
	}

	ref := domain.NewTisReference(domain.ReferenceLtft, event.FormRef)
	return s.emailSender.SendMessage(ctx, event.TraineeID, event.Discussions.TpdEmail, kind, ref, variables, nil, false)
}

// buildVariables assembles the template context: the event itself under
// "var" and the classified deanery contacts under "contacts". An unavailable
// reference service degrades every entry to the deanery-office default.
func (s *LtftService) buildVariables(ctx context.Context, event *domain.LtftUpdateEvent) map[string]interface{} {
	deanery := event.Content.ProgrammeMembership.ManagingDeanery
	contacts, err := s.contactsService.GetContacts(ctx, deanery)
	if err != nil {
		s.logger.WithField("localOffice", deanery).Warn(fmt.Sprintf("Proceeding without local office contacts: %v", err))
		contacts = nil
	}

	contactVars := make(map[string]interface{}, len(ltftContactTypes))
	for _, contactType := range ltftContactTypes {
		contact := s.contactsService.PickContact(contacts, contactType, "", domain.DefaultContact)
		contactVars[string(contactType)] = domain.ClassifiedContact{
			Contact: contact,
			Type:    s.contactsService.Classify(contact),
		}
	}

	return map[string]interface{}{
		"var":      event,
		"contacts": contactVars,
	}
}
