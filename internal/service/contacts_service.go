package service

import (
	"context"
	"fmt"

	"github.com/asaskevich/govalidator"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ContactsService resolves deanery contact lists and classifies contact
// strings for template rendering.
type ContactsService struct {
	referenceClient domain.ReferenceClient
	logger          logger.Logger
}

func NewContactsService(referenceClient domain.ReferenceClient, logger logger.Logger) *ContactsService {
	return &ContactsService{
		referenceClient: referenceClient,
		logger:          logger,
	}
}

// GetContacts returns the deanery's contact list. Callers fetch once per
// inbound event and pick the entries they need from the returned slice.
func (s *ContactsService) GetContacts(ctx context.Context, localOfficeName string) ([]domain.DeaneryContact, error) {
	if localOfficeName == "" {
		return nil, nil
	}

	contacts, err := s.referenceClient.GetLocalOfficeContacts(ctx, localOfficeName)
	if err != nil {
		s.logger.WithField("localOffice", localOfficeName).
			Error(fmt.Sprintf("Failed to get local office contacts: %v", err))
		return nil, err
	}
	return contacts, nil
}

// PickContact selects the first entry matching primary, else fallback, else
// the default value. A nil list yields the default.
func (s *ContactsService) PickContact(contacts []domain.DeaneryContact, primary, fallback domain.ContactType, defaultValue string) string {
	if contact, ok := findContact(contacts, primary); ok {
		return contact
	}
	if contact, ok := findContact(contacts, fallback); ok {
		return contact
	}
	return defaultValue
}

// Classify reports how a contact string can be presented: a mailto link, an
// href or plain text.
func (s *ContactsService) Classify(contact string) domain.ContactClassification {
	switch {
	case govalidator.IsEmail(contact):
		return domain.ContactEmail
	case govalidator.IsURL(contact):
		return domain.ContactURL
	default:
		return domain.ContactNonHref
	}
}

func findContact(contacts []domain.DeaneryContact, contactType domain.ContactType) (string, bool) {
	if contactType == "" {
		return "", false
	}
	for _, c := range contacts {
		if c.ContactTypeName == string(contactType) {
			return c.Contact, true
		}
	}
	return "", false
}
