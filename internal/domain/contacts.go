package domain

import "context"

//go:generate mockgen -destination mocks/mock_contacts.go -package mocks github.com/TraineeHub/notify/internal/domain ReferenceClient,ContactsService

// ContactType names a typed entry in a deanery's contact list.
type ContactType string

const (
	ContactTypeLtft                      ContactType = "LTFT"
	ContactTypeLtftSupport               ContactType = "LTFT_SUPPORT"
	ContactTypeSupportedReturnToTraining ContactType = "SUPPORTED_RETURN_TO_TRAINING"
	ContactTypeTssSupport                ContactType = "TSS_SUPPORT"
	ContactTypeOnboardingSupport         ContactType = "ONBOARDING_SUPPORT"
	ContactTypeGmcUpdate                 ContactType = "GMC_UPDATE"
)

// DefaultContact is the fallback contact string used when a deanery's list
// is unavailable or has no matching entry.
const DefaultContact = "your local deanery office"

// DeaneryContact is one entry of a managing deanery's contact list as served
// by the reference service.
type DeaneryContact struct {
	ContactTypeName string `json:"contactTypeName"`
	Contact         string `json:"contact"`
}

// ContactClassification describes how a contact string can be presented.
type ContactClassification string

const (
	ContactEmail   ContactClassification = "EMAIL"
	ContactURL     ContactClassification = "URL"
	ContactNonHref ContactClassification = "NON_HREF"
)

// ClassifiedContact pairs a contact string with its classification, for
// template variables.
type ClassifiedContact struct {
	Contact string                `json:"contact"`
	Type    ContactClassification `json:"type"`
}

// ReferenceClient reads the reference service.
type ReferenceClient interface {
	GetLocalOfficeContacts(ctx context.Context, localOfficeName string) ([]DeaneryContact, error)
}

// ContactsService resolves, selects and classifies deanery contacts.
type ContactsService interface {
	GetContacts(ctx context.Context, localOfficeName string) ([]DeaneryContact, error)
	// PickContact selects the first entry matching primary, else fallback,
	// else the default string.
	PickContact(contacts []DeaneryContact, primary, fallback ContactType, defaultValue string) string
	Classify(contact string) ContactClassification
}
