package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func newContactsService(t *testing.T, ctrl *gomock.Controller) (*ContactsService, *mocks.MockReferenceClient) {
	t.Helper()

	referenceClient := mocks.NewMockReferenceClient(ctrl)
	svc := NewContactsService(referenceClient, logger.NewTestLogger(t))
	return svc, referenceClient
}

func deaneryContacts() []domain.DeaneryContact {
	return []domain.DeaneryContact{
		{ContactTypeName: "LTFT", Contact: "ltft@nhse.example.com"},
		{ContactTypeName: "TSS_SUPPORT", Contact: "https://support.example.com/tss"},
	}
}

func TestContactsService_GetContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, referenceClient := newContactsService(t, ctrl)

	referenceClient.EXPECT().GetLocalOfficeContacts(gomock.Any(), "NHSE London").
		Return(deaneryContacts(), nil)

	contacts, err := svc.GetContacts(context.Background(), "NHSE London")

	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContactsService_GetContactsBlankOffice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newContactsService(t, ctrl)

	// No client expectation; a membership without a deanery asks nothing.
	contacts, err := svc.GetContacts(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, contacts)
}

func TestContactsService_GetContactsClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, referenceClient := newContactsService(t, ctrl)

	referenceClient.EXPECT().GetLocalOfficeContacts(gomock.Any(), "NHSE London").
		Return(nil, assert.AnError)

	_, err := svc.GetContacts(context.Background(), "NHSE London")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestContactsService_PickContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newContactsService(t, ctrl)

	tests := []struct {
		name     string
		contacts []domain.DeaneryContact
		primary  domain.ContactType
		fallback domain.ContactType
		want     string
	}{
		{
			name:     "primary match",
			contacts: deaneryContacts(),
			primary:  domain.ContactTypeLtft,
			fallback: domain.ContactTypeTssSupport,
			want:     "ltft@nhse.example.com",
		},
		{
			name:     "fallback match",
			contacts: deaneryContacts(),
			primary:  domain.ContactTypeLtftSupport,
			fallback: domain.ContactTypeTssSupport,
			want:     "https://support.example.com/tss",
		},
		{
			name:     "no match yields default",
			contacts: deaneryContacts(),
			primary:  domain.ContactTypeGmcUpdate,
			fallback: domain.ContactTypeOnboardingSupport,
			want:     domain.DefaultContact,
		},
		{
			name:     "nil list yields default",
			contacts: nil,
			primary:  domain.ContactTypeLtft,
			fallback: domain.ContactTypeTssSupport,
			want:     domain.DefaultContact,
		},
		{
			name:     "blank fallback never matches",
			contacts: []domain.DeaneryContact{{ContactTypeName: "", Contact: "untyped@example.com"}},
			primary:  domain.ContactTypeLtft,
			fallback: domain.ContactType(""),
			want:     domain.DefaultContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.PickContact(tt.contacts, tt.primary, tt.fallback, domain.DefaultContact)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactsService_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newContactsService(t, ctrl)

	tests := []struct {
		contact string
		want    domain.ContactClassification
	}{
		// An address must classify as EMAIL even though it also parses as a
		// host-shaped URL.
		{"england.ltft@nhs.net", domain.ContactEmail},
		{"https://support.example.com/ltft", domain.ContactURL},
		{"your local deanery office", domain.ContactNonHref},
		{"", domain.ContactNonHref},
	}

	for _, tt := range tests {
		t.Run(tt.contact, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Classify(tt.contact))
		})
	}
}
