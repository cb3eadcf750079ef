package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

type gmcServiceMocks struct {
	recipientService *mocks.MockRecipientService
	contactsService  *mocks.MockContactsService
	inAppSender      *mocks.MockInAppSender
	emailSender      *mocks.MockEmailSender
}

func newGmcService(t *testing.T, ctrl *gomock.Controller) (*GmcService, gmcServiceMocks) {
	t.Helper()
	m := gmcServiceMocks{
		recipientService: mocks.NewMockRecipientService(ctrl),
		contactsService:  mocks.NewMockContactsService(ctrl),
		inAppSender:      mocks.NewMockInAppSender(ctrl),
		emailSender:      mocks.NewMockEmailSender(ctrl),
	}
	return NewGmcService(m.recipientService, m.contactsService, m.inAppSender, m.emailSender, logger.NewTestLogger(t)), m
}

func rejectedGmcEvent() *domain.GmcDetailsEvent {
	return &domain.GmcDetailsEvent{
		TraineeID:       "trainee-1",
		GmcNumber:       "1234567",
		GmcStatus:       "REJECTED",
		ManagingDeanery: "NHSE Thames Valley",
	}
}

func TestGmcService_HandleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)
	event := &domain.GmcDetailsEvent{TraineeID: "trainee-1", GmcNumber: "1234567", GmcStatus: "CONFIRMED"}

	m.inAppSender.EXPECT().CreateNotifications(gomock.Any(), "trainee-1", gomock.Any(), domain.KindGmcUpdated, gomock.Any(), false, nil).DoAndReturn(
		func(_ context.Context, _ string, ref *domain.TisReference, _ domain.NotificationKind, variables map[string]interface{}, _ bool, _ *time.Time) error {
			require.NotNil(t, ref)
			assert.Equal(t, domain.ReferenceGmc, ref.Type)
			assert.Equal(t, "1234567", ref.ID)
			assert.Equal(t, "CONFIRMED", variables["gmcStatus"])
			return nil
		})

	require.NoError(t, service.HandleUpdate(context.Background(), event))
}

func TestGmcService_HandleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)
	event := rejectedGmcEvent()
	contacts := []domain.DeaneryContact{{ContactTypeName: "GMC_UPDATE", Contact: "gmc@deanery.example.com"}}

	m.recipientService.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{
		TraineeID:  "trainee-1",
		Email:      "anthony.gilliam@example.com",
		FamilyName: "Gilliam",
		GivenName:  "Anthony",
	}, nil)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "anthony.gilliam@example.com", domain.KindGmcRejectedTrainee, gomock.Any(), gomock.Any(), nil, false).Return(nil)

	m.contactsService.EXPECT().GetContacts(gomock.Any(), "NHSE Thames Valley").Return(contacts, nil)
	m.contactsService.EXPECT().PickContact(contacts, domain.ContactTypeGmcUpdate, domain.ContactType(""), domain.DefaultContact).Return("gmc@deanery.example.com")
	m.contactsService.EXPECT().Classify("gmc@deanery.example.com").Return(domain.ContactEmail)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "gmc@deanery.example.com", domain.KindGmcRejectedLo, gomock.Any(), gomock.Any(), nil, false).DoAndReturn(
		func(_ context.Context, _ string, _ string, _ domain.NotificationKind, ref *domain.TisReference, variables map[string]interface{}, _ []domain.Attachment, _ bool) error {
			assert.Equal(t, domain.ReferenceGmc, ref.Type)
			assert.Equal(t, "Gilliam", variables["familyName"])
			assert.Equal(t, "1234567", variables["gmcNumber"])
			return nil
		})

	require.NoError(t, service.HandleRejected(context.Background(), event))
}

func TestGmcService_HandleRejectedNonEmailContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)
	contacts := []domain.DeaneryContact{{ContactTypeName: "GMC_UPDATE", Contact: "https://deanery.example.com/gmc"}}

	m.recipientService.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{Email: "anthony.gilliam@example.com"}, nil)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "anthony.gilliam@example.com", domain.KindGmcRejectedTrainee, gomock.Any(), gomock.Any(), nil, false).Return(nil)

	// A URL contact cannot receive the escalation; only the trainee email goes.
	m.contactsService.EXPECT().GetContacts(gomock.Any(), "NHSE Thames Valley").Return(contacts, nil)
	m.contactsService.EXPECT().PickContact(contacts, domain.ContactTypeGmcUpdate, domain.ContactType(""), domain.DefaultContact).Return("https://deanery.example.com/gmc")
	m.contactsService.EXPECT().Classify("https://deanery.example.com/gmc").Return(domain.ContactURL)

	require.NoError(t, service.HandleRejected(context.Background(), rejectedGmcEvent()))
}

func TestGmcService_HandleRejectedContactsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)

	m.recipientService.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{Email: "anthony.gilliam@example.com"}, nil)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "anthony.gilliam@example.com", domain.KindGmcRejectedTrainee, gomock.Any(), gomock.Any(), nil, false).Return(nil)
	m.contactsService.EXPECT().GetContacts(gomock.Any(), "NHSE Thames Valley").Return(nil, errors.New("reference service unavailable"))

	require.NoError(t, service.HandleRejected(context.Background(), rejectedGmcEvent()))
}

func TestGmcService_HandleRejectedNoAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)
	contacts := []domain.DeaneryContact{{ContactTypeName: "GMC_UPDATE", Contact: "gmc@deanery.example.com"}}

	// The empty address reaches the sender, which records the failed row.
	m.recipientService.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(nil, domain.ErrNoAccount)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "", domain.KindGmcRejectedTrainee, gomock.Any(), gomock.Any(), nil, false).Return(nil)

	m.contactsService.EXPECT().GetContacts(gomock.Any(), "NHSE Thames Valley").Return(contacts, nil)
	m.contactsService.EXPECT().PickContact(contacts, domain.ContactTypeGmcUpdate, domain.ContactType(""), domain.DefaultContact).Return("gmc@deanery.example.com")
	m.contactsService.EXPECT().Classify("gmc@deanery.example.com").Return(domain.ContactEmail)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "gmc@deanery.example.com", domain.KindGmcRejectedLo, gomock.Any(), gomock.Any(), nil, false).Return(nil)

	require.NoError(t, service.HandleRejected(context.Background(), rejectedGmcEvent()))
}

func TestGmcService_HandleRejectedTraineeSendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newGmcService(t, ctrl)

	// No escalation attempt when the trainee send fails; the retried event
	// runs the whole handler again.
	m.recipientService.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{Email: "anthony.gilliam@example.com"}, nil)
	m.emailSender.EXPECT().SendMessage(gomock.Any(), "trainee-1", "anthony.gilliam@example.com", domain.KindGmcRejectedTrainee, gomock.Any(), gomock.Any(), nil, false).
		Return(errors.New("smtp connect timeout"))

	assert.Error(t, service.HandleRejected(context.Background(), rejectedGmcEvent()))
}

func TestGmcService_HandleRejectedMissingTraineeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newGmcService(t, ctrl)

	err := service.HandleRejected(context.Background(), &domain.GmcDetailsEvent{GmcNumber: "1234567"})
	assert.ErrorIs(t, err, domain.ErrMissingTraineeID)
}
