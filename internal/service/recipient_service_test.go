package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func newRecipientService(t *testing.T, ctrl *gomock.Controller) (*RecipientService, *mocks.MockAccountClient, *mocks.MockProfileClient) {
	t.Helper()

	accountClient := mocks.NewMockAccountClient(ctrl)
	profileClient := mocks.NewMockProfileClient(ctrl)
	svc := NewRecipientService(accountClient, profileClient, logger.NewTestLogger(t))
	return svc, accountClient, profileClient
}

func TestRecipientService_ResolveRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return([]string{"acc-1"}, nil)
	accountClient.EXPECT().GetDetails(gomock.Any(), "acc-1").Return(&domain.UserAccountDetails{
		Email:      "registered@example.com",
		FamilyName: "Gilliam",
		GivenName:  "Anthony",
	}, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(&domain.TraineeProfile{
		Email:     "profile@example.com",
		Title:     "Dr",
		GmcNumber: "1234567",
	}, nil)

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	require.NoError(t, err)
	assert.True(t, recipient.IsRegistered)
	// Contact details come from the directory, not the profile.
	assert.Equal(t, "registered@example.com", recipient.Email)
	assert.Equal(t, "Gilliam", recipient.FamilyName)
	assert.Equal(t, "Anthony", recipient.GivenName)
	assert.Equal(t, "Dr", recipient.Title)
	assert.Equal(t, "1234567", recipient.GmcNumber)
}

func TestRecipientService_ResolveRegisteredProfileUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return([]string{"acc-1"}, nil)
	accountClient.EXPECT().GetDetails(gomock.Any(), "acc-1").Return(&domain.UserAccountDetails{
		Email:      "registered@example.com",
		FamilyName: "Gilliam",
		GivenName:  "Anthony",
	}, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(nil, errors.New("profile down"))

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	require.NoError(t, err)
	assert.True(t, recipient.IsRegistered)
	assert.Equal(t, "registered@example.com", recipient.Email)
	assert.Empty(t, recipient.Title)
	assert.Empty(t, recipient.GmcNumber)
}

func TestRecipientService_ResolveUnregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return(nil, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(&domain.TraineeProfile{
		Email:      "profile@example.com",
		Title:      "Dr",
		FamilyName: "Gilliam",
		GivenName:  "Anthony",
		GmcNumber:  "1234567",
	}, nil)

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	require.NoError(t, err)
	assert.False(t, recipient.IsRegistered)
	assert.Equal(t, "profile@example.com", recipient.Email)
	assert.Equal(t, "Dr", recipient.Title)
	assert.Equal(t, "1234567", recipient.GmcNumber)
}

func TestRecipientService_ResolveNoAccountNoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return(nil, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(nil, nil)

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	assert.Nil(t, recipient)
	assert.ErrorIs(t, err, domain.ErrNoAccount)
}

func TestRecipientService_ResolveAmbiguousFallsBackToProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return([]string{"acc-1", "acc-2"}, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(&domain.TraineeProfile{
		Email: "profile@example.com",
	}, nil)

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	require.NoError(t, err)
	assert.False(t, recipient.IsRegistered)
	assert.Equal(t, "profile@example.com", recipient.Email)
}

func TestRecipientService_ResolveAmbiguousNoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return([]string{"acc-1", "acc-2"}, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(nil, nil)

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	assert.Nil(t, recipient)

	var ambiguous *domain.AmbiguousAccountError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"acc-1", "acc-2"}, ambiguous.AccountIDs)
}

func TestRecipientService_ResolveDirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, _ := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return(nil, errors.New("directory down"))

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	assert.Nil(t, recipient)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up accounts for trainee trainee-1")
}

func TestRecipientService_ResolveProfileErrorOnFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accountClient, profileClient := newRecipientService(t, ctrl)

	accountClient.EXPECT().FindIDsByTraineeID(gomock.Any(), "trainee-1").Return(nil, nil)
	profileClient.EXPECT().GetAccountDetails(gomock.Any(), "trainee-1").Return(nil, errors.New("profile down"))

	recipient, err := svc.Resolve(context.Background(), "trainee-1")

	assert.Nil(t, recipient)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoAccount)
}
