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

func TestAccountListener_HandleConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockAccountHandler(ctrl)
	listener := NewAccountListener(handler, logger.NewTestLogger(t))

	handler.EXPECT().
		HandleConfirmed(gomock.Any(), &domain.AccountConfirmedEvent{
			TraineeID:  "trainee-1",
			UserID:     "user-1",
			Email:      "trainee@example.com",
			FamilyName: "Gilliam",
			GivenName:  "Anthony",
		}).
		Return(nil)

	body := `{
		"traineeId": "trainee-1",
		"userId": "user-1",
		"email": "trainee@example.com",
		"familyName": "Gilliam",
		"givenName": "Anthony"
	}`
	err := listener.HandleConfirmed(context.Background(), body)
	assert.NoError(t, err)
}

func TestAccountListener_HandleUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockAccountHandler(ctrl)
	listener := NewAccountListener(handler, logger.NewTestLogger(t))

	handler.EXPECT().
		HandleUpdated(gomock.Any(), &domain.AccountUpdatedEvent{
			TraineeID:     "trainee-1",
			UserID:        "user-1",
			PreviousEmail: "old@example.com",
			NewEmail:      "new@example.com",
		}).
		Return(nil)

	body := `{
		"traineeId": "trainee-1",
		"userId": "user-1",
		"previousEmail": "old@example.com",
		"newEmail": "new@example.com"
	}`
	err := listener.HandleUpdated(context.Background(), body)
	assert.NoError(t, err)
}

func TestAccountListener_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockAccountHandler(ctrl)
	listener := NewAccountListener(handler, logger.NewTestLogger(t))

	err := listener.HandleConfirmed(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse account confirmed event")

	err = listener.HandleUpdated(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse account updated event")
}

func TestAccountListener_HandlerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockAccountHandler(ctrl)
	listener := NewAccountListener(handler, logger.NewTestLogger(t))

	handler.EXPECT().
		HandleConfirmed(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := listener.HandleConfirmed(context.Background(), `{"traineeId": "trainee-1"}`)
	assert.ErrorIs(t, err, assert.AnError)
}
