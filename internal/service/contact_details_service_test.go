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

func newContactDetailsService(t *testing.T, ctrl *gomock.Controller) (*ContactDetailsService, *mocks.MockHistoryService, *mocks.MockEmailSender) {
	t.Helper()

	historyService := mocks.NewMockHistoryService(ctrl)
	emailSender := mocks.NewMockEmailSender(ctrl)
	svc := NewContactDetailsService(historyService, emailSender, logger.NewTestLogger(t))
	return svc, historyService, emailSender
}

func failedEmailRow(id, contact string) *domain.History {
	return &domain.History{
		ID:     id,
		Status: domain.StatusFailed,
		Recipient: domain.RecipientInfo{
			TraineeID: "trainee-1",
			Channel:   domain.ChannelEmail,
			Contact:   contact,
		},
	}
}

func TestContactDetailsService_HandleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, historyService, emailSender := newContactDetailsService(t, ctrl)

	rows := []*domain.History{
		failedEmailRow("h1", "old@x"),
		failedEmailRow("h2", "old@x"),
		failedEmailRow("h3", "new@x"),
	}
	historyService.EXPECT().
		FindAllForTraineeWithStatus(gomock.Any(), "trainee-1", domain.StatusFailed).
		Return(rows, nil)

	// Only the rows that failed against a different address are retried.
	emailSender.EXPECT().Resend(gomock.Any(), rows[0], "new@x").Return(nil)
	emailSender.EXPECT().Resend(gomock.Any(), rows[1], "new@x").Return(nil)

	err := svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{
		TraineeID: "trainee-1",
		Email:     "new@x",
	})

	require.NoError(t, err)
}

func TestContactDetailsService_HandleUpdateSkipsInAppRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, historyService, _ := newContactDetailsService(t, ctrl)

	inApp := failedEmailRow("h1", "old@x")
	inApp.Recipient.Channel = domain.ChannelInApp
	historyService.EXPECT().
		FindAllForTraineeWithStatus(gomock.Any(), "trainee-1", domain.StatusFailed).
		Return([]*domain.History{inApp}, nil)

	err := svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{
		TraineeID: "trainee-1",
		Email:     "new@x",
	})

	require.NoError(t, err)
}

func TestContactDetailsService_HandleUpdateNoFailedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, historyService, _ := newContactDetailsService(t, ctrl)

	historyService.EXPECT().
		FindAllForTraineeWithStatus(gomock.Any(), "trainee-1", domain.StatusFailed).
		Return(nil, nil)

	err := svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{
		TraineeID: "trainee-1",
		Email:     "new@x",
	})

	require.NoError(t, err)
}

func TestContactDetailsService_HandleUpdateResendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, historyService, emailSender := newContactDetailsService(t, ctrl)

	rows := []*domain.History{
		failedEmailRow("h1", "old@x"),
		failedEmailRow("h2", "old@x"),
	}
	historyService.EXPECT().
		FindAllForTraineeWithStatus(gomock.Any(), "trainee-1", domain.StatusFailed).
		Return(rows, nil)
	emailSender.EXPECT().Resend(gomock.Any(), rows[0], "new@x").Return(errors.New("smtp down"))

	err := svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{
		TraineeID: "trainee-1",
		Email:     "new@x",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resend notification h1")
}

func TestContactDetailsService_HandleUpdateMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newContactDetailsService(t, ctrl)

	err := svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{Email: "new@x"})
	assert.ErrorIs(t, err, domain.ErrMissingTraineeID)

	err = svc.HandleUpdate(context.Background(), &domain.ContactDetailsUpdatedEvent{TraineeID: "trainee-1"})
	assert.NoError(t, err)
}
