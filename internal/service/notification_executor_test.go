package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func newExecutor(t *testing.T, ctrl *gomock.Controller) (*NotificationExecutorService, *mocks.MockRecipientService, *mocks.MockEmailSender) {
	t.Helper()
	recipients := mocks.NewMockRecipientService(ctrl)
	sender := mocks.NewMockEmailSender(ctrl)
	return NewNotificationExecutorService(recipients, sender, logger.NewTestLogger(t)), recipients, sender
}

func programmeJobData() domain.JobData {
	return domain.JobData{
		Kind:      domain.KindProgrammeUpdatedWeek8,
		TraineeID: "trainee-1",
		Programme: &domain.ProgrammeJobPayload{
			TisID:         "pm-1",
			ProgrammeName: "Cardiology",
			StartDate:     domain.NewISODate(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func TestNotificationExecutorService_ExecuteProgramme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, recipients, sender := newExecutor(t, ctrl)
	data := programmeJobData()

	recipients.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{
		TraineeID:    "trainee-1",
		IsRegistered: true,
		Email:        "trainee@example.com",
		GivenName:    "Jo",
		FamilyName:   "Bloggs",
		GmcNumber:    "1234567",
	}, nil)

	sender.EXPECT().
		SendMessage(gomock.Any(), "trainee-1", "trainee@example.com", domain.KindProgrammeUpdatedWeek8, gomock.Any(), gomock.Any(), gomock.Nil(), false).
		DoAndReturn(func(_ context.Context, _, _ string, _ domain.NotificationKind, ref *domain.TisReference, variables map[string]interface{}, _ []domain.Attachment, _ bool) error {
			require.NotNil(t, ref)
			assert.Equal(t, domain.ReferenceProgrammeMembership, ref.Type)
			assert.Equal(t, "pm-1", ref.ID)
			assert.Equal(t, "Cardiology", variables["programmeName"])
			assert.Equal(t, "Jo", variables["givenName"])
			assert.Equal(t, true, variables["isRegistered"])
			return nil
		})

	result, err := executor.Execute(context.Background(), "PROGRAMME_UPDATED_WEEK_8-pm-1", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "sent "))
}

func TestNotificationExecutorService_ExecutePlacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, recipients, sender := newExecutor(t, ctrl)
	data := domain.JobData{
		Kind:      domain.KindPlacementUpdatedWeek12,
		TraineeID: "trainee-1",
		Placement: &domain.PlacementJobPayload{
			TisID:         "placement-1",
			StartDate:     domain.NewISODate(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)),
			PlacementType: "In post",
			Specialty:     "General Practice",
			Owner:         "Thames Valley",
		},
	}

	recipients.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{
		TraineeID: "trainee-1",
		Email:     "trainee@example.com",
	}, nil)

	sender.EXPECT().
		SendMessage(gomock.Any(), "trainee-1", "trainee@example.com", domain.KindPlacementUpdatedWeek12, gomock.Any(), gomock.Any(), gomock.Nil(), false).
		DoAndReturn(func(_ context.Context, _, _ string, _ domain.NotificationKind, ref *domain.TisReference, variables map[string]interface{}, _ []domain.Attachment, _ bool) error {
			require.NotNil(t, ref)
			assert.Equal(t, domain.ReferencePlacement, ref.Type)
			assert.Equal(t, "placement-1", ref.ID)
			assert.Equal(t, "General Practice", variables["specialty"])
			assert.Equal(t, "In post", variables["placementType"])
			return nil
		})

	result, err := executor.Execute(context.Background(), "PLACEMENT_UPDATED_WEEK_12-placement-1", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "sent "))
}

func TestNotificationExecutorService_ExecuteKeepsPlannerVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, recipients, sender := newExecutor(t, ctrl)
	data := programmeJobData()
	data.Variables = map[string]interface{}{"givenName": "Planner Value"}

	recipients.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(&domain.Recipient{
		TraineeID: "trainee-1",
		Email:     "trainee@example.com",
		GivenName: "Directory Value",
	}, nil)

	sender.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), false).
		DoAndReturn(func(_ context.Context, _, _ string, _ domain.NotificationKind, _ *domain.TisReference, variables map[string]interface{}, _ []domain.Attachment, _ bool) error {
			assert.Equal(t, "Planner Value", variables["givenName"])
			return nil
		})

	_, err := executor.Execute(context.Background(), "job-1", data)
	require.NoError(t, err)
}

func TestNotificationExecutorService_ExecuteNoAccount(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "no account", err: domain.ErrNoAccount},
		{name: "ambiguous accounts", err: &domain.AmbiguousAccountError{TraineeID: "trainee-1", AccountIDs: []string{"a", "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			executor, recipients, _ := newExecutor(t, ctrl)
			recipients.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(nil, tt.err)

			result, err := executor.Execute(context.Background(), "job-1", programmeJobData())
			require.NoError(t, err)
			assert.Equal(t, "no-contact", result)
		})
	}
}

func TestNotificationExecutorService_ExecuteResolveFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, recipients, _ := newExecutor(t, ctrl)
	recipients.EXPECT().Resolve(gomock.Any(), "trainee-1").Return(nil, errors.New("profile service unavailable"))

	_, err := executor.Execute(context.Background(), "job-1", programmeJobData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve recipient")
}

func TestNotificationExecutorService_ExecuteEmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, _, _ := newExecutor(t, ctrl)
	_, err := executor.Execute(context.Background(), "job-1", domain.JobData{Kind: domain.KindWelcome, TraineeID: "trainee-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no programme or placement payload")
}
