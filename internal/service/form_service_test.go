package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func TestFormService_HandleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inAppSender := mocks.NewMockInAppSender(ctrl)
	service := NewFormService(inAppSender, logger.NewTestLogger(t))

	eventDate := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	event := &domain.FormUpdatedEvent{
		TraineeID:      "trainee-1",
		FormName:       "formr-a_2025-07-01",
		FormType:       "formr-a",
		LifecycleState: "SUBMITTED",
		UpdatedAt:      &eventDate,
	}

	inAppSender.EXPECT().CreateNotifications(gomock.Any(), "trainee-1", gomock.Any(), domain.KindFormUpdated, gomock.Any(), false, nil).DoAndReturn(
		func(_ context.Context, _ string, ref *domain.TisReference, _ domain.NotificationKind, variables map[string]interface{}, _ bool, _ *time.Time) error {
			require.NotNil(t, ref)
			assert.Equal(t, domain.ReferenceForm, ref.Type)
			assert.Equal(t, "formr-a_2025-07-01", ref.ID)
			assert.Equal(t, "SUBMITTED", variables["lifecycleState"])
			assert.Equal(t, eventDate, variables["eventDate"])
			return nil
		})

	require.NoError(t, service.HandleUpdate(context.Background(), event))
}

func TestFormService_HandleUpdateMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		event *domain.FormUpdatedEvent
	}{
		{
			name:  "missing trainee id",
			event: &domain.FormUpdatedEvent{FormName: "formr-a_2025-07-01"},
		},
		{
			name:  "missing form name",
			event: &domain.FormUpdatedEvent{TraineeID: "trainee-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewFormService(mocks.NewMockInAppSender(ctrl), logger.NewTestLogger(t))
			assert.Error(t, service.HandleUpdate(context.Background(), tt.event))
		})
	}
}
