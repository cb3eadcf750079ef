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

func TestFormListener_HandleUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockFormHandler(ctrl)
	listener := NewFormListener(handler, logger.NewTestLogger(t))

	handler.EXPECT().
		HandleUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.FormUpdatedEvent) error {
			assert.Equal(t, "trainee-1", event.TraineeID)
			assert.Equal(t, "formr-a_2025-07-01", event.FormName)
			assert.Equal(t, "formr-a", event.FormType)
			assert.Equal(t, "SUBMITTED", event.LifecycleState)
			require.NotNil(t, event.UpdatedAt)
			assert.Equal(t, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC), *event.UpdatedAt)
			return nil
		})

	body := `{
		"traineeId": "trainee-1",
		"formName": "formr-a_2025-07-01",
		"formType": "formr-a",
		"lifecycleState": "SUBMITTED",
		"eventDate": "2025-07-01T08:00:00Z"
	}`
	err := listener.HandleUpdated(context.Background(), body)
	assert.NoError(t, err)
}

func TestFormListener_HandleUpdatedMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockFormHandler(ctrl)
	listener := NewFormListener(handler, logger.NewTestLogger(t))

	err := listener.HandleUpdated(context.Background(), "<xml/>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse form updated event")
}

func TestFormListener_HandleUpdatedHandlerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockFormHandler(ctrl)
	listener := NewFormListener(handler, logger.NewTestLogger(t))

	handler.EXPECT().
		HandleUpdate(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := listener.HandleUpdated(context.Background(), `{"traineeId": "trainee-1", "formName": "formr-a_2025-07-01"}`)
	assert.ErrorIs(t, err, assert.AnError)
}
