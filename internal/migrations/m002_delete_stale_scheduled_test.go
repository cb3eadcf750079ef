package migrations

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

func TestDeleteStaleScheduledMigration_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		DeleteAllByStatusBefore(gomock.Any(), domain.StatusScheduled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.NotificationStatus, before time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().UTC(), before, time.Minute)
			return int64(7), nil
		})

	migration := &DeleteStaleScheduledMigration{}
	assert.Equal(t, "002-delete-stale-scheduled", migration.ID())
	assert.NoError(t, migration.Execute(context.Background(), deps))
}

func TestDeleteStaleScheduledMigration_ExecuteStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		DeleteAllByStatusBefore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), assert.AnError)

	err := (&DeleteStaleScheduledMigration{}).Execute(context.Background(), deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete stale scheduled rows")
}
