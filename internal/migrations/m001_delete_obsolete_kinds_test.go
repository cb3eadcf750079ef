package migrations

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func TestDeleteObsoleteKindsMigration_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		DeleteAllByTypes(gomock.Any(), []string{"PROGRAMME_CREATED", "PROGRAMME_UPDATED", "PLACEMENT_CREATED"}).
		Return(int64(12), nil)

	migration := &DeleteObsoleteKindsMigration{}
	assert.Equal(t, "001-delete-obsolete-kinds", migration.ID())
	assert.NoError(t, migration.Execute(context.Background(), deps))
	assert.NoError(t, migration.Rollback(context.Background(), deps))
}

func TestDeleteObsoleteKindsMigration_ExecuteStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		DeleteAllByTypes(gomock.Any(), gomock.Any()).
		Return(int64(0), assert.AnError)

	err := (&DeleteObsoleteKindsMigration{}).Execute(context.Background(), deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete obsolete notification types")
}
