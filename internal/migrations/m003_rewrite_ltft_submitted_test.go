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

func TestRewriteLtftSubmittedMigration_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		RewriteType(gomock.Any(), "LTFT_SUBMITTED_TRAINEE", "LTFT_SUBMITTED").
		Return(int64(3), nil)

	migration := &RewriteLtftSubmittedMigration{}
	assert.Equal(t, "003-rewrite-ltft-submitted", migration.ID())
	assert.NoError(t, migration.Execute(context.Background(), deps))
}

func TestRewriteLtftSubmittedMigration_ExecuteStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	deps := &Dependencies{HistoryRepository: historyRepo, Logger: logger.NewTestLogger(t)}

	historyRepo.EXPECT().
		RewriteType(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), assert.AnError)

	err := (&RewriteLtftSubmittedMigration{}).Execute(context.Background(), deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rewrite LTFT submitted type")
}
