package service

import (
	"context"
	"database/sql"
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

func newJobRunner(t *testing.T, ctrl *gomock.Controller, interval time.Duration, batchSize int) (*JobRunner, *mocks.MockJobRepository, *mocks.MockNotificationExecutor) {
	t.Helper()
	repo := mocks.NewMockJobRepository(ctrl)
	executor := mocks.NewMockNotificationExecutor(ctrl)
	runner := NewJobRunner(repo, executor, logger.NewTestLogger(t), interval, batchSize)
	return runner, repo, executor
}

// passThroughTx makes the mocked WithTransaction run its callback with a nil
// transaction handle, which the mocked row operations never touch.
func passThroughTx(repo *mocks.MockJobRepository) *gomock.Call {
	return repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})
}

func TestNewJobRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, _, _ := newJobRunner(t, ctrl, time.Second, 10)
	assert.Equal(t, time.Second, runner.interval)
	assert.Equal(t, 10, runner.batchSize)
	assert.False(t, runner.IsRunning())
	assert.NotNil(t, runner.stopChan)
	assert.NotNil(t, runner.stoppedChan)
}

func TestJobRunner_FireNextFiresDueJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, executor := newJobRunner(t, ctrl, time.Second, 10)
	job := &domain.Job{
		ID:                   "PROGRAMME_UPDATED_WEEK_0-pm-1",
		Data:                 domain.JobData{Kind: domain.KindProgrammeUpdatedWeek0, TraineeID: "trainee-1"},
		FireAt:               time.Now().Add(-time.Minute),
		MisfireWindowSeconds: domain.DefaultMisfireWindowSeconds,
	}

	passThroughTx(repo)
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return([]*domain.Job{job}, nil)
	executor.EXPECT().Execute(gomock.Any(), job.ID, job.Data).Return("sent 2025-08-25T09:00:00Z", nil)
	repo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), job.ID).Return(nil)

	claimed, err := runner.fireNext(context.Background())
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestJobRunner_FireNextNoDueJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, _ := newJobRunner(t, ctrl, time.Second, 10)

	passThroughTx(repo)
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return(nil, nil)

	claimed, err := runner.fireNext(context.Background())
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestJobRunner_FireNextDiscardsMisfire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, _ := newJobRunner(t, ctrl, time.Second, 10)
	job := &domain.Job{
		ID:                   "PROGRAMME_UPDATED_WEEK_0-pm-1",
		Data:                 domain.JobData{Kind: domain.KindProgrammeUpdatedWeek0, TraineeID: "trainee-1"},
		FireAt:               time.Now().Add(-2 * time.Hour),
		MisfireWindowSeconds: 3600,
	}

	passThroughTx(repo)
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return([]*domain.Job{job}, nil)
	// The executor must not run; the row is deleted so the planner can
	// re-materialise the milestone on the next inbound event.
	repo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), job.ID).Return(nil)

	claimed, err := runner.fireNext(context.Background())
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestJobRunner_FireNextExecutorErrorRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, executor := newJobRunner(t, ctrl, time.Second, 10)
	job := &domain.Job{
		ID:                   "PROGRAMME_UPDATED_WEEK_0-pm-1",
		Data:                 domain.JobData{Kind: domain.KindProgrammeUpdatedWeek0, TraineeID: "trainee-1"},
		FireAt:               time.Now().Add(-time.Minute),
		MisfireWindowSeconds: domain.DefaultMisfireWindowSeconds,
	}

	passThroughTx(repo)
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return([]*domain.Job{job}, nil)
	executor.EXPECT().Execute(gomock.Any(), job.ID, job.Data).Return("", errors.New("profile service unavailable"))

	_, err := runner.fireNext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")
}

func TestJobRunner_FireDueJobsStopsAtBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, executor := newJobRunner(t, ctrl, time.Second, 2)
	job := &domain.Job{
		ID:                   "PROGRAMME_UPDATED_WEEK_0-pm-1",
		Data:                 domain.JobData{Kind: domain.KindProgrammeUpdatedWeek0, TraineeID: "trainee-1"},
		FireAt:               time.Now().Add(-time.Minute),
		MisfireWindowSeconds: domain.DefaultMisfireWindowSeconds,
	}

	passThroughTx(repo).Times(2)
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return([]*domain.Job{job}, nil).Times(2)
	executor.EXPECT().Execute(gomock.Any(), job.ID, job.Data).Return("sent", nil).Times(2)
	repo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), job.ID).Return(nil).Times(2)

	runner.fireDueJobs(context.Background())
}

func TestJobRunner_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, repo, _ := newJobRunner(t, ctrl, 50*time.Millisecond, 5)

	passThroughTx(repo).AnyTimes()
	repo.EXPECT().ClaimDueTx(gomock.Any(), gomock.Nil(), gomock.Any(), 1).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner.Start(ctx)
	assert.True(t, runner.IsRunning())

	time.Sleep(150 * time.Millisecond)
	runner.Stop()

	assert.False(t, runner.IsRunning())
}
