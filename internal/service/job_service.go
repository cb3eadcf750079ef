package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// JobService registers and removes one-shot notification triggers against
// the persistent job store and owns the milestone date arithmetic.
type JobService struct {
	repo           domain.JobRepository
	executor       domain.NotificationExecutor
	location       *time.Location
	immediateDelay time.Duration
	logger         logger.Logger
}

func NewJobService(repo domain.JobRepository, executor domain.NotificationExecutor, location *time.Location, immediateDelay time.Duration, logger logger.Logger) *JobService {
	return &JobService{
		repo:           repo,
		executor:       executor,
		location:       location,
		immediateDelay: immediateDelay,
		logger:         logger,
	}
}

// Schedule registers a one-shot job, replacing any existing job with the
// same id.
func (s *JobService) Schedule(ctx context.Context, jobID string, data domain.JobData, fireAt time.Time, misfireWindowSeconds int) error {
	job := &domain.Job{
		ID:                   jobID,
		Data:                 data,
		FireAt:               fireAt,
		MisfireWindowSeconds: misfireWindowSeconds,
	}
	if err := s.repo.Upsert(ctx, job); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to schedule job %s: %v", jobID, err))
		return fmt.Errorf("failed to schedule job %s: %w", jobID, err)
	}
	s.logger.WithFields(map[string]interface{}{
		"jobId":  jobID,
		"fireAt": fireAt.Format(time.RFC3339),
	}).Info("Scheduled notification job")
	return nil
}

// ExecuteNow runs the executor immediately, bypassing the store.
func (s *JobService) ExecuteNow(ctx context.Context, jobID string, data domain.JobData) error {
	result, err := s.executor.Execute(ctx, jobID, data)
	if err != nil {
		return fmt.Errorf("failed to execute job %s: %w", jobID, err)
	}
	s.logger.WithFields(map[string]interface{}{
		"jobId":  jobID,
		"result": result,
	}).Info("Executed notification job")
	return nil
}

// Remove deletes any job with this id; a missing id is not an error.
func (s *JobService) Remove(ctx context.Context, jobID string) error {
	deleted, err := s.repo.Delete(ctx, jobID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to remove job %s: %v", jobID, err))
		return fmt.Errorf("failed to remove job %s: %w", jobID, err)
	}
	if deleted {
		s.logger.WithField("jobId", jobID).Info("Removed notification job")
	}
	return nil
}

// GetScheduleDate returns the instant a milestone anchored daysBefore days
// ahead of anchorDate fires: midnight of that day in the configured zone, or
// the configured immediate delay from now when the milestone is already due.
// The delay absorbs follow-up edits to the same record before the email goes
// out.
func (s *JobService) GetScheduleDate(anchorDate domain.ISODate, daysBefore int) time.Time {
	milestone := domain.NewISODate(anchorDate.AddDate(0, 0, -daysBefore))
	fireAt := milestone.AtStartOfDay(s.location)
	if !fireAt.After(time.Now()) {
		return time.Now().Add(s.immediateDelay)
	}
	return fireAt
}
