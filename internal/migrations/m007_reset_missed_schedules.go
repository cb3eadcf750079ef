package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
)

// missedScheduleCutoff is the last instant of the deployment gap during
// which milestone triggers could not fire. Rows still SCHEDULED before it
// belong to programmes that have already started.
var missedScheduleCutoff = time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)

const missedScheduleDetail = "Missed Schedule: Programme already started"

// ResetMissedSchedulesMigration fails scheduled notifications whose send
// instant passed without firing. The transition goes through the history
// service so downstream consumers see it.
type ResetMissedSchedulesMigration struct{}

func (m *ResetMissedSchedulesMigration) ID() string {
	return "007-reset-missed-schedules"
}

func (m *ResetMissedSchedulesMigration) Execute(ctx context.Context, deps *Dependencies) error {
	ids, err := deps.HistoryRepository.FindIDsByStatusSentAtOrBefore(ctx, domain.StatusScheduled, missedScheduleCutoff)
	if err != nil {
		return fmt.Errorf("failed to load missed schedules: %w", err)
	}

	reset := 0
	for _, id := range ids {
		if err := deps.HistoryService.UpdateStatus(ctx, id, domain.StatusFailed, missedScheduleDetail); err != nil {
			deps.Logger.WithField("id", id).Error(fmt.Sprintf("Failed to reset missed schedule: %v", err))
			continue
		}
		reset++
	}

	deps.Logger.WithField("count", reset).Info("Reset past-due scheduled notifications")
	return nil
}

func (m *ResetMissedSchedulesMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&ResetMissedSchedulesMigration{})
}
