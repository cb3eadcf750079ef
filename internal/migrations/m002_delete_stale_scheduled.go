package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
)

// DeleteStaleScheduledMigration removes SCHEDULED rows whose send instant
// has already passed. These rows were orphaned before scheduled in-app
// notifications learned to transition themselves to UNREAD.
type DeleteStaleScheduledMigration struct{}

func (m *DeleteStaleScheduledMigration) ID() string {
	return "002-delete-stale-scheduled"
}

func (m *DeleteStaleScheduledMigration) Execute(ctx context.Context, deps *Dependencies) error {
	deleted, err := deps.HistoryRepository.DeleteAllByStatusBefore(ctx, domain.StatusScheduled, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete stale scheduled rows: %w", err)
	}

	deps.Logger.WithField("deleted", deleted).Info("Removed stale scheduled notifications")
	return nil
}

func (m *DeleteStaleScheduledMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&DeleteStaleScheduledMigration{})
}
