package migrations

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
)

// BackfillNullStatusMigration stamps SENT on legacy rows written before the
// status field existed. Every such row had in fact been dispatched.
type BackfillNullStatusMigration struct{}

func (m *BackfillNullStatusMigration) ID() string {
	return "004-backfill-null-status"
}

func (m *BackfillNullStatusMigration) Execute(ctx context.Context, deps *Dependencies) error {
	backfilled, err := deps.HistoryRepository.BackfillMissingStatus(ctx, domain.StatusSent)
	if err != nil {
		return fmt.Errorf("failed to backfill missing statuses: %w", err)
	}

	deps.Logger.WithField("backfilled", backfilled).Info("Backfilled status on legacy history rows")
	return nil
}

func (m *BackfillNullStatusMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&BackfillNullStatusMigration{})
}
