package migrations

import (
	"context"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// Migration is a named one-shot repair unit. Execute runs the bulk step;
// Rollback exists for symmetry and is a no-op on every shipped migration
// because the repairs are not reversible data transforms.
type Migration interface {
	// ID orders migrations and keys the applied-set. Ids carry a numeric
	// prefix so lexical order is execution order.
	ID() string
	Execute(ctx context.Context, deps *Dependencies) error
	Rollback(ctx context.Context, deps *Dependencies) error
}

// AppliedStore records which migrations have already run.
type AppliedStore interface {
	IsApplied(ctx context.Context, id string) (bool, error)
	MarkApplied(ctx context.Context, id string) error
}

// Dependencies bundles the collaborators a migration may use. Bulk-only
// repairs go straight to the repository; repairs that must broadcast their
// changes go through the history service.
type Dependencies struct {
	HistoryRepository domain.HistoryRepository
	HistoryService    domain.HistoryService
	EmailSender       domain.EmailSender
	Scheduler         domain.JobScheduler
	OutboxSender      domain.OutboxSender
	Logger            logger.Logger
}
