package migrations

import (
	"context"
	"fmt"
)

// BroadcastHistoryMigration enqueues every history row for rebroadcast so a
// downstream consumer can rebuild its copy of the store. The outbox consumer
// does the actual publishing batch by batch.
type BroadcastHistoryMigration struct{}

func (m *BroadcastHistoryMigration) ID() string {
	return "005-broadcast-history"
}

func (m *BroadcastHistoryMigration) Execute(ctx context.Context, deps *Dependencies) error {
	ids, err := deps.HistoryRepository.FindAllIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history ids for rebroadcast: %w", err)
	}
	if len(ids) == 0 {
		deps.Logger.Info("No history rows to rebroadcast")
		return nil
	}

	// Rebroadcast is idempotent downstream, so rerunning after a partial
	// failure only repeats work.
	failed := deps.OutboxSender.SendToOutbox(ctx, ids)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d history ids failed to enqueue for rebroadcast", len(failed), len(ids))
	}

	deps.Logger.WithField("count", len(ids)).Info("Enqueued full history for rebroadcast")
	return nil
}

func (m *BroadcastHistoryMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&BroadcastHistoryMigration{})
}
