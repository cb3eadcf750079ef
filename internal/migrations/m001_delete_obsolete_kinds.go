package migrations

import (
	"context"
	"fmt"
)

// obsoleteKinds are the notification types retired when the week-anchored
// milestone emails replaced the single programme and placement alerts. The
// values are literals because the constants no longer exist.
var obsoleteKinds = []string{
	"PROGRAMME_CREATED",
	"PROGRAMME_UPDATED",
	"PLACEMENT_CREATED",
}

// DeleteObsoleteKindsMigration removes history rows of retired notification
// types.
type DeleteObsoleteKindsMigration struct{}

func (m *DeleteObsoleteKindsMigration) ID() string {
	return "001-delete-obsolete-kinds"
}

func (m *DeleteObsoleteKindsMigration) Execute(ctx context.Context, deps *Dependencies) error {
	deleted, err := deps.HistoryRepository.DeleteAllByTypes(ctx, obsoleteKinds)
	if err != nil {
		return fmt.Errorf("failed to delete obsolete notification types: %w", err)
	}

	deps.Logger.WithField("deleted", deleted).Info("Removed history rows of retired notification types")
	return nil
}

func (m *DeleteObsoleteKindsMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&DeleteObsoleteKindsMigration{})
}
