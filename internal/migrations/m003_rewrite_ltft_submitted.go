package migrations

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
)

// RewriteLtftSubmittedMigration renames the LTFT_SUBMITTED_TRAINEE type to
// LTFT_SUBMITTED. The TRAINEE suffix was dropped when the TPD channel got
// its own type family.
type RewriteLtftSubmittedMigration struct{}

func (m *RewriteLtftSubmittedMigration) ID() string {
	return "003-rewrite-ltft-submitted"
}

func (m *RewriteLtftSubmittedMigration) Execute(ctx context.Context, deps *Dependencies) error {
	rewritten, err := deps.HistoryRepository.RewriteType(ctx, "LTFT_SUBMITTED_TRAINEE", string(domain.KindLtftSubmitted))
	if err != nil {
		return fmt.Errorf("failed to rewrite LTFT submitted type: %w", err)
	}

	deps.Logger.WithField("rewritten", rewritten).Info("Renamed LTFT submitted notification type")
	return nil
}

func (m *RewriteLtftSubmittedMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&RewriteLtftSubmittedMigration{})
}
