package migrations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
)

// The June 2025 nhs.net relay outage bounced four days of mail. Rows that
// failed with a bounce in that window are replayed here.
var (
	resendWindowStart = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	resendWindowEnd   = time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
)

const resendRecipientDomain = "@nhs.net"

// scheduledResendKinds are the milestone types whose repair goes back
// through the scheduler. The executor re-resolves the recipient and writes
// a fresh row when the job fires.
var scheduledResendKinds = map[domain.NotificationKind]bool{
	domain.KindProgrammeUpdatedWeek8:  true,
	domain.KindProgrammeUpdatedWeek4:  true,
	domain.KindProgrammeUpdatedWeek1:  true,
	domain.KindProgrammeUpdatedWeek0:  true,
	domain.KindPlacementUpdatedWeek12: true,
}

// ResendProviderFailuresMigration replays emails bounced during a provider
// outage: instant kinds are resent from their stored render inputs,
// milestone kinds are rescheduled and their bounced row deleted.
type ResendProviderFailuresMigration struct{}

func (m *ResendProviderFailuresMigration) ID() string {
	return "006-resend-provider-failures"
}

func (m *ResendProviderFailuresMigration) Execute(ctx context.Context, deps *Dependencies) error {
	rows, err := deps.HistoryRepository.FindAllByStatusAndSentAtBetween(ctx, domain.StatusFailed, resendWindowStart, resendWindowEnd)
	if err != nil {
		return fmt.Errorf("failed to load bounced rows for resend: %w", err)
	}

	resent, rescheduled := 0, 0
	for _, row := range rows {
		if !m.eligible(row) {
			continue
		}

		if scheduledResendKinds[row.Type] {
			if err := m.reschedule(ctx, deps, row); err != nil {
				deps.Logger.WithField("id", row.ID).Error(fmt.Sprintf("Failed to reschedule bounced notification: %v", err))
				continue
			}
			rescheduled++
			continue
		}

		if err := deps.EmailSender.Resend(ctx, row, row.Recipient.Contact); err != nil {
			deps.Logger.WithField("id", row.ID).Error(fmt.Sprintf("Failed to resend bounced notification: %v", err))
			continue
		}
		resent++
	}

	deps.Logger.WithFields(map[string]interface{}{
		"matched":     len(rows),
		"resent":      resent,
		"rescheduled": rescheduled,
	}).Info("Provider failure repair finished")
	return nil
}

// eligible restricts the repair to bounced email rows of the affected
// domain. Rows failed for a missing address carry no bounce detail and are
// left alone.
func (m *ResendProviderFailuresMigration) eligible(row *domain.History) bool {
	if row.Recipient.Channel != domain.ChannelEmail {
		return false
	}
	if !strings.HasSuffix(strings.ToLower(row.Recipient.Contact), resendRecipientDomain) {
		return false
	}
	return strings.HasPrefix(row.StatusDetail, "Bounce:")
}

// reschedule re-registers the milestone job due immediately with a one-day
// misfire window, then removes the bounced row. The stored template
// variables already carry the rendering payload; the job payload only
// restores the entity id the executor keys on.
func (m *ResendProviderFailuresMigration) reschedule(ctx context.Context, deps *Dependencies, row *domain.History) error {
	if row.TisReference == nil {
		return fmt.Errorf("milestone row %s has no entity reference", row.ID)
	}

	data := domain.JobData{
		Kind:      row.Type,
		TraineeID: row.Recipient.TraineeID,
		Variables: row.Template.Variables,
	}
	switch row.TisReference.Type {
	case domain.ReferenceProgrammeMembership:
		data.Programme = &domain.ProgrammeJobPayload{TisID: row.TisReference.ID}
	case domain.ReferencePlacement:
		data.Placement = &domain.PlacementJobPayload{TisID: row.TisReference.ID}
	default:
		return fmt.Errorf("milestone row %s references %s", row.ID, row.TisReference.Type)
	}

	jobID := domain.JobID(row.Type, row.TisReference.ID)
	if err := deps.Scheduler.Schedule(ctx, jobID, data, time.Now().UTC(), domain.DefaultMisfireWindowSeconds); err != nil {
		return err
	}

	return deps.HistoryService.Delete(ctx, row.ID, row.Recipient.TraineeID)
}

func (m *ResendProviderFailuresMigration) Rollback(ctx context.Context, deps *Dependencies) error {
	return nil
}

func init() {
	Register(&ResendProviderFailuresMigration{})
}
