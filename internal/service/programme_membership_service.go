package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// ProgrammeMembershipService turns a programme-membership snapshot into a
// notification plan: milestone email jobs anchored to the start date plus
// the in-app onboarding rows. Planning is idempotent; re-delivering the same
// snapshot produces the same plan.
type ProgrammeMembershipService struct {
	historyRepo   domain.HistoryRepository
	scheduler     domain.JobScheduler
	inAppSender   domain.InAppSender
	actionsClient domain.ActionsClient
	whitelist     map[string]bool
	location      *time.Location
	logger        logger.Logger
}

func NewProgrammeMembershipService(
	historyRepo domain.HistoryRepository,
	scheduler domain.JobScheduler,
	inAppSender domain.InAppSender,
	actionsClient domain.ActionsClient,
	whitelist []string,
	location *time.Location,
	logger logger.Logger,
) *ProgrammeMembershipService {
	whitelisted := make(map[string]bool, len(whitelist))
	for _, id := range whitelist {
		whitelisted[id] = true
	}
	return &ProgrammeMembershipService{
		historyRepo:   historyRepo,
		scheduler:     scheduler,
		inAppSender:   inAppSender,
		actionsClient: actionsClient,
		whitelist:     whitelisted,
		location:      location,
		logger:        logger,
	}
}

// HandleUpdate replans notifications for the snapshot. Stale SCHEDULED rows
// and jobs are pruned first so an edit or deferral always replaces the old
// plan, then the milestone emails and in-app rows are laid down again
// against what was already sent.
func (s *ProgrammeMembershipService) HandleUpdate(ctx context.Context, pm *domain.ProgrammeMembership) error {
	// codecov:ignore:start
	ctx, span := tracing.StartServiceSpan(ctx, "ProgrammeMembershipService", "HandleUpdate")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "traineeId", pm.PersonID)
	tracing.AddAttribute(ctx, "tisId", pm.TisID)
	// codecov:ignore:end

	if pm.PersonID == "" {
		return domain.ErrMissingTraineeID
	}
	if pm.TisID == "" {
		return domain.NewValidationError("programme membership tisId is required")
	}

	excluded := pm.IsExcluded()

	if err := s.prune(ctx, pm.PersonID, pm.TisID); err != nil {
		return err
	}
	if excluded {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": pm.PersonID,
			"tisId":     pm.TisID,
		}).Info("Programme membership excluded from notifications")
		return nil
	}

	ref := domain.NewTisReference(domain.ReferenceProgrammeMembership, pm.TisID)
	kinds := make([]domain.NotificationKind, 0, len(domain.ProgrammeUpdateKinds)+len(domain.ProgrammeInAppKinds))
	kinds = append(kinds, domain.ProgrammeUpdateKinds...)
	kinds = append(kinds, domain.ProgrammeInAppKinds...)

	alreadySent, err := s.historyRepo.FindLatestPerKind(ctx, pm.PersonID, *ref, kinds)
	if err != nil {
		return fmt.Errorf("failed to scan notification history: %w", err)
	}

	if err := s.scheduleMilestoneEmails(ctx, pm, alreadySent); err != nil {
		return err
	}
	return s.createInAppNotifications(ctx, pm, ref, alreadySent)
}

// HandleDelete prunes the plan for a deleted programme membership. Rows
// already sent stay for the record.
func (s *ProgrammeMembershipService) HandleDelete(ctx context.Context, personID, tisID string) error {
	if personID == "" {
		return domain.ErrMissingTraineeID
	}
	return s.prune(ctx, personID, tisID)
}

func (s *ProgrammeMembershipService) prune(ctx context.Context, personID, tisID string) error {
	ref := domain.TisReference{Type: domain.ReferenceProgrammeMembership, ID: tisID}
	if _, err := s.historyRepo.DeleteScheduledByRecipientAndRef(ctx, personID, ref); err != nil {
		return fmt.Errorf("failed to prune scheduled notifications: %w", err)
	}
	for _, kind := range domain.ProgrammeUpdateKinds {
		if err := s.scheduler.Remove(ctx, domain.JobID(kind, tisID)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProgrammeMembershipService) scheduleMilestoneEmails(ctx context.Context, pm *domain.ProgrammeMembership, alreadySent map[domain.NotificationKind]*domain.History) error {
	for _, kind := range domain.ProgrammeUpdateKinds {
		if !s.shouldSchedule(kind, pm.StartDate, alreadySent) {
			continue
		}
		fireAt := s.scheduler.GetScheduleDate(pm.StartDate, domain.MilestoneDaysBefore[kind])
		data := domain.NewProgrammeJobData(kind, pm)
		if err := s.scheduler.Schedule(ctx, domain.JobID(kind, pm.TisID), data, fireAt, domain.DefaultMisfireWindowSeconds); err != nil {
			return err
		}
	}
	return nil
}

// shouldSchedule applies the milestone rules: a kind already recorded is
// never re-sent, and a missed milestone is dropped when a later milestone
// was missed too, since the later one carries the fresher content and fires
// as the single catch-up.
func (s *ProgrammeMembershipService) shouldSchedule(kind domain.NotificationKind, startDate domain.ISODate, alreadySent map[domain.NotificationKind]*domain.History) bool {
	if alreadySent[kind] != nil {
		return false
	}
	daysBefore := domain.MilestoneDaysBefore[kind]
	if !s.milestoneMissed(startDate, daysBefore) {
		return true
	}
	for _, later := range domain.ProgrammeUpdateKinds {
		if domain.MilestoneDaysBefore[later] >= daysBefore {
			continue
		}
		if alreadySent[later] == nil && s.milestoneMissed(startDate, domain.MilestoneDaysBefore[later]) {
			return false
		}
	}
	return true
}

// milestoneMissed reports whether the milestone's fire instant is already
// behind us, using the same midnight-in-zone arithmetic the scheduler uses.
func (s *ProgrammeMembershipService) milestoneMissed(startDate domain.ISODate, daysBefore int) bool {
	milestone := domain.NewISODate(startDate.AddDate(0, 0, -daysBefore)).AtStartOfDay(s.location)
	return !milestone.After(time.Now())
}

func (s *ProgrammeMembershipService) createInAppNotifications(ctx context.Context, pm *domain.ProgrammeMembership, ref *domain.TisReference, alreadySent map[domain.NotificationKind]*domain.History) error {
	suppress := !s.meetsCriteria(ctx, pm)

	for _, kind := range domain.ProgrammeInAppKinds {
		if alreadySent[kind] != nil {
			continue
		}

		variables := map[string]interface{}{
			"programmeName": pm.ProgrammeName,
			"startDate":     pm.StartDate.Time,
		}

		var sentAt *time.Time
		if kind == domain.KindDayOne {
			dayOne := pm.StartDate.AtStartOfDay(s.location)
			sentAt = &dayOne
		}

		if err := s.inAppSender.CreateNotifications(ctx, pm.PersonID, ref, kind, variables, suppress, sentAt); err != nil {
			return err
		}
	}
	return nil
}

// meetsCriteria reports whether the trainee has completed every onboarding
// action for this programme. An unavailable actions service counts as
// complete so notifications are not silently withheld; whitelisted trainees
// always meet criteria.
func (s *ProgrammeMembershipService) meetsCriteria(ctx context.Context, pm *domain.ProgrammeMembership) bool {
	if s.whitelist[pm.PersonID] {
		return true
	}

	actions, err := s.actionsClient.GetActions(ctx, pm.PersonID, pm.TisID)
	if err != nil {
		s.logger.WithField("traineeId", pm.PersonID).Warn(fmt.Sprintf("Actions service unavailable, assuming criteria met: %v", err))
		return true
	}
	for _, action := range actions {
		if !action.IsComplete() {
			return false
		}
	}
	return true
}
