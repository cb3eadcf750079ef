package service

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// PlacementService plans the single week-12 milestone email for a placement
// snapshot. The same prune-then-replan shape as the programme plan, with one
// anchored kind and no in-app rows.
type PlacementService struct {
	historyRepo domain.HistoryRepository
	scheduler   domain.JobScheduler
	logger      logger.Logger
}

func NewPlacementService(
	historyRepo domain.HistoryRepository,
	scheduler domain.JobScheduler,
	logger logger.Logger,
) *PlacementService {
	return &PlacementService{
		historyRepo: historyRepo,
		scheduler:   scheduler,
		logger:      logger,
	}
}

// HandleUpdate replans the week-12 email for the snapshot. The old plan is
// pruned first, so a start-date edit moves the job and a type change to a
// non-notifiable placement clears it.
func (s *PlacementService) HandleUpdate(ctx context.Context, placement *domain.Placement) error {
	if placement.PersonID == "" {
		return domain.ErrMissingTraineeID
	}
	if placement.TisID == "" {
		return domain.NewValidationError("placement tisId is required")
	}

	excluded := placement.IsExcluded()

	if err := s.prune(ctx, placement.PersonID, placement.TisID); err != nil {
		return err
	}
	if excluded {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": placement.PersonID,
			"tisId":     placement.TisID,
		}).Info("Placement excluded from notifications")
		return nil
	}

	ref := domain.NewTisReference(domain.ReferencePlacement, placement.TisID)
	alreadySent, err := s.historyRepo.FindLatestPerKind(ctx, placement.PersonID, *ref,
		[]domain.NotificationKind{domain.KindPlacementUpdatedWeek12})
	if err != nil {
		return fmt.Errorf("failed to scan notification history: %w", err)
	}
	if alreadySent[domain.KindPlacementUpdatedWeek12] != nil {
		return nil
	}

	fireAt := s.scheduler.GetScheduleDate(placement.StartDate, domain.PlacementMilestoneDaysBefore)
	data := domain.NewPlacementJobData(placement)
	jobID := domain.JobID(domain.KindPlacementUpdatedWeek12, placement.TisID)
	if err := s.scheduler.Schedule(ctx, jobID, data, fireAt, domain.DefaultMisfireWindowSeconds); err != nil {
		return err
	}
	return nil
}

// HandleDelete prunes the plan for a deleted placement.
func (s *PlacementService) HandleDelete(ctx context.Context, personID, tisID string) error {
	if personID == "" {
		return domain.ErrMissingTraineeID
	}
	return s.prune(ctx, personID, tisID)
}

func (s *PlacementService) prune(ctx context.Context, personID, tisID string) error {
	ref := domain.TisReference{Type: domain.ReferencePlacement, ID: tisID}
	if _, err := s.historyRepo.DeleteScheduledByRecipientAndRef(ctx, personID, ref); err != nil {
		return fmt.Errorf("failed to prune scheduled notifications: %w", err)
	}
	return s.scheduler.Remove(ctx, domain.JobID(domain.KindPlacementUpdatedWeek12, tisID))
}
