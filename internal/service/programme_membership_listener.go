package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ProgrammeMembershipListener parses programme membership queue messages and
// hands them to the planner.
type ProgrammeMembershipListener struct {
	handler domain.ProgrammeMembershipHandler
	logger  logger.Logger
}

func NewProgrammeMembershipListener(handler domain.ProgrammeMembershipHandler, logger logger.Logger) *ProgrammeMembershipListener {
	return &ProgrammeMembershipListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated replans the notification set for the updated membership.
func (l *ProgrammeMembershipListener) HandleUpdated(ctx context.Context, body string) error {
	var pm domain.ProgrammeMembership
	if err := json.Unmarshal([]byte(payloadOf(body)), &pm); err != nil {
		return fmt.Errorf("failed to parse programme membership event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": pm.PersonID,
		"tisId":     pm.TisID,
	}).Info("Programme membership updated event received")

	return l.handler.HandleUpdate(ctx, &pm)
}

// HandleDeleted prunes the plan of the deleted membership.
func (l *ProgrammeMembershipListener) HandleDeleted(ctx context.Context, body string) error {
	var event domain.ProgrammeMembershipDeletedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse programme membership deleted event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.PersonID,
		"tisId":     event.TisID,
	}).Info("Programme membership deleted event received")

	return l.handler.HandleDelete(ctx, event.PersonID, event.TisID)
}
