package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// PlacementListener parses placement queue messages and hands them to the
// planner.
type PlacementListener struct {
	handler domain.PlacementHandler
	logger  logger.Logger
}

func NewPlacementListener(handler domain.PlacementHandler, logger logger.Logger) *PlacementListener {
	return &PlacementListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated replans the notification for the updated placement.
func (l *PlacementListener) HandleUpdated(ctx context.Context, body string) error {
	var placement domain.Placement
	if err := json.Unmarshal([]byte(payloadOf(body)), &placement); err != nil {
		return fmt.Errorf("failed to parse placement event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": placement.PersonID,
		"tisId":     placement.TisID,
	}).Info("Placement updated event received")

	return l.handler.HandleUpdate(ctx, &placement)
}

// HandleDeleted prunes the plan of the deleted placement.
func (l *PlacementListener) HandleDeleted(ctx context.Context, body string) error {
	var event domain.PlacementDeletedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse placement deleted event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.PersonID,
		"tisId":     event.TisID,
	}).Info("Placement deleted event received")

	return l.handler.HandleDelete(ctx, event.PersonID, event.TisID)
}
