package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// GmcListener parses gmc-updated and gmc-rejected messages.
type GmcListener struct {
	handler domain.GmcHandler
	logger  logger.Logger
}

func NewGmcListener(handler domain.GmcHandler, logger logger.Logger) *GmcListener {
	return &GmcListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated records the GMC update as an in-app row.
func (l *GmcListener) HandleUpdated(ctx context.Context, body string) error {
	event, err := l.parse(body)
	if err != nil {
		return err
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"gmcStatus": event.GmcStatus,
	}).Info("GMC updated event received")

	return l.handler.HandleUpdate(ctx, event)
}

// HandleRejected emails the trainee and their local office.
func (l *GmcListener) HandleRejected(ctx context.Context, body string) error {
	event, err := l.parse(body)
	if err != nil {
		return err
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"gmcStatus": event.GmcStatus,
	}).Info("GMC rejected event received")

	return l.handler.HandleRejected(ctx, event)
}

func (l *GmcListener) parse(body string) (*domain.GmcDetailsEvent, error) {
	var event domain.GmcDetailsEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return nil, fmt.Errorf("failed to parse GMC event: %w", err)
	}
	return &event, nil
}
