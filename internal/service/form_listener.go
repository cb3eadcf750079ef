package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// FormListener parses form-updated messages.
type FormListener struct {
	handler domain.FormHandler
	logger  logger.Logger
}

func NewFormListener(handler domain.FormHandler, logger logger.Logger) *FormListener {
	return &FormListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated records the form lifecycle change as an in-app row.
func (l *FormListener) HandleUpdated(ctx context.Context, body string) error {
	var event domain.FormUpdatedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse form updated event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"formName":  event.FormName,
		"state":     event.LifecycleState,
	}).Info("Form updated event received")

	return l.handler.HandleUpdate(ctx, &event)
}
