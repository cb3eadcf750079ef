package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// EmailEventListener parses provider feedback messages.
type EmailEventListener struct {
	handler domain.EmailEventHandler
	logger  logger.Logger
}

func NewEmailEventListener(handler domain.EmailEventHandler, logger logger.Logger) *EmailEventListener {
	return &EmailEventListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleEvent applies a bounce, complaint or delivery to the notification's
// status.
func (l *EmailEventListener) HandleEvent(ctx context.Context, body string) error {
	var event domain.EmailEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse email event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"notificationType": event.NotificationType,
		"notificationId":   event.NotificationID(),
	}).Info("Email event received")

	return l.handler.HandleEvent(ctx, &event)
}
