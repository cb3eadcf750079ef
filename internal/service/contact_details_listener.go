package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ContactDetailsListener parses contact-details-updated messages.
type ContactDetailsListener struct {
	handler domain.ContactDetailsHandler
	logger  logger.Logger
}

func NewContactDetailsListener(handler domain.ContactDetailsHandler, logger logger.Logger) *ContactDetailsListener {
	return &ContactDetailsListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated retries failed sends against the trainee's new address.
func (l *ContactDetailsListener) HandleUpdated(ctx context.Context, body string) error {
	var event domain.ContactDetailsUpdatedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse contact details event: %w", err)
	}

	l.logger.WithField("traineeId", event.TraineeID).Info("Contact details updated event received")

	return l.handler.HandleUpdate(ctx, &event)
}
