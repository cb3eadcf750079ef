package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// AccountListener parses identity directory messages for the
// account-confirmed and account-updated queues.
type AccountListener struct {
	handler domain.AccountHandler
	logger  logger.Logger
}

func NewAccountListener(handler domain.AccountHandler, logger logger.Logger) *AccountListener {
	return &AccountListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleConfirmed welcomes a freshly registered trainee.
func (l *AccountListener) HandleConfirmed(ctx context.Context, body string) error {
	var event domain.AccountConfirmedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse account confirmed event: %w", err)
	}

	l.logger.WithField("traineeId", event.TraineeID).Info("Account confirmed event received")

	return l.handler.HandleConfirmed(ctx, &event)
}

// HandleUpdated alerts both addresses of a sign-in email change.
func (l *AccountListener) HandleUpdated(ctx context.Context, body string) error {
	var event domain.AccountUpdatedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse account updated event: %w", err)
	}

	l.logger.WithField("traineeId", event.TraineeID).Info("Account updated event received")

	return l.handler.HandleUpdated(ctx, &event)
}
