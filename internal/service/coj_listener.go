package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// CojListener parses coj-published messages.
type CojListener struct {
	handler domain.CojHandler
	logger  logger.Logger
}

func NewCojListener(handler domain.CojHandler, logger logger.Logger) *CojListener {
	return &CojListener{
		handler: handler,
		logger:  logger,
	}
}

// HandlePublished emails the trainee their signed document.
func (l *CojListener) HandlePublished(ctx context.Context, body string) error {
	var event domain.CojPublishedEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse COJ published event: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId":           event.PersonID,
		"programmeMembership": event.ProgrammeMembership,
	}).Info("COJ published event received")

	return l.handler.HandlePublished(ctx, &event)
}
