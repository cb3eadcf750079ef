package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// LtftListener parses LTFT application messages for both the trainee and
// the TPD queue. The nested status block is flattened by the event's own
// unmarshalling.
type LtftListener struct {
	handler domain.LtftHandler
	logger  logger.Logger
}

func NewLtftListener(handler domain.LtftHandler, logger logger.Logger) *LtftListener {
	return &LtftListener{
		handler: handler,
		logger:  logger,
	}
}

// HandleUpdated notifies the trainee of an LTFT state transition.
func (l *LtftListener) HandleUpdated(ctx context.Context, body string) error {
	event, err := l.parse(body)
	if err != nil {
		return err
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"formRef":   event.FormRef,
		"state":     event.State,
	}).Info("LTFT updated event received")

	return l.handler.HandleUpdate(ctx, event)
}

// HandleTpdUpdated notifies the TPD of an approval or submission.
func (l *LtftListener) HandleTpdUpdated(ctx context.Context, body string) error {
	event, err := l.parse(body)
	if err != nil {
		return err
	}

	l.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"formRef":   event.FormRef,
		"state":     event.State,
	}).Info("LTFT TPD event received")

	return l.handler.HandleTpdUpdate(ctx, event)
}

func (l *LtftListener) parse(body string) (*domain.LtftUpdateEvent, error) {
	var event domain.LtftUpdateEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return nil, fmt.Errorf("failed to parse LTFT event: %w", err)
	}
	return &event, nil
}
