package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// OutboxListener parses outbox batches and republishes the named rows to the
// notifications topic.
type OutboxListener struct {
	historyService domain.HistoryService
	logger         logger.Logger
}

func NewOutboxListener(historyService domain.HistoryService, logger logger.Logger) *OutboxListener {
	return &OutboxListener{
		historyService: historyService,
		logger:         logger,
	}
}

// HandleBatch rebroadcasts each id in the batch.
func (l *OutboxListener) HandleBatch(ctx context.Context, body string) error {
	var event domain.OutboxBatchEvent
	if err := json.Unmarshal([]byte(payloadOf(body)), &event); err != nil {
		return fmt.Errorf("failed to parse outbox batch: %w", err)
	}
	if len(event.IDs) == 0 {
		l.logger.Warn("Outbox batch with no ids, nothing to rebroadcast")
		return nil
	}

	l.logger.WithField("count", len(event.IDs)).Info("Outbox batch received")

	return l.historyService.Rebroadcast(ctx, event.IDs)
}
