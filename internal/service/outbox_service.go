package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// outboxChunkSize is the SQS batch entry limit.
const outboxChunkSize = 10

// OutboxService enqueues History ids for asynchronous rebroadcast. The full
// history scan that feeds it can be large, so ids travel in batches and
// failures come back to the caller instead of aborting the whole run.
type OutboxService struct {
	sqsClient domain.SQSClient
	queueURL  string
	logger    logger.Logger
}

func NewOutboxService(sqsClient domain.SQSClient, queueURL string, logger logger.Logger) *OutboxService {
	return &OutboxService{
		sqsClient: sqsClient,
		queueURL:  queueURL,
		logger:    logger,
	}
}

// SendToOutbox chunks ids into batch messages of up to ten and enqueues
// them, returning the ids whose message could not be sent.
func (s *OutboxService) SendToOutbox(ctx context.Context, ids []string) []string {
	var failed []string

	traceHeader := tracing.SpanContextToHeader(ctx)

	var entries []*sqs.SendMessageBatchRequestEntry
	var chunks [][]string
	for start := 0; start < len(ids); start += outboxChunkSize {
		end := start + outboxChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		body, err := json.Marshal(domain.OutboxBatchEvent{IDs: chunk})
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to marshal outbox batch: %v", err))
			failed = append(failed, chunk...)
			continue
		}

		entry := &sqs.SendMessageBatchRequestEntry{
			Id:          aws.String(strconv.Itoa(len(entries))),
			MessageBody: aws.String(string(body)),
		}
		if traceHeader != "" {
			entry.MessageAttributes = map[string]*sqs.MessageAttributeValue{
				domain.TraceHeaderAttribute: {
					DataType:    aws.String("String"),
					StringValue: aws.String(traceHeader),
				},
			}
		}

		entries = append(entries, entry)
		chunks = append(chunks, chunk)

		// One SendMessageBatch call carries at most ten entries.
		if len(entries) == outboxChunkSize {
			failed = append(failed, s.flush(ctx, entries, chunks)...)
			entries = nil
			chunks = nil
		}
	}
	if len(entries) > 0 {
		failed = append(failed, s.flush(ctx, entries, chunks)...)
	}

	return failed
}

// flush sends one batch call and maps per-entry failures back to their ids.
func (s *OutboxService) flush(ctx context.Context, entries []*sqs.SendMessageBatchRequestEntry, chunks [][]string) []string {
	output, err := s.sqsClient.SendMessageBatchWithContext(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(s.queueURL),
		Entries:  entries,
	})
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to send outbox batch: %v", err))
		var failed []string
		for _, chunk := range chunks {
			failed = append(failed, chunk...)
		}
		return failed
	}

	var failed []string
	for _, entryFailure := range output.Failed {
		index, err := strconv.Atoi(aws.StringValue(entryFailure.Id))
		if err != nil || index < 0 || index >= len(chunks) {
			continue
		}
		s.logger.WithFields(map[string]interface{}{
			"code":    aws.StringValue(entryFailure.Code),
			"message": aws.StringValue(entryFailure.Message),
		}).Warn("Outbox batch entry rejected")
		failed = append(failed, chunks[index]...)
	}
	return failed
}
