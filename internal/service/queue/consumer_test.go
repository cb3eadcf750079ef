package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

const testQueueURL = "https://sqs.eu-west-2.amazonaws.com/123456789012/ltft-updated"

func newTestConsumer(t *testing.T, ctrl *gomock.Controller, handler Handler, config *Config) (*Consumer, *mocks.MockSQSClient) {
	t.Helper()
	sqsClient := mocks.NewMockSQSClient(ctrl)
	consumer := NewConsumer(sqsClient, testQueueURL, "ltft-updated", handler, config, logger.NewTestLogger(t))
	consumer.ctx, consumer.cancel = context.WithCancel(context.Background())
	return consumer, sqsClient
}

func queueMessage(id, body string) *sqs.Message {
	return &sqs.Message{
		MessageId:     aws.String(id),
		Body:          aws.String(body),
		ReceiptHandle: aws.String("receipt-" + id),
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NotNil(t, config)
	assert.Equal(t, 20, config.WaitSeconds)
	assert.Equal(t, 10, config.BatchSize)
	assert.Equal(t, 5, config.WorkerCount)
}

func TestNewConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("uses default config when nil provided", func(t *testing.T) {
		consumer := NewConsumer(mocks.NewMockSQSClient(ctrl), testQueueURL, "q", nil, nil, logger.NewTestLogger(t))
		assert.Equal(t, 20, consumer.config.WaitSeconds)
		assert.False(t, consumer.IsRunning())
	})

	t.Run("caps batch size at the SQS receive limit", func(t *testing.T) {
		consumer := NewConsumer(mocks.NewMockSQSClient(ctrl), testQueueURL, "q", nil, &Config{WaitSeconds: 20, BatchSize: 50, WorkerCount: 2}, logger.NewTestLogger(t))
		assert.Equal(t, 10, consumer.config.BatchSize)
	})
}

func TestConsumer_ProcessDeletesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var handled atomic.Int32
	handler := HandlerFunc(func(ctx context.Context, body string) error {
		assert.Equal(t, `{"traineeId": "trainee-1"}`, body)
		handled.Add(1)
		return nil
	})

	consumer, sqsClient := newTestConsumer(t, ctrl, handler, nil)
	sqsClient.EXPECT().DeleteMessageWithContext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ aws.Context, input *sqs.DeleteMessageInput, _ ...interface{}) (*sqs.DeleteMessageOutput, error) {
			assert.Equal(t, testQueueURL, aws.StringValue(input.QueueUrl))
			assert.Equal(t, "receipt-m1", aws.StringValue(input.ReceiptHandle))
			return &sqs.DeleteMessageOutput{}, nil
		})

	consumer.process(queueMessage("m1", `{"traineeId": "trainee-1"}`))
	assert.Equal(t, int32(1), handled.Load())
}

func TestConsumer_ProcessLeavesMessageOnHandlerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := HandlerFunc(func(ctx context.Context, body string) error {
		return errors.New("profile service unavailable")
	})

	// No delete expectation; the message must stay for redelivery.
	consumer, _ := newTestConsumer(t, ctrl, handler, nil)
	consumer.process(queueMessage("m1", "{}"))
}

func TestConsumer_ProcessRecoversHandlerPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := HandlerFunc(func(ctx context.Context, body string) error {
		panic("nil dereference in listener")
	})

	// A panic is contained and treated as a failure, so no delete either.
	consumer, _ := newTestConsumer(t, ctrl, handler, nil)
	assert.NotPanics(t, func() {
		consumer.process(queueMessage("m1", "{}"))
	})
}

func TestConsumer_ProcessLinksRemoteParentSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parentCtx, parentSpan := trace.StartSpan(context.Background(), "test.parent")
	header := tracing.SpanContextToHeader(parentCtx)
	parentSpan.End()
	require.NotEmpty(t, header)

	handler := HandlerFunc(func(ctx context.Context, body string) error {
		span := trace.FromContext(ctx)
		require.NotNil(t, span)
		assert.Equal(t, parentSpan.SpanContext().TraceID, span.SpanContext().TraceID)
		return nil
	})

	consumer, sqsClient := newTestConsumer(t, ctrl, handler, nil)
	sqsClient.EXPECT().DeleteMessageWithContext(gomock.Any(), gomock.Any()).Return(&sqs.DeleteMessageOutput{}, nil)

	msg := queueMessage("m1", "{}")
	msg.MessageAttributes = map[string]*sqs.MessageAttributeValue{
		domain.TraceHeaderAttribute: {
			DataType:    aws.String("String"),
			StringValue: aws.String(header),
		},
	}
	consumer.process(msg)
}

func TestConsumer_PollDispatchesEveryMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var handled atomic.Int32
	handler := HandlerFunc(func(ctx context.Context, body string) error {
		handled.Add(1)
		return nil
	})

	consumer, sqsClient := newTestConsumer(t, ctrl, handler, &Config{WaitSeconds: 1, BatchSize: 3, WorkerCount: 2})
	sqsClient.EXPECT().ReceiveMessageWithContext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ aws.Context, input *sqs.ReceiveMessageInput, _ ...interface{}) (*sqs.ReceiveMessageOutput, error) {
			assert.Equal(t, testQueueURL, aws.StringValue(input.QueueUrl))
			assert.Equal(t, int64(3), aws.Int64Value(input.MaxNumberOfMessages))
			assert.Equal(t, int64(1), aws.Int64Value(input.WaitTimeSeconds))
			require.Len(t, input.MessageAttributeNames, 1)
			assert.Equal(t, domain.TraceHeaderAttribute, aws.StringValue(input.MessageAttributeNames[0]))
			return &sqs.ReceiveMessageOutput{Messages: []*sqs.Message{
				queueMessage("m1", "{}"),
				queueMessage("m2", "{}"),
				queueMessage("m3", "{}"),
			}}, nil
		})
	sqsClient.EXPECT().DeleteMessageWithContext(gomock.Any(), gomock.Any()).Return(&sqs.DeleteMessageOutput{}, nil).Times(3)

	consumer.poll()
	consumer.wg.Wait()

	assert.Equal(t, int32(3), handled.Load())
}

func TestConsumer_PollBackoffRespectsCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer, sqsClient := newTestConsumer(t, ctrl, HandlerFunc(func(context.Context, string) error { return nil }), nil)
	sqsClient.EXPECT().ReceiveMessageWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

	time.AfterFunc(20*time.Millisecond, consumer.cancel)
	start := time.Now()
	consumer.poll()
	assert.Less(t, time.Since(start), receiveBackoff)
}

func TestConsumer_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sqsClient := mocks.NewMockSQSClient(ctrl)
	sqsClient.EXPECT().ReceiveMessageWithContext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(aws.Context, *sqs.ReceiveMessageInput, ...interface{}) (*sqs.ReceiveMessageOutput, error) {
			// Stand in for the long-poll wait.
			time.Sleep(10 * time.Millisecond)
			return &sqs.ReceiveMessageOutput{}, nil
		}).AnyTimes()

	handler := HandlerFunc(func(context.Context, string) error { return nil })
	consumer := NewConsumer(sqsClient, testQueueURL, "ltft-updated", handler, &Config{WaitSeconds: 1, BatchSize: 1, WorkerCount: 1}, logger.NewTestLogger(t))

	assert.False(t, consumer.IsRunning())

	consumer.Start(context.Background())
	assert.True(t, consumer.IsRunning())

	time.Sleep(50 * time.Millisecond)
	consumer.Stop()
	assert.False(t, consumer.IsRunning())

	// A second stop is a no-op.
	consumer.Stop()
}
