package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"golang.org/x/sync/semaphore"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// receiveBackoff is how long the poll loop sleeps after a failed receive so
// a broken queue does not spin the loop.
const receiveBackoff = 5 * time.Second

// Handler processes the body of a single queue message. A non-nil error
// leaves the message on the queue for SQS redelivery; the queue redrive
// policy moves repeatedly failing messages to the dead letter queue.
type Handler interface {
	Handle(ctx context.Context, body string) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, body string) error

func (f HandlerFunc) Handle(ctx context.Context, body string) error {
	return f(ctx, body)
}

// Config holds tuning for a consumer.
type Config struct {
	WaitSeconds int // SQS long-poll wait per receive
	BatchSize   int // max messages per receive, capped at 10 by SQS
	WorkerCount int // concurrent message handlers
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() *Config {
	return &Config{
		WaitSeconds: 20,
		BatchSize:   10,
		WorkerCount: 5,
	}
}

// Consumer long-polls one SQS queue and hands each message to the handler
// through a bounded worker pool. Messages are deleted only after the handler
// returns nil; a handler error or panic leaves the message for redelivery.
type Consumer struct {
	sqsClient domain.SQSClient
	queueURL  string
	name      string
	handler   Handler
	config    *Config
	logger    logger.Logger
	sem       *semaphore.Weighted

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	mu      sync.RWMutex
}

// NewConsumer creates a consumer for a single queue. The name labels log
// entries and spans, not the queue itself.
func NewConsumer(
	sqsClient domain.SQSClient,
	queueURL string,
	name string,
	handler Handler,
	config *Config,
	log logger.Logger,
) *Consumer {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize < 1 || config.BatchSize > 10 {
		config.BatchSize = 10
	}
	if config.WorkerCount < 1 {
		config.WorkerCount = 1
	}

	return &Consumer{
		sqsClient: sqsClient,
		queueURL:  queueURL,
		name:      name,
		handler:   handler,
		config:    config,
		logger:    log,
		sem:       semaphore.NewWeighted(int64(config.WorkerCount)),
	}
}

// Start begins the poll loop.
func (c *Consumer) Start(ctx context.Context) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.running = true
	c.mu.Unlock()

	c.logger.WithFields(map[string]interface{}{
		"queue":   c.name,
		"workers": c.config.WorkerCount,
	}).Info("Starting queue consumer")

	c.wg.Add(1)
	go c.pollLoop()
}

// Stop cancels the poll loop and waits for in-flight handlers to finish.
func (c *Consumer) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.cancel()
	c.mu.Unlock()

	c.logger.WithField("queue", c.name).Info("Stopping queue consumer...")
	c.wg.Wait()
	c.logger.WithField("queue", c.name).Info("Queue consumer stopped")
}

// IsRunning returns whether the consumer is currently polling.
func (c *Consumer) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

func (c *Consumer) pollLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		c.poll()
	}
}

// poll runs one receive and dispatches every returned message. Acquiring a
// worker slot blocks, so a saturated pool also throttles receiving.
func (c *Consumer) poll() {
	output, err := c.sqsClient.ReceiveMessageWithContext(c.ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(c.queueURL),
		MaxNumberOfMessages:   aws.Int64(int64(c.config.BatchSize)),
		WaitTimeSeconds:       aws.Int64(int64(c.config.WaitSeconds)),
		MessageAttributeNames: []*string{aws.String(domain.TraceHeaderAttribute)},
	})
	if err != nil {
		if c.ctx.Err() != nil {
			return
		}
		c.logger.Error(fmt.Sprintf("Failed to receive messages from %s: %v", c.name, err))
		select {
		case <-c.ctx.Done():
		case <-time.After(receiveBackoff):
		}
		return
	}

	for _, message := range output.Messages {
		if err := c.sem.Acquire(c.ctx, 1); err != nil {
			return
		}

		c.wg.Add(1)
		go func(msg *sqs.Message) {
			defer c.wg.Done()
			defer c.sem.Release(1)
			c.process(msg)
		}(message)
	}
}

// process runs the handler for one message and deletes it on success. A
// panic is treated like a handler error so one poison message cannot take
// the process down.
func (c *Consumer) process(msg *sqs.Message) {
	var header string
	if attr, ok := msg.MessageAttributes[domain.TraceHeaderAttribute]; ok {
		header = aws.StringValue(attr.StringValue)
	}

	// codecov:ignore:start
	msgCtx, span := tracing.StartSpanWithRemoteParent(c.ctx, fmt.Sprintf("queue.%s.message", c.name), header)
	tracing.AddAttribute(msgCtx, "queue", c.name)
	tracing.AddAttribute(msgCtx, "messageId", aws.StringValue(msg.MessageId))
	// codecov:ignore:end

	err := c.handle(msgCtx, aws.StringValue(msg.Body))

	// codecov:ignore:start
	tracing.EndSpan(span, err)
	// codecov:ignore:end

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"queue":     c.name,
			"messageId": aws.StringValue(msg.MessageId),
		}).Warn(fmt.Sprintf("Message handling failed, leaving for redelivery: %v", err))
		return
	}

	if _, err := c.sqsClient.DeleteMessageWithContext(c.ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil && c.ctx.Err() == nil {
		c.logger.Error(fmt.Sprintf("Failed to delete message from %s: %v", c.name, err))
	}
}

func (c *Consumer) handle(ctx context.Context, body string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in message handler: %v", r)
		}
	}()

	return c.handler.Handle(ctx, body)
}
