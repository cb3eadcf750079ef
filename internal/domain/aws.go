package domain

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sqs"
)

//go:generate mockgen -destination mocks/mock_aws.go -package mocks github.com/TraineeHub/notify/internal/domain SQSClient,SNSClient,S3Client

// TraceHeaderAttribute is the SQS message attribute carrying the serialised
// parent span context across queue hops.
const TraceHeaderAttribute = "TraceHeader"

// SQSClient defines the interface for interacting with AWS SQS queues
type SQSClient interface {
	ReceiveMessageWithContext(ctx aws.Context, input *sqs.ReceiveMessageInput, opts ...request.Option) (*sqs.ReceiveMessageOutput, error)
	DeleteMessageWithContext(ctx aws.Context, input *sqs.DeleteMessageInput, opts ...request.Option) (*sqs.DeleteMessageOutput, error)
	SendMessageBatchWithContext(ctx aws.Context, input *sqs.SendMessageBatchInput, opts ...request.Option) (*sqs.SendMessageBatchOutput, error)
}

// SNSClient defines the interface for interacting with AWS SNS topics
type SNSClient interface {
	PublishWithContext(ctx aws.Context, input *sns.PublishInput, opts ...request.Option) (*sns.PublishOutput, error)
}

// S3Client defines the interface for the attachment object store
type S3Client interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}
