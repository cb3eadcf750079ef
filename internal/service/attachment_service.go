package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// AttachmentService downloads email attachments from the object store.
type AttachmentService struct {
	s3Client domain.S3Client
	logger   logger.Logger
}

func NewAttachmentService(s3Client domain.S3Client, logger logger.Logger) *AttachmentService {
	return &AttachmentService{
		s3Client: s3Client,
		logger:   logger,
	}
}

// Download fetches one object. The filename is the last path segment of the
// key; the content type comes from the object metadata and falls back to
// application/octet-stream.
func (s *AttachmentService) Download(ctx context.Context, attachment domain.Attachment) (*domain.AttachmentContent, error) {
	output, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(attachment.Bucket),
		Key:    aws.String(attachment.Key),
	})
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to download attachment %s/%s: %v", attachment.Bucket, attachment.Key, err))
		return nil, fmt.Errorf("failed to download attachment %s/%s: %w", attachment.Bucket, attachment.Key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %s/%s: %w", attachment.Bucket, attachment.Key, err)
	}

	contentType := "application/octet-stream"
	if output.ContentType != nil && *output.ContentType != "" {
		contentType = *output.ContentType
	}

	return &domain.AttachmentContent{
		Filename:    path.Base(attachment.Key),
		ContentType: contentType,
		Data:        data,
	}, nil
}
