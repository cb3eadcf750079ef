package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/google/uuid"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// historyBroadcast is the flat downstream view of a History row. Template
// variables stay out of the broadcast; consumers that need the rendered
// content fetch the row itself. Every broadcast carries a generated eventId
// distinct from the row id, so repeated publishes of the same row remain
// distinguishable.
type historyBroadcast struct {
	EventID             string     `json:"eventId"`
	ID                  string     `json:"id"`
	TraineeID           string     `json:"traineeId"`
	Channel             string     `json:"channel"`
	Contact             string     `json:"contact,omitempty"`
	Type                string     `json:"type"`
	TisReferenceType    string     `json:"tisReferenceType,omitempty"`
	TisReferenceID      string     `json:"tisReferenceId,omitempty"`
	TemplateName        string     `json:"templateName,omitempty"`
	TemplateVersion     string     `json:"templateVersion,omitempty"`
	SentAt              time.Time  `json:"sentAt"`
	ReadAt              *time.Time `json:"readAt,omitempty"`
	Status              string     `json:"status,omitempty"`
	StatusDetail        string     `json:"statusDetail,omitempty"`
	LatestStatusEventAt *time.Time `json:"latestStatusEventAt,omitempty"`
}

// deleteBroadcast marks a row as gone downstream.
type deleteBroadcast struct {
	EventID string `json:"eventId"`
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// EventPublisherService broadcasts History changes to the notifications
// topic. Downstream consumers are eventually consistent; a failed publish is
// logged and the local save stands.
type EventPublisherService struct {
	snsClient domain.SNSClient
	topicARN  string
	logger    logger.Logger
}

func NewEventPublisherService(snsClient domain.SNSClient, topicARN string, logger logger.Logger) *EventPublisherService {
	return &EventPublisherService{
		snsClient: snsClient,
		topicARN:  topicARN,
		logger:    logger,
	}
}

func (s *EventPublisherService) Publish(ctx context.Context, history *domain.History) error {
	broadcast := historyBroadcast{
		EventID:             uuid.New().String(),
		ID:                  history.ID,
		TraineeID:           history.Recipient.TraineeID,
		Channel:             string(history.Recipient.Channel),
		Contact:             history.Recipient.Contact,
		Type:                string(history.Type),
		TemplateName:        history.Template.Name,
		TemplateVersion:     history.Template.Version,
		SentAt:              history.SentAt,
		ReadAt:              history.ReadAt,
		Status:              string(history.Status),
		StatusDetail:        history.StatusDetail,
		LatestStatusEventAt: history.LatestStatusEventAt,
	}
	if history.TisReference != nil {
		broadcast.TisReferenceType = string(history.TisReference.Type)
		broadcast.TisReferenceID = history.TisReference.ID
	}

	return s.publish(ctx, history.ID, broadcast)
}

func (s *EventPublisherService) PublishDelete(ctx context.Context, id string) error {
	return s.publish(ctx, id, deleteBroadcast{
		EventID: uuid.New().String(),
		ID:      id,
		Deleted: true,
	})
}

func (s *EventPublisherService) publish(ctx context.Context, id string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast for notification %s: %w", id, err)
	}

	_, err = s.snsClient.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		s.logger.WithField("notificationId", id).
			Error(fmt.Sprintf("Failed to publish notification event: %v", err))
		return fmt.Errorf("failed to publish notification %s: %w", id, err)
	}
	return nil
}
