package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// InAppService writes in-app notification rows. There is no transport; the
// row itself is the notification and the trainee's client renders it from
// the stored template reference and variables.
type InAppService struct {
	templates      domain.TemplateRenderer
	historyService domain.HistoryService
	enabled        bool
	logger         logger.Logger
}

func NewInAppService(templates domain.TemplateRenderer, historyService domain.HistoryService, enabled bool, logger logger.Logger) *InAppService {
	return &InAppService{
		templates:      templates,
		historyService: historyService,
		enabled:        enabled,
		logger:         logger,
	}
}

// CreateNotifications writes one row: UNREAD when due now, SCHEDULED when
// sentAt is in the future. Suppressed notifications are still written so
// reporting sees every planning decision.
func (s *InAppService) CreateNotifications(ctx context.Context, traineeID string, ref *domain.TisReference, kind domain.NotificationKind, variables map[string]interface{}, suppressSend bool, sentAt *time.Time) error {
	if !s.enabled {
		s.logger.WithField("traineeId", traineeID).Info(fmt.Sprintf("In-app notifications disabled, skipping %s", kind))
		return nil
	}

	version, err := s.templates.Version(kind, domain.ChannelInApp)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	status := domain.StatusUnread
	at := now
	if sentAt != nil {
		at = sentAt.UTC()
		if at.After(now) {
			status = domain.StatusScheduled
		}
	}

	if suppressSend {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": traineeID,
			"type":      string(kind),
		}).Info("In-app notification criteria not met, row recorded for reporting")
	}

	history := &domain.History{
		TisReference: ref,
		Type:         kind,
		Recipient: domain.RecipientInfo{
			TraineeID: traineeID,
			Channel:   domain.ChannelInApp,
		},
		Template: domain.TemplateInfo{
			Name:      string(kind),
			Version:   version,
			Variables: variables,
		},
		SentAt: at,
		Status: status,
	}

	if _, err := s.historyService.Save(ctx, history); err != nil {
		return err
	}
	return nil
}
