package service

import (
	"context"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// FormService records FormR lifecycle changes as in-app notifications.
type FormService struct {
	inAppSender domain.InAppSender
	logger      logger.Logger
}

func NewFormService(inAppSender domain.InAppSender, logger logger.Logger) *FormService {
	return &FormService{
		inAppSender: inAppSender,
		logger:      logger,
	}
}

// HandleUpdate writes a FORM_UPDATED row referencing the form by name.
func (s *FormService) HandleUpdate(ctx context.Context, event *domain.FormUpdatedEvent) error {
	if event.TraineeID == "" {
		return domain.ErrMissingTraineeID
	}
	if event.FormName == "" {
		return domain.NewValidationError("form name is required")
	}

	variables := map[string]interface{}{
		"formName":       event.FormName,
		"formType":       event.FormType,
		"lifecycleState": event.LifecycleState,
	}
	if event.UpdatedAt != nil {
		variables["eventDate"] = *event.UpdatedAt
	}

	ref := domain.NewTisReference(domain.ReferenceForm, event.FormName)
	if err := s.inAppSender.CreateNotifications(ctx, event.TraineeID, ref, domain.KindFormUpdated, variables, false, nil); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"traineeId": event.TraineeID,
		"formName":  event.FormName,
		"state":     event.LifecycleState,
	}).Info("Form update notification created")
	return nil
}
