package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// NotificationExecutorService fires scheduled milestone notifications. It
// resolves the recipient at fire time rather than planning time, so address
// changes between the two are picked up automatically.
type NotificationExecutorService struct {
	recipientService domain.RecipientService
	emailSender      domain.EmailSender
	logger           logger.Logger
}

func NewNotificationExecutorService(recipientService domain.RecipientService, emailSender domain.EmailSender, logger logger.Logger) *NotificationExecutorService {
	return &NotificationExecutorService{
		recipientService: recipientService,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// Execute sends the notification described by the job data and returns a
// short audit string. A trainee with no directory account is logged and
// skipped; the job is consumed, not retried.
func (s *NotificationExecutorService) Execute(ctx context.Context, jobID string, data domain.JobData) (string, error) {
	// codecov:ignore:start
	ctx, span := tracing.StartServiceSpan(ctx, "NotificationExecutorService", "Execute")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "jobId", jobID)
	// codecov:ignore:end

	variables := make(map[string]interface{}, len(data.Variables)+8)
	for key, value := range data.Variables {
		variables[key] = value
	}

	justLog := false
	switch {
	case data.Programme != nil:
		putIfAbsent(variables, "programmeName", data.Programme.ProgrammeName)
		putIfAbsent(variables, "startDate", data.Programme.StartDate.Time)
	case data.Placement != nil:
		putIfAbsent(variables, "startDate", data.Placement.StartDate.Time)
		putIfAbsent(variables, "placementType", data.Placement.PlacementType)
		putIfAbsent(variables, "specialty", data.Placement.Specialty)
		putIfAbsent(variables, "owner", data.Placement.Owner)
		justLog = !s.isInPilot(data.Placement.Owner, data.Placement.Specialty, data.Placement.StartDate)
	default:
		return "", fmt.Errorf("job %s has no programme or placement payload", jobID)
	}

	recipient, err := s.recipientService.Resolve(ctx, data.TraineeID)
	if err != nil {
		var ambiguous *domain.AmbiguousAccountError
		if errors.Is(err, domain.ErrNoAccount) || errors.As(err, &ambiguous) {
			s.logger.WithFields(map[string]interface{}{
				"jobId":     jobID,
				"traineeId": data.TraineeID,
			}).Warn(fmt.Sprintf("No usable account for trainee, skipping notification: %v", err))
			return "no-contact", nil
		}
		return "", fmt.Errorf("failed to resolve recipient for job %s: %w", jobID, err)
	}

	putIfAbsent(variables, "email", recipient.Email)
	putIfAbsent(variables, "givenName", recipient.GivenName)
	putIfAbsent(variables, "familyName", recipient.FamilyName)
	putIfAbsent(variables, "title", recipient.Title)
	putIfAbsent(variables, "gmcNumber", recipient.GmcNumber)
	putIfAbsent(variables, "isRegistered", recipient.IsRegistered)

	err = s.emailSender.SendMessage(ctx, data.TraineeID, recipient.Email, data.Kind, data.Reference(), variables, nil, justLog)
	if err != nil {
		// codecov:ignore:start
		tracing.MarkSpanError(ctx, err)
		// codecov:ignore:end
		return "", err
	}

	return fmt.Sprintf("sent %s", time.Now().UTC().Format(time.RFC3339)), nil
}

// isInPilot reports whether a placement cohort receives direct emails. The
// phased rollout has completed, so every cohort is in scope; the hook stays
// as the seam for gating the next pilot.
func (s *NotificationExecutorService) isInPilot(owner, specialty string, startDate domain.ISODate) bool {
	return true
}

// putIfAbsent sets a variable only when the planner has not already set it.
func putIfAbsent(variables map[string]interface{}, key string, value interface{}) {
	if _, exists := variables[key]; !exists {
		variables[key] = value
	}
}
