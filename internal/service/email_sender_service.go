package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// EmailSenderService renders and dispatches email notifications. Every
// delivery decision is recorded as a History row, including the decision not
// to send because the trainee has no address.
type EmailSenderService struct {
	templates      domain.TemplateRenderer
	transport      domain.EmailTransport
	objectStore    domain.ObjectStore
	historyService domain.HistoryService
	historyRepo    domain.HistoryRepository
	enabled        bool
	logger         logger.Logger
}

func NewEmailSenderService(
	templates domain.TemplateRenderer,
	transport domain.EmailTransport,
	objectStore domain.ObjectStore,
	historyService domain.HistoryService,
	historyRepo domain.HistoryRepository,
	enabled bool,
	logger logger.Logger,
) *EmailSenderService {
	return &EmailSenderService{
		templates:      templates,
		transport:      transport,
		objectStore:    objectStore,
		historyService: historyService,
		historyRepo:    historyRepo,
		enabled:        enabled,
		logger:         logger,
	}
}

// SendMessage renders the kind's email template and dispatches it. The row
// id of an existing SCHEDULED notification for the same tuple is reused so
// the plan is replaced in place; other stale SCHEDULED rows are removed
// after the save. A missing address records a FAILED row and returns nil; a
// transport failure returns an error without writing a row so the inbound
// event is retried.
func (s *EmailSenderService) SendMessage(ctx context.Context, traineeID, email string, kind domain.NotificationKind, ref *domain.TisReference, variables map[string]interface{}, attachments []domain.Attachment, justLog bool) error {
	// codecov:ignore:start
	ctx, span := tracing.StartServiceSpan(ctx, "EmailSenderService", "SendMessage")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "traineeId", traineeID)
	tracing.AddAttribute(ctx, "notificationType", string(kind))
	// codecov:ignore:end

	if !s.enabled {
		s.logger.WithField("traineeId", traineeID).Info(fmt.Sprintf("Email notifications disabled, skipping %s", kind))
		return nil
	}

	version, err := s.templates.Version(kind, domain.ChannelEmail)
	if err != nil {
		return err
	}

	vars := make(map[string]interface{}, len(variables)+1)
	for key, value := range variables {
		vars[key] = value
	}
	vars["hashedEmail"] = hashEmail(email)

	id := primitive.NewObjectID().Hex()
	if ref != nil {
		scheduled, err := s.historyRepo.FindScheduledEmail(ctx, traineeID, *ref, kind)
		if err != nil {
			return fmt.Errorf("failed to look up scheduled notification: %w", err)
		}
		if scheduled != nil {
			id = scheduled.ID
		}
	}

	history := &domain.History{
		ID:           id,
		TisReference: ref,
		Type:         kind,
		Recipient: domain.RecipientInfo{
			TraineeID: traineeID,
			Channel:   domain.ChannelEmail,
			Contact:   email,
		},
		Template: domain.TemplateInfo{
			Name:      string(kind),
			Version:   version,
			Variables: vars,
		},
		Attachments: attachments,
		SentAt:      time.Now().UTC(),
	}

	if email == "" {
		s.logger.WithField("traineeId", traineeID).Warn(fmt.Sprintf("No email address for %s notification, recording failure", kind))
		history.Status = domain.StatusFailed
		history.StatusDetail = domain.NoEmailAddressDetail
		if _, err := s.historyService.Save(ctx, history); err != nil {
			return err
		}
		s.cleanUpScheduled(ctx, traineeID, ref, kind, id)
		return nil
	}

	templatePath := s.templates.GetTemplatePath(domain.ChannelEmail, kind, version)
	subject, err := s.templates.Process(ctx, templatePath, []string{domain.TemplateBlockSubject}, vars)
	if err != nil {
		return fmt.Errorf("failed to render subject for %s: %w", kind, err)
	}
	content, err := s.templates.Process(ctx, templatePath, []string{domain.TemplateBlockContent}, vars)
	if err != nil {
		return fmt.Errorf("failed to render content for %s: %w", kind, err)
	}

	downloaded, err := s.downloadAttachments(ctx, attachments)
	if err != nil {
		return err
	}

	message := &domain.EmailMessage{
		NotificationID: id,
		To:             email,
		Subject:        subject,
		Body:           content,
		Attachments:    downloaded,
	}

	if justLog {
		s.logger.WithFields(map[string]interface{}{
			"traineeId": traineeID,
			"type":      string(kind),
		}).Info("Email dispatch suppressed by policy, logging only")
	} else if err := s.transport.Send(ctx, message); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to send %s email to trainee %s: %v", kind, traineeID, err))
		// codecov:ignore:start
		tracing.MarkSpanError(ctx, err)
		// codecov:ignore:end
		return fmt.Errorf("failed to send email: %w", err)
	}

	history.Status = domain.StatusPending
	if _, err := s.historyService.Save(ctx, history); err != nil {
		return err
	}
	s.cleanUpScheduled(ctx, traineeID, ref, kind, id)
	return nil
}

// Resend re-renders a previously failed message from its stored template and
// variables and dispatches it to the new address. The original row id is
// kept so the delivery record stays a single row.
func (s *EmailSenderService) Resend(ctx context.Context, history *domain.History, newEmail string) error {
	if !s.enabled {
		s.logger.WithField("traineeId", history.Recipient.TraineeID).Info("Email notifications disabled, skipping resend")
		return nil
	}

	kind := domain.NotificationKind(history.Template.Name)
	templatePath := s.templates.GetTemplatePath(domain.ChannelEmail, kind, history.Template.Version)

	vars := make(map[string]interface{}, len(history.Template.Variables)+2)
	for key, value := range history.Template.Variables {
		vars[key] = value
	}
	vars["originallySentOn"] = history.SentAt
	vars["hashedEmail"] = hashEmail(newEmail)

	subject, err := s.templates.Process(ctx, templatePath, []string{domain.TemplateBlockSubject}, vars)
	if err != nil {
		return fmt.Errorf("failed to render subject for %s: %w", kind, err)
	}
	content, err := s.templates.Process(ctx, templatePath, []string{domain.TemplateBlockContent}, vars)
	if err != nil {
		return fmt.Errorf("failed to render content for %s: %w", kind, err)
	}

	downloaded, err := s.downloadAttachments(ctx, history.Attachments)
	if err != nil {
		return err
	}

	message := &domain.EmailMessage{
		NotificationID: history.ID,
		To:             newEmail,
		Subject:        subject,
		Body:           content,
		Attachments:    downloaded,
	}
	if err := s.transport.Send(ctx, message); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to resend %s email to trainee %s: %v", kind, history.Recipient.TraineeID, err))
		return fmt.Errorf("failed to resend email: %w", err)
	}

	now := time.Now().UTC()
	updated := *history
	updated.Recipient.Contact = newEmail
	updated.Template.Variables = vars
	updated.Status = domain.StatusPending
	updated.StatusDetail = ""
	updated.LastRetry = &now

	if _, err := s.historyService.Save(ctx, &updated); err != nil {
		return err
	}
	return nil
}

// downloadAttachments fetches every attachment concurrently, preserving the
// input order in the result.
func (s *EmailSenderService) downloadAttachments(ctx context.Context, attachments []domain.Attachment) ([]domain.AttachmentContent, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	downloaded := make([]domain.AttachmentContent, len(attachments))
	g, ctx := errgroup.WithContext(ctx)
	for i, attachment := range attachments {
		g.Go(func() error {
			content, err := s.objectStore.Download(ctx, attachment)
			if err != nil {
				return err
			}
			downloaded[i] = *content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return downloaded, nil
}

// cleanUpScheduled removes stale SCHEDULED rows for the tuple. The send has
// already happened, so failures are logged rather than returned.
func (s *EmailSenderService) cleanUpScheduled(ctx context.Context, traineeID string, ref *domain.TisReference, kind domain.NotificationKind, keepID string) {
	if ref == nil {
		return
	}
	if _, err := s.historyRepo.DeleteScheduledExcept(ctx, traineeID, *ref, kind, keepID); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to clean up scheduled notifications for trainee %s: %v", traineeID, err))
	}
}

// hashEmail returns the lowercase hex MD5 of the address, matching the hash
// the front end uses for avatar lookups. An empty address hashes to the
// 32-zero fallback.
func hashEmail(email string) string {
	if email == "" {
		return domain.HashedEmailFallback
	}
	sum := md5.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}
