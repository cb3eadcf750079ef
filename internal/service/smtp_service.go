package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// SMTPService delivers rendered messages over SMTP. A client is dialled per
// send; the provider holds no persistent connection.
type SMTPService struct {
	cfg    config.SMTPConfig
	logger logger.Logger
}

func NewSMTPService(cfg config.SMTPConfig, logger logger.Logger) *SMTPService {
	return &SMTPService{
		cfg:    cfg,
		logger: logger,
	}
}

// Send dispatches one message. The History row id travels in the
// NotificationId header so provider feedback can be correlated.
func (s *SMTPService) Send(ctx context.Context, message *domain.EmailMessage) error {
	msg, err := s.buildMessage(message)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(
		s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *SMTPService) buildMessage(message *domain.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.FromName, s.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("invalid recipient email: %w", err)
	}
	msg.Subject(message.Subject)
	msg.SetGenHeader(mail.Header(domain.NotificationIDHeader), message.NotificationID)
	msg.SetBodyString(mail.TypeTextHTML, message.Body)

	for _, attachment := range message.Attachments {
		err := msg.AttachReader(attachment.Filename, bytes.NewReader(attachment.Data),
			mail.WithFileContentType(mail.ContentType(attachment.ContentType)))
		if err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", attachment.Filename, err)
		}
	}

	return msg, nil
}
