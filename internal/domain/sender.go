package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_sender.go -package mocks github.com/TraineeHub/notify/internal/domain EmailSender,InAppSender,EmailTransport,ObjectStore,EventPublisher,OutboxSender

// HashedEmailFallback substitutes for the hashedEmail template variable when
// there is no address to hash.
const HashedEmailFallback = "00000000000000000000000000000000"

// NoEmailAddressDetail is recorded on FAILED rows written because the
// recipient has no usable address. Recording the failure is first-class
// behaviour so that reporting sees every delivery decision.
const NoEmailAddressDetail = "No email address available."

// EmailMessage is a fully rendered email ready for transport.
type EmailMessage struct {
	NotificationID string
	To             string
	Subject        string
	Body           string
	Attachments    []AttachmentContent
}

// AttachmentContent is a downloaded object-store file.
type AttachmentContent struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EmailTransport delivers a rendered message over SMTP.
type EmailTransport interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// ObjectStore downloads attachment files by bucket and key.
type ObjectStore interface {
	Download(ctx context.Context, attachment Attachment) (*AttachmentContent, error)
}

// EmailSender renders and dispatches email notifications, recording every
// outcome as a History row.
type EmailSender interface {
	// SendMessage renders the kind's template with the variables, sends to
	// the recipient's address and writes the History row. A missing
	// address records FAILED instead of erroring; transport failures
	// return an error so the inbound event is retried.
	SendMessage(ctx context.Context, traineeID, email string, kind NotificationKind, ref *TisReference, variables map[string]interface{}, attachments []Attachment, justLog bool) error
	// Resend re-renders a previously failed message from its stored
	// template and variables and dispatches it to the new address, keeping
	// the original History id.
	Resend(ctx context.Context, history *History, newEmail string) error
}

// InAppSender writes in-app notification rows; there is no transport.
type InAppSender interface {
	// CreateNotifications writes a single row: UNREAD when due now, or
	// SCHEDULED when sentAt is in the future. The row is written even when
	// suppressSend is set so reporting stays consistent.
	CreateNotifications(ctx context.Context, traineeID string, ref *TisReference, kind NotificationKind, variables map[string]interface{}, suppressSend bool, sentAt *time.Time) error
}

// EventPublisher broadcasts a compact view of History changes to the
// downstream topic. Failures are logged, never rolled back.
type EventPublisher interface {
	Publish(ctx context.Context, history *History) error
	PublishDelete(ctx context.Context, id string) error
}

// OutboxSender batches notification ids onto the outbox queue for async
// rebroadcast.
type OutboxSender interface {
	// SendToOutbox chunks ids into batches and enqueues them, returning
	// the ids whose batch failed so the caller can retry.
	SendToOutbox(ctx context.Context, ids []string) []string
}
