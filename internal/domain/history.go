package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_history.go -package mocks github.com/TraineeHub/notify/internal/domain HistoryRepository,HistoryService

// MessageChannel is the delivery channel of a notification.
type MessageChannel string

const (
	ChannelEmail MessageChannel = "EMAIL"
	ChannelInApp MessageChannel = "IN_APP"
)

// NotificationStatus is the lifecycle state of a History row.
type NotificationStatus string

const (
	StatusScheduled NotificationStatus = "SCHEDULED"
	StatusPending   NotificationStatus = "PENDING"
	StatusSent      NotificationStatus = "SENT"
	StatusFailed    NotificationStatus = "FAILED"
	StatusRead      NotificationStatus = "READ"
	StatusArchived  NotificationStatus = "ARCHIVED"
	StatusUnread    NotificationStatus = "UNREAD"
	StatusDeleted   NotificationStatus = "DELETED"
)

// validStatuses is the status set allowed per channel. Provider feedback can
// only move email rows between the email states; in-app rows have their own
// read/archive lifecycle.
var validStatuses = map[MessageChannel]map[NotificationStatus]bool{
	ChannelEmail: {
		StatusScheduled: true,
		StatusPending:   true,
		StatusSent:      true,
		StatusFailed:    true,
	},
	ChannelInApp: {
		StatusScheduled: true,
		StatusUnread:    true,
		StatusRead:      true,
		StatusArchived:  true,
	},
}

// ValidFor reports whether the status is allowed for the given channel.
func (s NotificationStatus) ValidFor(channel MessageChannel) bool {
	return validStatuses[channel][s]
}

// TisReferenceType identifies the kind of upstream entity a notification
// refers to.
type TisReferenceType string

const (
	ReferenceProgrammeMembership TisReferenceType = "PROGRAMME_MEMBERSHIP"
	ReferencePlacement           TisReferenceType = "PLACEMENT"
	ReferenceLtft                TisReferenceType = "LTFT"
	ReferenceForm                TisReferenceType = "FORM"
	ReferenceGmc                 TisReferenceType = "GMC"
)

// TisReference is a typed pointer to the business entity that triggered a
// notification.
type TisReference struct {
	Type TisReferenceType `bson:"type" json:"type"`
	ID   string           `bson:"id" json:"id"`
}

// NewTisReference builds a reference value.
func NewTisReference(refType TisReferenceType, id string) *TisReference {
	return &TisReference{Type: refType, ID: id}
}

// RecipientInfo identifies who a notification was addressed to and how.
type RecipientInfo struct {
	TraineeID string         `bson:"id" json:"id"`
	Channel   MessageChannel `bson:"type" json:"type"`
	Contact   string         `bson:"contact" json:"contact"`
}

// TemplateInfo records the template used to render a notification, so that
// resends can re-render the exact same content.
type TemplateInfo struct {
	Name      string                 `bson:"name" json:"name"`
	Version   string                 `bson:"version" json:"version"`
	Variables map[string]interface{} `bson:"variables,omitempty" json:"variables,omitempty"`
}

// Attachment points at an object-store file attached to an email.
type Attachment struct {
	Bucket string `bson:"bucket" json:"bucket"`
	Key    string `bson:"key" json:"key"`
}

// History is the durable record of a scheduled, sent, failed or read
// notification. SentAt is the scheduled send instant; for future dated
// in-app rows it is a planned time and the row stays SCHEDULED until then.
type History struct {
	ID                  string              `bson:"_id,omitempty" json:"id"`
	TisReference        *TisReference       `bson:"tisReference,omitempty" json:"tisReference,omitempty"`
	Type                NotificationKind    `bson:"type" json:"type"`
	Recipient           RecipientInfo       `bson:"recipient" json:"recipient"`
	Template            TemplateInfo        `bson:"template" json:"template"`
	Attachments         []Attachment        `bson:"attachments,omitempty" json:"attachments,omitempty"`
	SentAt              time.Time           `bson:"sentAt" json:"sentAt"`
	ReadAt              *time.Time          `bson:"readAt,omitempty" json:"readAt,omitempty"`
	Status              NotificationStatus  `bson:"status,omitempty" json:"status,omitempty"`
	StatusDetail        string              `bson:"statusDetail,omitempty" json:"statusDetail,omitempty"`
	LatestStatusEventAt *time.Time          `bson:"latestStatusEventAt,omitempty" json:"latestStatusEventAt,omitempty"`
	LastRetry           *time.Time          `bson:"lastRetry,omitempty" json:"lastRetry,omitempty"`
}

// Validate checks the row is storable: recipient, kind and a status legal
// for the recipient channel.
func (h *History) Validate() error {
	if h.Recipient.TraineeID == "" {
		return NewValidationError("recipient id is required")
	}
	if h.Type == "" {
		return NewValidationError("notification type is required")
	}
	if h.Recipient.Channel != ChannelEmail && h.Recipient.Channel != ChannelInApp {
		return NewValidationError("recipient channel must be EMAIL or IN_APP")
	}
	if h.Status != "" && !h.Status.ValidFor(h.Recipient.Channel) {
		return &InvalidStatusTransitionError{Channel: h.Recipient.Channel, Status: h.Status}
	}
	return nil
}

// HistoryRepository is the persistence contract for History rows. The store
// is side-effect free; broadcasting changes is the caller's job.
type HistoryRepository interface {
	// Save inserts or fully replaces a row. A blank id is generated and the
	// effective id is returned.
	Save(ctx context.Context, history *History) (string, error)
	FindByID(ctx context.Context, id string) (*History, error)
	FindByIDAndRecipient(ctx context.Context, id, traineeID string) (*History, error)
	// FindAllByRecipient returns the recipient's rows newest first.
	FindAllByRecipient(ctx context.Context, traineeID string) ([]*History, error)
	FindAllByRecipientAndStatus(ctx context.Context, traineeID string, status NotificationStatus) ([]*History, error)
	// DeleteByIDAndRecipient reports whether a row was removed.
	DeleteByIDAndRecipient(ctx context.Context, id, traineeID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status NotificationStatus, detail string) error
	// UpdateStatusIfNewer applies the update only when the row's
	// latestStatusEventAt is unset or not after eventAt, and returns the
	// number of rows modified.
	UpdateStatusIfNewer(ctx context.Context, id string, eventAt time.Time, status NotificationStatus, detail string) (int64, error)
	UpdateReadAt(ctx context.Context, id string, status NotificationStatus, readAt *time.Time) error
	FindIDsByStatusSentAtOrBefore(ctx context.Context, status NotificationStatus, at time.Time) ([]string, error)
	// FindLatestPerKind returns the most recent row per kind for the
	// recipient and reference, restricted to the given kinds.
	FindLatestPerKind(ctx context.Context, traineeID string, ref TisReference, kinds []NotificationKind) (map[NotificationKind]*History, error)
	// FindScheduledEmail returns the SCHEDULED email row for the tuple, or
	// nil when none exists.
	FindScheduledEmail(ctx context.Context, traineeID string, ref TisReference, kind NotificationKind) (*History, error)
	DeleteScheduledByRecipientAndRef(ctx context.Context, traineeID string, ref TisReference) (int64, error)
	// DeleteScheduledExcept garbage-collects stale SCHEDULED rows for the
	// tuple, keeping the row with keepID.
	DeleteScheduledExcept(ctx context.Context, traineeID string, ref TisReference, kind NotificationKind, keepID string) (int64, error)

	// Bulk operations used by the one-shot repair jobs.
	DeleteAllByTypes(ctx context.Context, kinds []string) (int64, error)
	DeleteAllByStatusBefore(ctx context.Context, status NotificationStatus, before time.Time) (int64, error)
	RewriteType(ctx context.Context, from, to string) (int64, error)
	BackfillMissingStatus(ctx context.Context, status NotificationStatus) (int64, error)
	FindAllIDs(ctx context.Context) ([]string, error)
	FindAllByStatusAndSentAtBetween(ctx context.Context, status NotificationStatus, from, to time.Time) ([]*History, error)
}

// HistoryService owns the History lifecycle: validation against the status
// matrix, the read/archive transitions for in-app rows, deletes keyed by
// recipient, and broadcasting every successful mutation.
type HistoryService interface {
	Save(ctx context.Context, history *History) (*History, error)
	FindByID(ctx context.Context, id string) (*History, error)
	FindAllForTrainee(ctx context.Context, traineeID string) ([]*History, error)
	FindAllForTraineeWithStatus(ctx context.Context, traineeID string, status NotificationStatus) ([]*History, error)
	UpdateStatus(ctx context.Context, id string, status NotificationStatus, detail string) error
	// UpdateStatusIfNewer reports whether the update was applied; stale
	// events return false with no error.
	UpdateStatusIfNewer(ctx context.Context, id string, eventAt time.Time, status NotificationStatus, detail string) (bool, error)
	// MarkRead transitions UNREAD to READ, setting readAt when unset.
	MarkRead(ctx context.Context, id, traineeID string) (*History, error)
	// Archive transitions UNREAD or READ to ARCHIVED.
	Archive(ctx context.Context, id, traineeID string) (*History, error)
	Delete(ctx context.Context, id, traineeID string) error
	// Rebroadcast republishes rows by id to the notifications topic.
	Rebroadcast(ctx context.Context, ids []string) error
}
