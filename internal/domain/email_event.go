package domain

import (
	"fmt"
	"time"
)

// NotificationIDHeader is the MIME header stamped on every outbound email so
// provider feedback can be matched back to its History row.
const NotificationIDHeader = "NotificationId"

// EmailEventHeader is one header of the original mail as echoed back by the
// provider.
type EmailEventHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EmailEventMail is the mail part of a provider feedback event.
type EmailEventMail struct {
	Timestamp   time.Time          `json:"timestamp"`
	MessageID   string             `json:"messageId"`
	Source      string             `json:"source"`
	Destination []string           `json:"destination"`
	Headers     []EmailEventHeader `json:"headers"`
}

// EmailEventBounce describes a bounced delivery attempt.
type EmailEventBounce struct {
	BounceType    string    `json:"bounceType"`
	BounceSubType string    `json:"bounceSubType"`
	Timestamp     time.Time `json:"timestamp"`
}

// EmailEventComplaint describes a recipient complaint (spam report).
type EmailEventComplaint struct {
	ComplaintFeedbackType string    `json:"complaintFeedbackType"`
	Timestamp             time.Time `json:"timestamp"`
}

// EmailEventDelivery confirms the provider handed the mail to the recipient
// server.
type EmailEventDelivery struct {
	Timestamp time.Time `json:"timestamp"`
}

// Email event notification types as sent by the provider.
const (
	EmailEventTypeBounce    = "Bounce"
	EmailEventTypeComplaint = "Complaint"
	EmailEventTypeDelivery  = "Delivery"
)

// EmailEvent is a provider feedback event from the email-event queue.
// Exactly one of Bounce, Complaint and Delivery is populated, selected by
// NotificationType.
type EmailEvent struct {
	NotificationType string               `json:"notificationType"`
	Mail             EmailEventMail       `json:"mail"`
	Bounce           *EmailEventBounce    `json:"bounce,omitempty"`
	Complaint        *EmailEventComplaint `json:"complaint,omitempty"`
	Delivery         *EmailEventDelivery  `json:"delivery,omitempty"`
}

// NotificationID scans the mail headers for the NotificationId header. Empty
// when the mail was not sent by this service.
func (e *EmailEvent) NotificationID() string {
	for _, h := range e.Mail.Headers {
		if h.Name == NotificationIDHeader {
			return h.Value
		}
	}
	return ""
}

// StatusUpdate derives the History status transition this event maps to:
// the new status, the human-readable detail, and the event instant used for
// the monotonicity gate.
func (e *EmailEvent) StatusUpdate() (NotificationStatus, string, time.Time, error) {
	switch e.NotificationType {
	case EmailEventTypeBounce:
		if e.Bounce == nil {
			return "", "", time.Time{}, fmt.Errorf("bounce event without bounce detail")
		}
		detail := fmt.Sprintf("Bounce: %s - %s", e.Bounce.BounceType, e.Bounce.BounceSubType)
		return StatusFailed, detail, e.Bounce.Timestamp, nil
	case EmailEventTypeComplaint:
		if e.Complaint == nil {
			return "", "", time.Time{}, fmt.Errorf("complaint event without complaint detail")
		}
		detail := fmt.Sprintf("Complaint: %s", e.Complaint.ComplaintFeedbackType)
		return StatusFailed, detail, e.Complaint.Timestamp, nil
	case EmailEventTypeDelivery:
		if e.Delivery == nil {
			return "", "", time.Time{}, fmt.Errorf("delivery event without delivery detail")
		}
		return StatusSent, "", e.Delivery.Timestamp, nil
	default:
		return "", "", time.Time{}, fmt.Errorf("unsupported email event type: %s", e.NotificationType)
	}
}
