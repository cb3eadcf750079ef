package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
)

func TestEmailEvent_NotificationID(t *testing.T) {
	event := domain.EmailEvent{
		Mail: domain.EmailEventMail{
			Headers: []domain.EmailEventHeader{
				{Name: "Message-ID", Value: "<abc@mail>"},
				{Name: "NotificationId", Value: "68005de0a321e5ca44f08a35"},
			},
		},
	}

	assert.Equal(t, "68005de0a321e5ca44f08a35", event.NotificationID())
}

func TestEmailEvent_NotificationIDMissing(t *testing.T) {
	event := domain.EmailEvent{
		Mail: domain.EmailEventMail{
			Headers: []domain.EmailEventHeader{
				{Name: "Message-ID", Value: "<abc@mail>"},
			},
		},
	}

	assert.Equal(t, "", event.NotificationID())
}

func TestEmailEvent_StatusUpdate(t *testing.T) {
	bounceAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	complaintAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	deliveredAt := time.Date(2025, 7, 1, 8, 59, 0, 0, time.UTC)

	tests := []struct {
		name       string
		event      domain.EmailEvent
		wantStatus domain.NotificationStatus
		wantDetail string
		wantAt     time.Time
		wantErr    bool
	}{
		{
			name: "bounce",
			event: domain.EmailEvent{
				NotificationType: domain.EmailEventTypeBounce,
				Bounce: &domain.EmailEventBounce{
					BounceType:    "Permanent",
					BounceSubType: "General",
					Timestamp:     bounceAt,
				},
			},
			wantStatus: domain.StatusFailed,
			wantDetail: "Bounce: Permanent - General",
			wantAt:     bounceAt,
		},
		{
			name: "complaint",
			event: domain.EmailEvent{
				NotificationType: domain.EmailEventTypeComplaint,
				Complaint: &domain.EmailEventComplaint{
					ComplaintFeedbackType: "abuse",
					Timestamp:             complaintAt,
				},
			},
			wantStatus: domain.StatusFailed,
			wantDetail: "Complaint: abuse",
			wantAt:     complaintAt,
		},
		{
			name: "delivery",
			event: domain.EmailEvent{
				NotificationType: domain.EmailEventTypeDelivery,
				Delivery:         &domain.EmailEventDelivery{Timestamp: deliveredAt},
			},
			wantStatus: domain.StatusSent,
			wantDetail: "",
			wantAt:     deliveredAt,
		},
		{
			name:    "bounce without detail",
			event:   domain.EmailEvent{NotificationType: domain.EmailEventTypeBounce},
			wantErr: true,
		},
		{
			name:    "unsupported type",
			event:   domain.EmailEvent{NotificationType: "Open"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail, at, err := tt.event.StatusUpdate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
			assert.Equal(t, tt.wantAt, at)
		})
	}
}

func TestEmailEvent_Unmarshal(t *testing.T) {
	payload := `{
		"notificationType": "Bounce",
		"mail": {
			"timestamp": "2025-07-01T08:58:00Z",
			"messageId": "0100019",
			"source": "no-reply@tss.nhs.uk",
			"destination": ["trainee@example.com"],
			"headers": [
				{"name": "NotificationId", "value": "68005de0a321e5ca44f08a35"}
			]
		},
		"bounce": {
			"bounceType": "Permanent",
			"bounceSubType": "Suppressed",
			"timestamp": "2025-07-01T09:00:00Z"
		}
	}`

	var event domain.EmailEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "Bounce", event.NotificationType)
	assert.Equal(t, "68005de0a321e5ca44f08a35", event.NotificationID())
	require.NotNil(t, event.Bounce)
	assert.Equal(t, "Permanent", event.Bounce.BounceType)
	assert.Nil(t, event.Complaint)
	assert.Nil(t, event.Delivery)
}
