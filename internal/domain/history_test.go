package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TraineeHub/notify/internal/domain"
)

func TestHistory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		history domain.History
		wantErr bool
	}{
		{
			name: "valid email row",
			history: domain.History{
				Type: domain.KindProgrammeUpdatedWeek8,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelEmail,
					Contact:   "trainee@example.com",
				},
				Status: domain.StatusScheduled,
			},
			wantErr: false,
		},
		{
			name: "valid in-app row",
			history: domain.History{
				Type: domain.KindEPortfolio,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelInApp,
				},
				Status: domain.StatusUnread,
			},
			wantErr: false,
		},
		{
			name: "status left for the store to default",
			history: domain.History{
				Type: domain.KindWelcome,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelInApp,
				},
			},
			wantErr: false,
		},
		{
			name: "missing recipient id",
			history: domain.History{
				Type: domain.KindProgrammeUpdatedWeek8,
				Recipient: domain.RecipientInfo{
					Channel: domain.ChannelEmail,
				},
			},
			wantErr: true,
		},
		{
			name: "missing notification type",
			history: domain.History{
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelEmail,
				},
			},
			wantErr: true,
		},
		{
			name: "unknown channel",
			history: domain.History{
				Type: domain.KindProgrammeUpdatedWeek8,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   "SMS",
				},
			},
			wantErr: true,
		},
		{
			name: "read status on an email row",
			history: domain.History{
				Type: domain.KindProgrammeUpdatedWeek8,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelEmail,
				},
				Status: domain.StatusRead,
			},
			wantErr: true,
		},
		{
			name: "pending status on an in-app row",
			history: domain.History{
				Type: domain.KindEPortfolio,
				Recipient: domain.RecipientInfo{
					TraineeID: "40",
					Channel:   domain.ChannelInApp,
				},
				Status: domain.StatusPending,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.history.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationStatus_ValidFor(t *testing.T) {
	emailStatuses := []domain.NotificationStatus{
		domain.StatusScheduled,
		domain.StatusPending,
		domain.StatusSent,
		domain.StatusFailed,
	}
	inAppStatuses := []domain.NotificationStatus{
		domain.StatusScheduled,
		domain.StatusUnread,
		domain.StatusRead,
		domain.StatusArchived,
	}

	for _, s := range emailStatuses {
		assert.True(t, s.ValidFor(domain.ChannelEmail), "email should allow %s", s)
	}
	for _, s := range inAppStatuses {
		assert.True(t, s.ValidFor(domain.ChannelInApp), "in-app should allow %s", s)
	}

	assert.False(t, domain.StatusUnread.ValidFor(domain.ChannelEmail))
	assert.False(t, domain.StatusRead.ValidFor(domain.ChannelEmail))
	assert.False(t, domain.StatusArchived.ValidFor(domain.ChannelEmail))
	assert.False(t, domain.StatusPending.ValidFor(domain.ChannelInApp))
	assert.False(t, domain.StatusSent.ValidFor(domain.ChannelInApp))
	assert.False(t, domain.StatusFailed.ValidFor(domain.ChannelInApp))
	assert.False(t, domain.StatusDeleted.ValidFor(domain.ChannelEmail))
}

func TestNewTisReference(t *testing.T) {
	ref := domain.NewTisReference(domain.ReferenceProgrammeMembership, "pm-123")
	assert.Equal(t, domain.ReferenceProgrammeMembership, ref.Type)
	assert.Equal(t, "pm-123", ref.ID)
}

func TestJobID(t *testing.T) {
	assert.Equal(t, "PROGRAMME_UPDATED_WEEK_8-pm-1",
		domain.JobID(domain.KindProgrammeUpdatedWeek8, "pm-1"))
	assert.Equal(t, "PLACEMENT_UPDATED_WEEK_12-pl-9",
		domain.JobID(domain.KindPlacementUpdatedWeek12, "pl-9"))
}

func TestMilestoneDaysBefore(t *testing.T) {
	// Every programme-update kind carries an anchor offset.
	for _, kind := range domain.ProgrammeUpdateKinds {
		_, ok := domain.MilestoneDaysBefore[kind]
		assert.True(t, ok, "missing offset for %s", kind)
	}

	assert.Equal(t, 56, domain.MilestoneDaysBefore[domain.KindProgrammeUpdatedWeek8])
	assert.Equal(t, 28, domain.MilestoneDaysBefore[domain.KindProgrammeUpdatedWeek4])
	assert.Equal(t, 7, domain.MilestoneDaysBefore[domain.KindProgrammeUpdatedWeek1])
	assert.Equal(t, 0, domain.MilestoneDaysBefore[domain.KindProgrammeUpdatedWeek0])
}
