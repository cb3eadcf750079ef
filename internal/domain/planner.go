package domain

import "context"

//go:generate mockgen -destination mocks/mock_planner.go -package mocks github.com/TraineeHub/notify/internal/domain ProgrammeMembershipHandler,PlacementHandler,LtftHandler,EmailEventHandler,ContactDetailsHandler,AccountHandler,CojHandler,FormHandler,GmcHandler

// ProgrammeMembershipHandler plans the notification set for a programme
// membership change.
type ProgrammeMembershipHandler interface {
	HandleUpdate(ctx context.Context, pm *ProgrammeMembership) error
	HandleDelete(ctx context.Context, personID, tisID string) error
}

// PlacementHandler plans the notification set for a placement change.
type PlacementHandler interface {
	HandleUpdate(ctx context.Context, placement *Placement) error
	HandleDelete(ctx context.Context, personID, tisID string) error
}

// LtftHandler sends LTFT transition notifications on the trainee and TPD
// channels.
type LtftHandler interface {
	HandleUpdate(ctx context.Context, event *LtftUpdateEvent) error
	HandleTpdUpdate(ctx context.Context, event *LtftUpdateEvent) error
}

// EmailEventHandler applies provider delivery feedback to notification
// statuses.
type EmailEventHandler interface {
	HandleEvent(ctx context.Context, event *EmailEvent) error
}

// ContactDetailsHandler retries failed sends against an updated address.
type ContactDetailsHandler interface {
	HandleUpdate(ctx context.Context, event *ContactDetailsUpdatedEvent) error
}

// AccountHandler reacts to identity directory events.
type AccountHandler interface {
	HandleConfirmed(ctx context.Context, event *AccountConfirmedEvent) error
	HandleUpdated(ctx context.Context, event *AccountUpdatedEvent) error
}

// CojHandler emails published Conditions of Joining documents.
type CojHandler interface {
	HandlePublished(ctx context.Context, event *CojPublishedEvent) error
}

// FormHandler records form lifecycle notifications.
type FormHandler interface {
	HandleUpdate(ctx context.Context, event *FormUpdatedEvent) error
}

// GmcHandler turns GMC registration outcomes into notifications.
type GmcHandler interface {
	HandleUpdate(ctx context.Context, event *GmcDetailsEvent) error
	HandleRejected(ctx context.Context, event *GmcDetailsEvent) error
}
