package domain

import "time"

// AccountConfirmedEvent signals that a trainee finished registering their
// user account.
type AccountConfirmedEvent struct {
	TraineeID  string `json:"traineeId"`
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	FamilyName string `json:"familyName"`
	GivenName  string `json:"givenName"`
}

// AccountUpdatedEvent signals that a trainee's sign-in email changed. Both
// the old and the new address are notified.
type AccountUpdatedEvent struct {
	TraineeID     string `json:"traineeId"`
	UserID        string `json:"userId"`
	PreviousEmail string `json:"previousEmail"`
	NewEmail      string `json:"newEmail"`
}

// CojPublishedEvent signals that a signed Conditions of Joining document was
// published to the object store.
type CojPublishedEvent struct {
	PersonID            string     `json:"personId"`
	ProgrammeMembership string     `json:"programmeMembershipTisId"`
	ProgrammeName       string     `json:"programmeName"`
	SignedAt            *time.Time `json:"signedAt,omitempty"`
	Pdf                 Attachment `json:"pdf"`
}

// ContactDetailsUpdatedEvent signals a trainee changed their contact email.
type ContactDetailsUpdatedEvent struct {
	TraineeID string `json:"traineeId"`
	Email     string `json:"email"`
}

// FormUpdatedEvent signals a change of a FormR submission's lifecycle state.
type FormUpdatedEvent struct {
	TraineeID      string     `json:"traineeId"`
	FormName       string     `json:"formName"`
	FormType       string     `json:"formType"`
	LifecycleState string     `json:"lifecycleState"`
	UpdatedAt      *time.Time `json:"eventDate,omitempty"`
}

// GmcDetailsEvent carries a trainee's GMC registration details for both the
// gmc-updated and gmc-rejected queues.
type GmcDetailsEvent struct {
	TraineeID       string `json:"traineeId"`
	GmcNumber       string `json:"gmcNumber"`
	GmcStatus       string `json:"gmcStatus"`
	ManagingDeanery string `json:"managingDeanery"`
}

// OutboxBatchEvent is a batch of History ids queued for rebroadcast to the
// notifications topic.
type OutboxBatchEvent struct {
	IDs []string `json:"ids"`
}

// PlacementDeletedEvent identifies the placement whose plan must be pruned.
type PlacementDeletedEvent struct {
	TisID    string `json:"tisId"`
	PersonID string `json:"personId"`
}

// ProgrammeMembershipDeletedEvent identifies the programme membership whose
// plan must be pruned.
type ProgrammeMembershipDeletedEvent struct {
	TisID    string `json:"tisId"`
	PersonID string `json:"personId"`
}
