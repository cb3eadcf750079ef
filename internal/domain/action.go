package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_action.go -package mocks github.com/TraineeHub/notify/internal/domain ActionsClient

// ActionType names a checklist item tracked by the actions service.
type ActionType string

const (
	ActionSignCoj        ActionType = "SIGN_COJ"
	ActionSignFormRPartA ActionType = "SIGN_FORM_R_PART_A"
	ActionSignFormRPartB ActionType = "SIGN_FORM_R_PART_B"
	ActionRegisterTss    ActionType = "REGISTER_TSS"
)

// Action is one per-trainee checklist item for a programme.
type Action struct {
	Type      ActionType `json:"type"`
	DueBy     *ISODate   `json:"dueBy,omitempty"`
	Completed *time.Time `json:"completed,omitempty"`
}

// IsComplete reports whether the action has been completed.
func (a Action) IsComplete() bool {
	return a.Completed != nil
}

// ActionsClient reads the actions service checklist for a trainee and
// programme.
type ActionsClient interface {
	GetActions(ctx context.Context, personID, programmeID string) ([]Action, error)
}
