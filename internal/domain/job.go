package domain

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -destination mocks/mock_job.go -package mocks github.com/TraineeHub/notify/internal/domain JobRepository,JobScheduler,NotificationExecutor

// DefaultMisfireWindowSeconds bounds how late a trigger may still fire after
// downtime. Beyond the window the trigger is discarded and the planner
// re-materialises it at the next inbound event.
const DefaultMisfireWindowSeconds = 86400

// ProgrammeJobPayload carries the programme fields a milestone email needs
// at fire time.
type ProgrammeJobPayload struct {
	TisID         string  `json:"tisId"`
	ProgrammeName string  `json:"programmeName"`
	StartDate     ISODate `json:"startDate"`
}

// PlacementJobPayload carries the placement fields the week-12 email needs
// at fire time.
type PlacementJobPayload struct {
	TisID         string  `json:"tisId"`
	StartDate     ISODate `json:"startDate"`
	PlacementType string  `json:"placementType"`
	Specialty     string  `json:"specialty"`
	Owner         string  `json:"owner"`
}

// JobData is the typed payload stored with a scheduled job. Kind selects
// which of the optional payloads is populated; the executor branches on it
// rather than reflecting over an untyped map.
type JobData struct {
	Kind      NotificationKind       `json:"notificationType"`
	TraineeID string                 `json:"personId"`
	Programme *ProgrammeJobPayload   `json:"programme,omitempty"`
	Placement *PlacementJobPayload   `json:"placement,omitempty"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// NewProgrammeJobData builds the job payload for a programme milestone kind.
func NewProgrammeJobData(kind NotificationKind, pm *ProgrammeMembership) JobData {
	return JobData{
		Kind:      kind,
		TraineeID: pm.PersonID,
		Programme: &ProgrammeJobPayload{
			TisID:         pm.TisID,
			ProgrammeName: pm.ProgrammeName,
			StartDate:     pm.StartDate,
		},
	}
}

// NewPlacementJobData builds the job payload for the placement milestone.
func NewPlacementJobData(p *Placement) JobData {
	return JobData{
		Kind:      KindPlacementUpdatedWeek12,
		TraineeID: p.PersonID,
		Placement: &PlacementJobPayload{
			TisID:         p.TisID,
			StartDate:     p.StartDate,
			PlacementType: p.PlacementType,
			Specialty:     p.Specialty,
			Owner:         p.Owner,
		},
	}
}

// Reference returns the entity reference the job data points at.
func (d JobData) Reference() *TisReference {
	switch {
	case d.Programme != nil:
		return NewTisReference(ReferenceProgrammeMembership, d.Programme.TisID)
	case d.Placement != nil:
		return NewTisReference(ReferencePlacement, d.Placement.TisID)
	default:
		return nil
	}
}

// Job is a persisted one-shot trigger. Exactly one node fires a given job;
// the row is deleted in the same transaction as a successful execution.
type Job struct {
	ID                   string    `json:"id"`
	Data                 JobData   `json:"data"`
	FireAt               time.Time `json:"fireAt"`
	MisfireWindowSeconds int       `json:"misfireWindowSeconds"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Misfired reports whether the job's fire time has been missed by more than
// its misfire window at the given instant.
func (j *Job) Misfired(now time.Time) bool {
	window := time.Duration(j.MisfireWindowSeconds) * time.Second
	return now.After(j.FireAt.Add(window))
}

// JobRepository is the persistence contract for scheduled jobs. Claiming is
// transactional so that concurrent runner processes never fire the same
// trigger twice.
type JobRepository interface {
	// Upsert registers a job, replacing any existing row with the same id.
	Upsert(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	// Delete removes a job; a missing id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
	// WithTransaction runs fn inside a transaction, committing when it
	// returns nil.
	WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
	// ClaimDueTx locks and returns up to limit due jobs, skipping rows
	// locked by other runners.
	ClaimDueTx(ctx context.Context, tx *sql.Tx, now time.Time, limit int) ([]*Job, error)
	// DeleteTx removes a claimed job within the claiming transaction.
	DeleteTx(ctx context.Context, tx *sql.Tx, id string) error
}

// JobScheduler registers, replaces and removes one-shot notification jobs
// and owns the schedule-date arithmetic for milestone anchors.
type JobScheduler interface {
	// Schedule registers a one-shot job, replacing any job with the same
	// id. Errors surface to the caller so the planning event is retried.
	Schedule(ctx context.Context, jobID string, data JobData, fireAt time.Time, misfireWindowSeconds int) error
	// ExecuteNow runs the executor immediately, bypassing the store.
	ExecuteNow(ctx context.Context, jobID string, data JobData) error
	// Remove deletes any job with this id; a missing id is not an error.
	Remove(ctx context.Context, jobID string) error
	// GetScheduleDate returns the instant a milestone anchored daysBefore
	// days ahead of anchorDate should fire.
	GetScheduleDate(anchorDate ISODate, daysBefore int) time.Time
}

// NotificationExecutor is the callback fired when a job's trigger comes due.
// The returned value is a short audit string, e.g. "sent 2025-08-01T09:00Z".
type NotificationExecutor interface {
	Execute(ctx context.Context, jobID string, data JobData) (string, error)
}
