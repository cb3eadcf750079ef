package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports a missing entity.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// IsNotFound reports whether err wraps an ErrNotFound.
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// ValidationError reports invalid input or parameters; validation failures
// are not retryable.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message.
func NewValidationError(message string) error {
	return ValidationError{Message: message}
}

// InvalidStatusTransitionError reports an attempt to set a status outside
// the channel's valid set.
type InvalidStatusTransitionError struct {
	Channel MessageChannel
	Status  NotificationStatus
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("status %s is not valid for channel %s", e.Status, e.Channel)
}

// ErrNoAccount is returned when the identity directory has no account for a
// trainee. Sends record a FAILED row instead of surfacing this.
var ErrNoAccount = errors.New("no user account found for trainee")

// AmbiguousAccountError is returned when the identity directory holds more
// than one account for a trainee. The ids are kept for operator alerts.
type AmbiguousAccountError struct {
	TraineeID  string
	AccountIDs []string
}

func (e *AmbiguousAccountError) Error() string {
	return fmt.Sprintf("%d accounts found for trainee %s: %s",
		len(e.AccountIDs), e.TraineeID, strings.Join(e.AccountIDs, ", "))
}

// ErrMissingTraineeID reports an inbound event without a trainee id; the
// event is not retryable.
var ErrMissingTraineeID = errors.New("trainee id is required")

// ErrMissingLtftState reports an LTFT event without a current state.
var ErrMissingLtftState = errors.New("ltft status state is missing")

// ErrUnknownTemplateVersion reports a kind/channel pair with no configured
// template version.
type ErrUnknownTemplateVersion struct {
	Kind    NotificationKind
	Channel MessageChannel
}

func (e *ErrUnknownTemplateVersion) Error() string {
	return fmt.Sprintf("no template version configured for %s.%s", e.Kind, e.Channel)
}
