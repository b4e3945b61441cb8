package requests

import (
	"errors"
	"fmt"
)

// Kind identifies which of the three request types is involved, phrased the
// way it is surfaced to users in conflict messages.
type Kind string

const (
	KindTimeOff Kind = "time-off request"
	KindOffer   Kind = "Take My Shift request"
	KindSwap    Kind = "shift swap request"
)

// ErrNotFound is returned when a request ID does not resolve.
var ErrNotFound = errors.New("request not found")

// NotInStateError is returned when a transition is attempted on a request
// that is not in the required source state. Guards hold even when the UI
// should have prevented the call.
type NotInStateError struct {
	Kind   Kind
	ID     string
	Status string
	Want   string
}

func (e *NotInStateError) Error() string {
	return fmt.Sprintf("%s %s is %s, not %s", e.Kind, e.ID, e.Status, e.Want)
}

// OutstandingRequestError is returned when an employee tries to submit a new
// request while another of theirs is still outstanding.
type OutstandingRequestError struct {
	Kind  Kind // the kind already outstanding
	Email string
}

func (e *OutstandingRequestError) Error() string {
	return fmt.Sprintf("%s already has an outstanding %s", e.Email, e.Kind)
}

// ValidationError is a local pre-flight failure: the submission never reaches
// the backend.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
