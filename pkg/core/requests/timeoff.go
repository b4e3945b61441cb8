package requests

import (
	"time"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

type TimeOffStatus string

const (
	TimeOffPending   TimeOffStatus = "pending"
	TimeOffApproved  TimeOffStatus = "approved"
	TimeOffDenied    TimeOffStatus = "denied"
	TimeOffCancelled TimeOffStatus = "cancelled"
	TimeOffRevoked   TimeOffStatus = "revoked"
)

// Outstanding reports whether this status blocks the requester from opening
// another request.
func (s TimeOffStatus) Outstanding() bool {
	return s == TimeOffPending
}

// TimeOffRequest is an employee's ask to be off on a set of dates. Approval
// never touches the shift grid; approved time off is an overlay only.
type TimeOffRequest struct {
	ID            string
	EmployeeName  string
	EmployeeEmail string
	Dates         []string // Date format, need not be contiguous
	Reason        string
	Status        TimeOffStatus
	AdminNote     string
	CreatedAt     time.Time
	DecidedAt     time.Time
	DecidedBy     string
}

// Cancel withdraws a pending request. Only the requester cancels; the caller
// is recorded as the decider.
func (r *TimeOffRequest) Cancel(by string, now time.Time) error {
	if r.Status != TimeOffPending {
		return &NotInStateError{Kind: KindTimeOff, ID: r.ID, Status: string(r.Status), Want: string(TimeOffPending)}
	}
	r.Status = TimeOffCancelled
	r.DecidedAt = now
	r.DecidedBy = by
	return nil
}

// Approve moves a pending request to approved.
func (r *TimeOffRequest) Approve(by, note string, now time.Time) error {
	if r.Status != TimeOffPending {
		return &NotInStateError{Kind: KindTimeOff, ID: r.ID, Status: string(r.Status), Want: string(TimeOffPending)}
	}
	r.Status = TimeOffApproved
	r.AdminNote = note
	r.DecidedAt = now
	r.DecidedBy = by
	return nil
}

// Deny moves a pending request to denied.
func (r *TimeOffRequest) Deny(by, note string, now time.Time) error {
	if r.Status != TimeOffPending {
		return &NotInStateError{Kind: KindTimeOff, ID: r.ID, Status: string(r.Status), Want: string(TimeOffPending)}
	}
	r.Status = TimeOffDenied
	r.AdminNote = note
	r.DecidedAt = now
	r.DecidedBy = by
	return nil
}

// Revoke withdraws an already-approved request. Refused once every requested
// date has passed; there is nothing left to revoke.
func (r *TimeOffRequest) Revoke(by, note string, now time.Time) error {
	if r.Status != TimeOffApproved {
		return &NotInStateError{Kind: KindTimeOff, ID: r.ID, Status: string(r.Status), Want: string(TimeOffApproved)}
	}
	today := model.FormatDate(now)
	anyFuture := false
	for _, date := range r.Dates {
		if date >= today {
			anyFuture = true
			break
		}
	}
	if !anyFuture {
		return Validationf("cannot revoke time off: all requested dates have passed")
	}
	r.Status = TimeOffRevoked
	r.AdminNote = note
	r.DecidedAt = now
	r.DecidedBy = by
	return nil
}
