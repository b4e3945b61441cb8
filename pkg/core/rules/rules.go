// Package rules holds the pure eligibility predicates the request lifecycles
// validate against. Every function takes the current state as parameters and
// has no side effects, so the same rule serves submit validation, recipient
// list filtering, and approval-time re-checks without drifting apart.
package rules

import (
	"time"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
)

// HasOutstandingRequest reports whether the employee has any request of any
// type still in flight that they initiated.
func HasOutstandingRequest(reg *requests.Registry, email string) bool {
	_, ok := reg.Outstanding(email)
	return ok
}

// FutureShiftsOf returns the employee's shifts strictly after "tomorrow"
// relative to now, sorted by date ascending. Shifts today, tomorrow or in
// the past are never offerable or swappable; that would disrupt a day that
// is already staffed.
func FutureShiftsOf(store *schedule.Store, employeeID string, now time.Time) []model.Shift {
	cutoff := model.FormatDate(now.AddDate(0, 0, 1))
	shifts := make([]model.Shift, 0)
	for _, shift := range store.ShiftsFor(employeeID) {
		if shift.Date > cutoff {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// IsShiftAlreadyOffered reports whether an active offer already exists for
// this offerer and date.
func IsShiftAlreadyOffered(reg *requests.Registry, offererEmail, date string) bool {
	for i := range reg.Offers {
		o := &reg.Offers[i]
		if o.OffererEmail == offererEmail && o.ShiftDate == date && o.Status.Active() {
			return true
		}
	}
	return false
}

// IsSwapAlreadyPending reports whether an active swap already exists for the
// same date pair, in either direction. Mirror proposals (B proposing to A
// what A already proposed to B) count as duplicates.
func IsSwapAlreadyPending(reg *requests.Registry, initiatorEmail, myDate, partnerEmail, theirDate string) bool {
	for i := range reg.Swaps {
		s := &reg.Swaps[i]
		if !s.Status.Active() {
			continue
		}
		if s.InitiatorEmail == initiatorEmail && s.PartnerEmail == partnerEmail &&
			s.InitiatorShift.Date == myDate && s.PartnerShift.Date == theirDate {
			return true
		}
		if s.InitiatorEmail == partnerEmail && s.PartnerEmail == initiatorEmail &&
			s.InitiatorShift.Date == theirDate && s.PartnerShift.Date == myDate {
			return true
		}
	}
	return false
}

// RecipientAlreadyWorks reports whether the candidate already holds a shift
// on the date, which would make receiving another one a double booking.
func RecipientAlreadyWorks(store *schedule.Store, candidateID, date string) bool {
	_, ok := store.Get(candidateID, date)
	return ok
}

// IsSwapEligible reports whether an employee can be the recipient of an
// offer or the partner in a swap. Admins and the owner adjudicate these
// requests; they never participate as workers in them.
func IsSwapEligible(emp model.Employee) bool {
	return emp.Active && !emp.Deleted && !emp.IsAdmin && !emp.IsOwner
}

// EligibleRecipients filters the roster down to employees who may receive
// an offer or act as a swap partner, excluding the requester themselves.
func EligibleRecipients(employees []model.Employee, selfEmail string) []model.Employee {
	eligible := make([]model.Employee, 0)
	for _, emp := range employees {
		if emp.Email == selfEmail {
			continue
		}
		if IsSwapEligible(emp) {
			eligible = append(eligible, emp)
		}
	}
	return eligible
}

// IsScheduled reports whether the employee holds a shift on the date. A
// scheduled date is not selectable for time off; the employee must use an
// offer or swap instead.
func IsScheduled(store *schedule.Store, employeeID, date string) bool {
	_, ok := store.Get(employeeID, date)
	return ok
}
