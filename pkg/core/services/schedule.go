package services

import (
	"time"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/rules"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
)

// ScheduledCounts returns, for each date in a period, how many employees are
// scheduled. Paired with staffing targets in the editor view.
func ScheduledCounts(state *State, period int) (map[string]int, error) {
	dates, err := schedule.PeriodDates(period, state.Gate.Anchor())
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(dates))
	for _, date := range dates {
		counts[date] = len(state.Shifts.OnDate(date))
	}
	return counts, nil
}

// PeriodHours totals the scheduled hours per employee ID for one pay period.
func PeriodHours(state *State, period int) (map[string]float64, error) {
	dates, err := schedule.PeriodDates(period, state.Gate.Anchor())
	if err != nil {
		return nil, err
	}
	hours := make(map[string]float64)
	for _, date := range dates {
		for _, shift := range state.Shifts.OnDate(date) {
			hours[shift.EmployeeID] += shift.Hours()
		}
	}
	return hours, nil
}

// PublishedScheduleFor returns the shifts an employee is allowed to see:
// their published entries only.
func PublishedScheduleFor(state *State, employeeEmail string) ([]model.Shift, error) {
	emp, err := state.EmployeeByEmail(employeeEmail)
	if err != nil {
		return nil, err
	}
	return state.Gate.PublishedFor(emp.ID), nil
}

// OfferableShifts returns the shifts an employee may put up as an offer or
// use as their side of a swap.
func OfferableShifts(state *State, employeeEmail string, now time.Time) ([]model.Shift, error) {
	emp, err := state.EmployeeByEmail(employeeEmail)
	if err != nil {
		return nil, err
	}
	return rules.FutureShiftsOf(state.Shifts, emp.ID, now), nil
}

// EligibleRecipientsFor filters the roster down to employees who may receive
// an offer from, or swap with, the given employee.
func EligibleRecipientsFor(state *State, selfEmail string) []model.Employee {
	return rules.EligibleRecipients(state.Employees, selfEmail)
}
