package schedule

import (
	"fmt"
	"sort"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

// Store is the in-memory shift grid: at most one shift per (employee, date).
// It performs no legality checks of its own; the request lifecycles are
// responsible for only asking it to do valid things.
type Store struct {
	shifts map[model.ShiftKey]model.Shift
}

// NewStore creates an empty shift store.
func NewStore() *Store {
	return &Store{shifts: make(map[model.ShiftKey]model.Shift)}
}

// NewStoreFrom creates a store seeded with the given shifts.
// Later entries for the same (employee, date) overwrite earlier ones.
func NewStoreFrom(shifts []model.Shift) *Store {
	s := NewStore()
	for _, shift := range shifts {
		s.Set(shift)
	}
	return s
}

// Get returns the shift for an employee on a date, if one exists.
func (s *Store) Get(employeeID, date string) (model.Shift, bool) {
	shift, ok := s.shifts[model.ShiftKey{EmployeeID: employeeID, Date: date}]
	return shift, ok
}

// Set inserts or overwrites the shift at the shift's own (employee, date) slot.
func (s *Store) Set(shift model.Shift) {
	s.shifts[shift.Key()] = shift
}

// Remove deletes the shift for an employee on a date. Removing a missing
// shift is a no-op.
func (s *Store) Remove(employeeID, date string) {
	delete(s.shifts, model.ShiftKey{EmployeeID: employeeID, Date: date})
}

// Reassign moves the shift on the given date from one employee to another,
// preserving start, end, role and task. The destination slot is overwritten.
func (s *Store) Reassign(fromEmployeeID, toEmployeeID, date string) error {
	shift, ok := s.Get(fromEmployeeID, date)
	if !ok {
		return fmt.Errorf("no shift to reassign for employee %s on %s", fromEmployeeID, date)
	}
	s.Remove(fromEmployeeID, date)
	shift.EmployeeID = toEmployeeID
	s.Set(shift)
	return nil
}

// Exchange swaps the shifts held by two employees on their respective dates:
// a's shift content moves to b on dateA and b's shift content moves to a on
// dateB. Both shifts are snapshotted before any mutation so the exchange is
// all-or-nothing even when dateA equals dateB.
func (s *Store) Exchange(aEmployeeID, dateA, bEmployeeID, dateB string) error {
	shiftA, ok := s.Get(aEmployeeID, dateA)
	if !ok {
		return fmt.Errorf("no shift to exchange for employee %s on %s", aEmployeeID, dateA)
	}
	shiftB, ok := s.Get(bEmployeeID, dateB)
	if !ok {
		return fmt.Errorf("no shift to exchange for employee %s on %s", bEmployeeID, dateB)
	}

	s.Remove(aEmployeeID, dateA)
	s.Remove(bEmployeeID, dateB)

	shiftA.EmployeeID = bEmployeeID
	shiftB.EmployeeID = aEmployeeID
	s.Set(shiftA)
	s.Set(shiftB)
	return nil
}

// All returns every shift, sorted by date then employee ID.
func (s *Store) All() []model.Shift {
	shifts := make([]model.Shift, 0, len(s.shifts))
	for _, shift := range s.shifts {
		shifts = append(shifts, shift)
	}
	sortShifts(shifts)
	return shifts
}

// ShiftsFor returns all shifts held by an employee, sorted by date.
func (s *Store) ShiftsFor(employeeID string) []model.Shift {
	shifts := make([]model.Shift, 0)
	for key, shift := range s.shifts {
		if key.EmployeeID == employeeID {
			shifts = append(shifts, shift)
		}
	}
	sortShifts(shifts)
	return shifts
}

// OnDate returns all shifts scheduled on a date, sorted by employee ID.
func (s *Store) OnDate(date string) []model.Shift {
	shifts := make([]model.Shift, 0)
	for key, shift := range s.shifts {
		if key.Date == date {
			shifts = append(shifts, shift)
		}
	}
	sortShifts(shifts)
	return shifts
}

// Len returns the number of shifts in the store.
func (s *Store) Len() int {
	return len(s.shifts)
}

func sortShifts(shifts []model.Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		if shifts[i].Date != shifts[j].Date {
			return shifts[i].Date < shifts[j].Date
		}
		return shifts[i].EmployeeID < shifts[j].EmployeeID
	})
}
