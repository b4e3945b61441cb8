package services

import (
	"fmt"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// State is the in-memory working set every operation runs against: the
// roster, the shift grid, the three request collections and the publication
// gate. Operations mutate it optimistically and revert if persistence fails.
type State struct {
	Employees       []model.Employee
	Shifts          *schedule.Store
	Registry        *requests.Registry
	Gate            *schedule.Gate
	Announcement    *db.Announcement
	StaffingTargets []db.StaffingTarget
}

// NewState creates an empty state with the given pay period anchor.
func NewState(periodAnchor string) *State {
	return &State{
		Shifts:   schedule.NewStore(),
		Registry: requests.NewRegistry(),
		Gate:     schedule.NewGate(periodAnchor),
	}
}

// EmployeeByEmail finds a roster entry by email.
func (s *State) EmployeeByEmail(email string) (model.Employee, error) {
	for _, emp := range s.Employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return model.Employee{}, fmt.Errorf("no employee with email %s", email)
}

// EmployeeByID finds a roster entry by ID.
func (s *State) EmployeeByID(id string) (model.Employee, error) {
	for _, emp := range s.Employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return model.Employee{}, fmt.Errorf("no employee with id %s", id)
}

// IsAdmin reports whether the email belongs to an admin or the owner.
func (s *State) IsAdmin(email string) bool {
	for _, emp := range s.Employees {
		if emp.Email == email {
			return emp.IsAdmin || emp.IsOwner
		}
	}
	return false
}

// requireAdmin guards the admin-only transitions. The caller identity comes
// from the action layer but the check is repeated here; guards hold even if
// an entry point forgets.
func (s *State) requireAdmin(email string) error {
	if !s.IsAdmin(email) {
		return requests.Validationf("%s is not an admin", email)
	}
	return nil
}
