package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// AdminStore is the slice of the database the admin extras need.
type AdminStore interface {
	InsertAnnouncement(ctx context.Context, announcement db.Announcement) error
	SetStaffingTarget(ctx context.Context, weekday string, target int) error
}

// RosterWriter flips the active flag on the roster sheet. The roster is
// owned by the staffing spreadsheet, not the request database.
type RosterWriter interface {
	SetEmployeeActive(employeeID string, active bool) error
}

// PostAnnouncement publishes a new banner message to all employees. Any
// previous announcement is deactivated.
func PostAnnouncement(
	ctx context.Context,
	state *State,
	store AdminStore,
	logger *zap.Logger,
	adminEmail, subject, message string,
	now time.Time,
) (*db.Announcement, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	if subject == "" && message == "" {
		return nil, requests.Validationf("announcement needs a subject or a message")
	}

	announcement := db.Announcement{
		ID:        uuid.New().String(),
		Subject:   subject,
		Message:   message,
		Active:    true,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := store.InsertAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to post announcement: %w", err)
	}

	state.Announcement = &announcement
	logger.Info("announcement posted", zap.String("id", announcement.ID), zap.String("by", adminEmail))
	return &announcement, nil
}

// SetStaffingTarget records how many employees should be scheduled on a
// weekday. The schedule editor compares the draft against these.
func SetStaffingTarget(
	ctx context.Context,
	state *State,
	store AdminStore,
	logger *zap.Logger,
	adminEmail, weekday string,
	target int,
) error {
	if err := state.requireAdmin(adminEmail); err != nil {
		return err
	}
	if target < 0 {
		return requests.Validationf("staffing target cannot be negative")
	}
	valid := map[string]bool{
		"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
		"Thursday": true, "Friday": true, "Saturday": true,
	}
	if !valid[weekday] {
		return requests.Validationf("unknown weekday %q", weekday)
	}

	if err := store.SetStaffingTarget(ctx, weekday, target); err != nil {
		return fmt.Errorf("failed to set staffing target: %w", err)
	}

	for i := range state.StaffingTargets {
		if state.StaffingTargets[i].Weekday == weekday {
			state.StaffingTargets[i].Target = target
			logger.Info("staffing target updated", zap.String("weekday", weekday), zap.Int("target", target))
			return nil
		}
	}
	state.StaffingTargets = append(state.StaffingTargets, db.StaffingTarget{
		Weekday: weekday,
		Target:  target,
	})
	logger.Info("staffing target set", zap.String("weekday", weekday), zap.Int("target", target))
	return nil
}

// DeactivateEmployee flags an employee inactive on the roster. Refused while
// the employee still holds future shifts or has a request in flight; those
// have to be reassigned or resolved first.
func DeactivateEmployee(
	ctx context.Context,
	state *State,
	roster RosterWriter,
	logger *zap.Logger,
	adminEmail, employeeEmail string,
	now time.Time,
) error {
	if err := state.requireAdmin(adminEmail); err != nil {
		return err
	}
	emp, err := state.EmployeeByEmail(employeeEmail)
	if err != nil {
		return err
	}
	if !emp.Active {
		return requests.Validationf("%s is already inactive", emp.Name)
	}

	today := model.FormatDate(now)
	upcoming := 0
	for _, shift := range state.Shifts.ShiftsFor(emp.ID) {
		if shift.Date >= today {
			upcoming++
		}
	}
	if upcoming > 0 {
		return requests.Validationf("%s still has %d upcoming shifts", emp.Name, upcoming)
	}
	if kind, ok := state.Registry.Outstanding(employeeEmail); ok {
		return requests.Validationf("%s still has an outstanding %s", emp.Name, kind)
	}

	if err := roster.SetEmployeeActive(emp.ID, false); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	for i := range state.Employees {
		if state.Employees[i].ID == emp.ID {
			state.Employees[i].Active = false
		}
	}
	logger.Info("employee deactivated", zap.String("employee", employeeEmail), zap.String("by", adminEmail))
	return nil
}
