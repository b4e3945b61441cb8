package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all schedule dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for shift start/end times.
const TimeLayout = "15:04"

type Role string

const (
	RoleCashier       Role = "cashier"
	RoleBackupCashier Role = "backupCashier"
	RoleMens          Role = "mens"
	RoleWomens        Role = "womens"
	RoleFloorMonitor  Role = "floorMonitor"
	RoleNone          Role = "none"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCashier, RoleBackupCashier, RoleMens, RoleWomens, RoleFloorMonitor, RoleNone:
		return true
	}
	return false
}

type EmploymentType string

const (
	FullTime EmploymentType = "full-time"
	PartTime EmploymentType = "part-time"
)

// DayAvailability describes when an employee can work on a given weekday.
type DayAvailability struct {
	Available bool
	Start     string // Time format, empty when unavailable
	End       string
}

// Employee represents a store employee from the roster sheet
type Employee struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Active         bool
	Deleted        bool // soft delete, history is retained
	IsAdmin        bool
	IsOwner        bool
	ShowOnSchedule bool
	EmploymentType EmploymentType
	Availability   map[time.Weekday]DayAvailability
}

// ShiftKey identifies the single shift an employee may hold on a date.
type ShiftKey struct {
	EmployeeID string
	Date       string // Date format
}

// Shift represents one scheduled shift. At most one exists per (employee, date).
type Shift struct {
	EmployeeID string
	Date       string // Date format
	StartTime  string // Time format
	EndTime    string
	Role       Role
	Task       string // optional free text
}

func (s Shift) Key() ShiftKey {
	return ShiftKey{EmployeeID: s.EmployeeID, Date: s.Date}
}

// Hours returns the shift length in hours, derived from start and end times.
func (s Shift) Hours() float64 {
	start, err := time.Parse(TimeLayout, s.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(TimeLayout, s.EndTime)
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()
}

// ParseDate parses a schedule date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate formats a time as a schedule date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
