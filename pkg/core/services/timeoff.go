package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/rules"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// TimeOffStore is the slice of the database the time-off lifecycle needs.
type TimeOffStore interface {
	InsertTimeOffRequest(ctx context.Context, req db.TimeOffRequest) error
	UpdateTimeOffRequest(ctx context.Context, req db.TimeOffRequest) error
}

// SubmitTimeOff validates and creates a new time-off request. The request is
// applied to the registry first and removed again if persistence fails.
func SubmitTimeOff(
	ctx context.Context,
	state *State,
	store TimeOffStore,
	logger *zap.Logger,
	employeeEmail string,
	dates []string,
	reason string,
	now time.Time,
) (*requests.TimeOffRequest, error) {
	emp, err := state.EmployeeByEmail(employeeEmail)
	if err != nil {
		return nil, err
	}
	if !emp.Active || emp.Deleted {
		return nil, requests.Validationf("%s is not an active employee", employeeEmail)
	}

	if len(dates) == 0 {
		return nil, requests.Validationf("at least one date is required")
	}
	today := model.FormatDate(now)
	for _, date := range dates {
		if _, err := model.ParseDate(date); err != nil {
			return nil, requests.Validationf("invalid date %q", date)
		}
		if date <= today {
			return nil, requests.Validationf("date %s is not in the future", date)
		}
		if rules.IsScheduled(state.Shifts, emp.ID, date) {
			return nil, requests.Validationf("%s is scheduled to work on %s; offer or swap the shift instead", emp.Name, date)
		}
	}

	if kind, ok := state.Registry.Outstanding(employeeEmail); ok {
		return nil, &requests.OutstandingRequestError{Kind: kind, Email: employeeEmail}
	}

	req := requests.TimeOffRequest{
		ID:            uuid.New().String(),
		EmployeeName:  emp.Name,
		EmployeeEmail: emp.Email,
		Dates:         dates,
		Reason:        reason,
		Status:        requests.TimeOffPending,
		CreatedAt:     now,
	}

	stored := state.Registry.AddTimeOff(req)
	if err := store.InsertTimeOffRequest(ctx, db.TimeOffRecord(req)); err != nil {
		state.Registry.RemoveTimeOff(req.ID)
		return nil, fmt.Errorf("failed to save time-off request: %w", err)
	}

	logger.Info("time-off request submitted",
		zap.String("id", req.ID),
		zap.String("employee", emp.Email),
		zap.Strings("dates", dates),
	)
	return stored, nil
}

// CancelTimeOff withdraws a pending request. Only the requester may cancel.
func CancelTimeOff(
	ctx context.Context,
	state *State,
	store TimeOffStore,
	logger *zap.Logger,
	id, callerEmail string,
	now time.Time,
) (*requests.TimeOffRequest, error) {
	req, err := state.Registry.TimeOffByID(id)
	if err != nil {
		return nil, err
	}
	if req.EmployeeEmail != callerEmail {
		return nil, requests.Validationf("only the requester may cancel a time-off request")
	}

	prev := *req
	if err := req.Cancel(callerEmail, now); err != nil {
		return nil, err
	}
	if err := store.UpdateTimeOffRequest(ctx, db.TimeOffRecord(*req)); err != nil {
		*req = prev
		return nil, fmt.Errorf("failed to save time-off cancellation: %w", err)
	}

	logger.Info("time-off request cancelled", zap.String("id", id), zap.String("by", callerEmail))
	return req, nil
}

// ApproveTimeOff moves a pending request to approved. The shift grid is not
// touched; approved time off is an overlay on the schedule.
func ApproveTimeOff(
	ctx context.Context,
	state *State,
	store TimeOffStore,
	logger *zap.Logger,
	id, adminEmail, note string,
	now time.Time,
) (*requests.TimeOffRequest, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	req, err := state.Registry.TimeOffByID(id)
	if err != nil {
		return nil, err
	}

	prev := *req
	if err := req.Approve(adminEmail, note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateTimeOffRequest(ctx, db.TimeOffRecord(*req)); err != nil {
		*req = prev
		return nil, fmt.Errorf("failed to save time-off approval: %w", err)
	}

	logger.Info("time-off request approved", zap.String("id", id), zap.String("by", adminEmail))
	return req, nil
}

// DenyTimeOff moves a pending request to denied.
func DenyTimeOff(
	ctx context.Context,
	state *State,
	store TimeOffStore,
	logger *zap.Logger,
	id, adminEmail, note string,
	now time.Time,
) (*requests.TimeOffRequest, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	req, err := state.Registry.TimeOffByID(id)
	if err != nil {
		return nil, err
	}

	prev := *req
	if err := req.Deny(adminEmail, note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateTimeOffRequest(ctx, db.TimeOffRecord(*req)); err != nil {
		*req = prev
		return nil, fmt.Errorf("failed to save time-off denial: %w", err)
	}

	logger.Info("time-off request denied", zap.String("id", id), zap.String("by", adminEmail))
	return req, nil
}

// RevokeTimeOff withdraws an already-approved request, restoring the employee
// to availability on the requested dates.
func RevokeTimeOff(
	ctx context.Context,
	state *State,
	store TimeOffStore,
	logger *zap.Logger,
	id, adminEmail, note string,
	now time.Time,
) (*requests.TimeOffRequest, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	req, err := state.Registry.TimeOffByID(id)
	if err != nil {
		return nil, err
	}

	prev := *req
	if err := req.Revoke(adminEmail, note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateTimeOffRequest(ctx, db.TimeOffRecord(*req)); err != nil {
		*req = prev
		return nil, fmt.Errorf("failed to save time-off revocation: %w", err)
	}

	logger.Info("time-off request revoked", zap.String("id", id), zap.String("by", adminEmail))
	return req, nil
}
