package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// PublishStore is the slice of the database the publication flow needs.
type PublishStore interface {
	SaveLivePeriods(ctx context.Context, periods []int) error
	ReplaceShiftsForDates(ctx context.Context, dates []string, shifts []db.Shift) (*db.SaveReport, error)
}

// SaveScheduleDraft replaces the shifts for a pay period in both the
// in-memory grid and the database. Employees do not see the result until the
// period goes live. The returned report lists any chunks that failed to save.
func SaveScheduleDraft(
	ctx context.Context,
	state *State,
	store PublishStore,
	logger *zap.Logger,
	adminEmail string,
	period int,
	shifts []model.Shift,
) (*db.SaveReport, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}

	dates, err := schedule.PeriodDates(period, state.Gate.Anchor())
	if err != nil {
		return nil, err
	}
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}

	for _, shift := range shifts {
		if !dateSet[shift.Date] {
			return nil, requests.Validationf("shift on %s falls outside period %d", shift.Date, period)
		}
		if !shift.Role.IsValid() {
			return nil, requests.Validationf("invalid role %q for shift on %s", shift.Role, shift.Date)
		}
	}

	// Snapshot the period's slice of the grid for rollback
	prev := make([]model.Shift, 0)
	for _, date := range dates {
		prev = append(prev, state.Shifts.OnDate(date)...)
	}

	for _, date := range dates {
		for _, old := range state.Shifts.OnDate(date) {
			state.Shifts.Remove(old.EmployeeID, old.Date)
		}
	}
	for _, shift := range shifts {
		state.Shifts.Set(shift)
	}

	records := make([]db.Shift, 0, len(shifts))
	for _, shift := range shifts {
		records = append(records, db.ShiftRecord(shift))
	}
	report, err := store.ReplaceShiftsForDates(ctx, dates, records)
	if err != nil {
		for _, date := range dates {
			for _, s := range state.Shifts.OnDate(date) {
				state.Shifts.Remove(s.EmployeeID, s.Date)
			}
		}
		for _, s := range prev {
			state.Shifts.Set(s)
		}
		return nil, fmt.Errorf("failed to save schedule draft: %w", err)
	}
	for _, chunk := range report.Failed {
		logger.Warn("shift chunk failed to save",
			zap.Int("period", period),
			zap.Int("offset", chunk.Offset),
			zap.Int("count", chunk.Count),
			zap.Error(chunk.Err),
		)
	}

	logger.Info("schedule draft saved",
		zap.Int("period", period),
		zap.Int("deleted", report.Deleted),
		zap.Int("saved", report.Saved),
		zap.Int("failed_chunks", len(report.Failed)),
	)
	return report, nil
}

// PublishPeriod takes a pay period live: the current grid entries for its
// dates become the employee-visible snapshot. The gate change is rolled back
// if the live period list cannot be persisted.
func PublishPeriod(
	ctx context.Context,
	state *State,
	store PublishStore,
	logger *zap.Logger,
	adminEmail string,
	period int,
) error {
	if err := state.requireAdmin(adminEmail); err != nil {
		return err
	}

	wasLive := state.Gate.IsLive(period)
	if err := state.Gate.GoLive(period, state.Shifts); err != nil {
		return fmt.Errorf("failed to publish period %d: %w", period, err)
	}

	if err := store.SaveLivePeriods(ctx, state.Gate.LivePeriods()); err != nil {
		if !wasLive {
			if retractErr := state.Gate.Retract(period); retractErr != nil {
				logger.Error("failed to retract period after save failure",
					zap.Int("period", period), zap.Error(retractErr))
			}
		}
		return fmt.Errorf("failed to save live periods: %w", err)
	}

	logger.Info("pay period published", zap.Int("period", period), zap.String("by", adminEmail))
	return nil
}

// SetPeriodEditMode returns a live period to edit mode. The last published
// snapshot stays visible to employees; new edits reach them on the next
// publish.
func SetPeriodEditMode(state *State, logger *zap.Logger, adminEmail string, period int) error {
	if err := state.requireAdmin(adminEmail); err != nil {
		return err
	}
	state.Gate.SetEditMode(period)
	logger.Info("pay period returned to edit mode", zap.Int("period", period), zap.String("by", adminEmail))
	return nil
}
