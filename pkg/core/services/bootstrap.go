package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// BootstrapStore is the slice of the database needed to load the full
// working set at startup.
type BootstrapStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	GetTimeOffRequests(ctx context.Context) ([]db.TimeOffRequest, error)
	GetShiftOffers(ctx context.Context) ([]db.ShiftOffer, error)
	GetShiftSwaps(ctx context.Context) ([]db.ShiftSwap, error)
	GetLivePeriods(ctx context.Context) ([]int, error)
	GetAnnouncements(ctx context.Context) ([]db.Announcement, error)
	GetStaffingTargets(ctx context.Context) ([]db.StaffingTarget, error)
}

// LoadAll builds the in-memory state from the database and the roster. The
// persisted grid is treated as the published truth for every live period.
func LoadAll(
	ctx context.Context,
	store BootstrapStore,
	logger *zap.Logger,
	employees []model.Employee,
	periodAnchor string,
) (*State, error) {
	state := NewState(periodAnchor)
	state.Employees = employees

	shiftRecords, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	shifts := make([]model.Shift, 0, len(shiftRecords))
	for _, rec := range shiftRecords {
		shifts = append(shifts, rec.Model())
	}
	state.Shifts = schedule.NewStoreFrom(shifts)

	timeOff, err := store.GetTimeOffRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load time-off requests: %w", err)
	}
	for _, rec := range timeOff {
		state.Registry.AddTimeOff(rec.Model())
	}

	offers, err := store.GetShiftOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift offers: %w", err)
	}
	for _, rec := range offers {
		state.Registry.AddOffer(rec.Model())
	}

	swaps, err := store.GetShiftSwaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift swaps: %w", err)
	}
	for _, rec := range swaps {
		state.Registry.AddSwap(rec.Model())
	}

	livePeriods, err := store.GetLivePeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load live periods: %w", err)
	}
	if err := state.Gate.RestoreLive(livePeriods, state.Shifts); err != nil {
		return nil, fmt.Errorf("failed to restore published periods: %w", err)
	}

	announcements, err := store.GetAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load announcements: %w", err)
	}
	for i := range announcements {
		if announcements[i].Active {
			state.Announcement = &announcements[i]
		}
	}

	targets, err := store.GetStaffingTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staffing targets: %w", err)
	}
	state.StaffingTargets = targets

	logger.Info("state loaded",
		zap.Int("employees", len(employees)),
		zap.Int("shifts", state.Shifts.Len()),
		zap.Int("time_off_requests", len(state.Registry.TimeOff)),
		zap.Int("shift_offers", len(state.Registry.Offers)),
		zap.Int("shift_swaps", len(state.Registry.Swaps)),
		zap.Ints("live_periods", livePeriods),
	)
	return state, nil
}

// ApprovedTimeOffOn returns the names of employees with approved time off
// covering the date. The schedule view overlays this on the grid.
func (s *State) ApprovedTimeOffOn(date string) []string {
	names := make([]string, 0)
	for i := range s.Registry.TimeOff {
		req := &s.Registry.TimeOff[i]
		if req.Status != requests.TimeOffApproved {
			continue
		}
		for _, d := range req.Dates {
			if d == date {
				names = append(names, req.EmployeeName)
				break
			}
		}
	}
	return names
}

// CurrentPeriod returns the pay period index containing now.
func (s *State) CurrentPeriod(now time.Time) (int, error) {
	return schedule.PeriodIndex(model.FormatDate(now), s.Gate.Anchor())
}
