package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

var (
	testNow    = time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	testAnchor = "2026-01-04"
	errBackend = errors.New("backend unavailable")
)

// fakeStore is an in-memory stand-in for the database layer. Failure flags
// let tests exercise the revert paths.
type fakeStore struct {
	timeOff map[string]db.TimeOffRequest
	offers  map[string]db.ShiftOffer
	swaps   map[string]db.ShiftSwap

	shifts        []db.Shift
	livePeriods   []int
	announcements []db.Announcement
	targets       []db.StaffingTarget

	failInsert      bool
	failUpdate      bool
	failReassign    bool
	failSwapShifts  bool
	failSaveLive    bool
	failReplace     bool
	reassignCalls   int
	swapShiftsCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		timeOff: make(map[string]db.TimeOffRequest),
		offers:  make(map[string]db.ShiftOffer),
		swaps:   make(map[string]db.ShiftSwap),
	}
}

func (f *fakeStore) InsertTimeOffRequest(ctx context.Context, req db.TimeOffRequest) error {
	if f.failInsert {
		return errBackend
	}
	f.timeOff[req.ID] = req
	return nil
}

func (f *fakeStore) UpdateTimeOffRequest(ctx context.Context, req db.TimeOffRequest) error {
	if f.failUpdate {
		return errBackend
	}
	f.timeOff[req.ID] = req
	return nil
}

func (f *fakeStore) InsertShiftOffer(ctx context.Context, offer db.ShiftOffer) error {
	if f.failInsert {
		return errBackend
	}
	f.offers[offer.ID] = offer
	return nil
}

func (f *fakeStore) UpdateShiftOffer(ctx context.Context, offer db.ShiftOffer) error {
	if f.failUpdate {
		return errBackend
	}
	f.offers[offer.ID] = offer
	return nil
}

func (f *fakeStore) InsertShiftSwap(ctx context.Context, swap db.ShiftSwap) error {
	if f.failInsert {
		return errBackend
	}
	f.swaps[swap.ID] = swap
	return nil
}

func (f *fakeStore) UpdateShiftSwap(ctx context.Context, swap db.ShiftSwap) error {
	if f.failUpdate {
		return errBackend
	}
	f.swaps[swap.ID] = swap
	return nil
}

func (f *fakeStore) ReassignShift(ctx context.Context, fromEmployeeID, toEmployeeID, date string) error {
	if f.failReassign {
		return errBackend
	}
	f.reassignCalls++
	for i := range f.shifts {
		if f.shifts[i].EmployeeID == fromEmployeeID && f.shifts[i].Date == date {
			f.shifts[i].EmployeeID = toEmployeeID
			return nil
		}
	}
	return errors.New("no shift row")
}

func (f *fakeStore) SwapShifts(ctx context.Context, aEmployeeID, dateA, bEmployeeID, dateB string) error {
	if f.failSwapShifts {
		return errBackend
	}
	f.swapShiftsCalls++
	var rowA, rowB *db.Shift
	for i := range f.shifts {
		if f.shifts[i].EmployeeID == aEmployeeID && f.shifts[i].Date == dateA {
			rowA = &f.shifts[i]
		}
		if f.shifts[i].EmployeeID == bEmployeeID && f.shifts[i].Date == dateB {
			rowB = &f.shifts[i]
		}
	}
	if rowA == nil || rowB == nil {
		return errors.New("no shift row")
	}
	rowA.EmployeeID = bEmployeeID
	rowB.EmployeeID = aEmployeeID
	return nil
}

func (f *fakeStore) SaveLivePeriods(ctx context.Context, periods []int) error {
	if f.failSaveLive {
		return errBackend
	}
	f.livePeriods = append([]int(nil), periods...)
	return nil
}

func (f *fakeStore) ReplaceShiftsForDates(ctx context.Context, dates []string, shifts []db.Shift) (*db.SaveReport, error) {
	if f.failReplace {
		return nil, errBackend
	}
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}
	kept := f.shifts[:0]
	deleted := 0
	for _, s := range f.shifts {
		if dateSet[s.Date] {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	f.shifts = append(kept, shifts...)
	return &db.SaveReport{Deleted: deleted, Saved: len(shifts)}, nil
}

func (f *fakeStore) InsertAnnouncement(ctx context.Context, announcement db.Announcement) error {
	if f.failInsert {
		return errBackend
	}
	for i := range f.announcements {
		f.announcements[i].Active = false
	}
	f.announcements = append(f.announcements, announcement)
	return nil
}

func (f *fakeStore) SetStaffingTarget(ctx context.Context, weekday string, target int) error {
	if f.failUpdate {
		return errBackend
	}
	for i := range f.targets {
		if f.targets[i].Weekday == weekday {
			f.targets[i].Target = target
			return nil
		}
	}
	f.targets = append(f.targets, db.StaffingTarget{ID: weekday, Weekday: weekday, Target: target})
	return nil
}

func (f *fakeStore) GetShifts(ctx context.Context) ([]db.Shift, error) {
	return f.shifts, nil
}

func (f *fakeStore) GetTimeOffRequests(ctx context.Context) ([]db.TimeOffRequest, error) {
	out := make([]db.TimeOffRequest, 0, len(f.timeOff))
	for _, rec := range f.timeOff {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStore) GetShiftOffers(ctx context.Context) ([]db.ShiftOffer, error) {
	out := make([]db.ShiftOffer, 0, len(f.offers))
	for _, rec := range f.offers {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStore) GetShiftSwaps(ctx context.Context) ([]db.ShiftSwap, error) {
	out := make([]db.ShiftSwap, 0, len(f.swaps))
	for _, rec := range f.swaps {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStore) GetLivePeriods(ctx context.Context) ([]int, error) {
	return f.livePeriods, nil
}

func (f *fakeStore) GetAnnouncements(ctx context.Context) ([]db.Announcement, error) {
	return f.announcements, nil
}

func (f *fakeStore) GetStaffingTargets(ctx context.Context) ([]db.StaffingTarget, error) {
	return f.targets, nil
}

func testEmployees() []model.Employee {
	return []model.Employee{
		{ID: "e1", Name: "Alice", Email: "alice@example.com", Active: true},
		{ID: "e2", Name: "Bob", Email: "bob@example.com", Active: true},
		{ID: "e3", Name: "Carol", Email: "carol@example.com", Active: true, IsAdmin: true},
		{ID: "e4", Name: "Olive", Email: "owner@example.com", Active: true, IsOwner: true},
		{ID: "e5", Name: "Dave", Email: "dave@example.com", Active: false},
	}
}

func newTestState(shifts ...model.Shift) *State {
	state := NewState(testAnchor)
	state.Employees = testEmployees()
	state.Shifts = schedule.NewStoreFrom(shifts)
	return state
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
