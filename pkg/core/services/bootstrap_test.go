package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

func TestLoadAll(t *testing.T) {
	store := newFakeStore()
	store.shifts = []db.Shift{
		{ID: "s1", EmployeeID: "e1", Date: "2026-03-02", StartTime: "11:00", EndTime: "18:00", Role: "cashier"},
		{ID: "s2", EmployeeID: "e2", Date: "2026-03-03", StartTime: "09:00", EndTime: "16:00", Role: "mens"},
		{ID: "s3", EmployeeID: "e1", Date: "2026-03-16", StartTime: "11:00", EndTime: "18:00", Role: "cashier"},
	}
	store.timeOff["to-1"] = db.TimeOffRequest{
		ID: "to-1", EmployeeName: "Alice", EmployeeEmail: "alice@example.com",
		Dates: "2026-03-20,2026-03-21", Status: "approved",
	}
	store.offers["of-1"] = db.ShiftOffer{
		ID: "of-1", OffererEmail: "bob@example.com", RecipientEmail: "alice@example.com",
		ShiftDate: "2026-03-16", Status: "awaiting_recipient",
	}
	store.swaps["sw-1"] = db.ShiftSwap{
		ID: "sw-1", InitiatorEmail: "alice@example.com", PartnerEmail: "bob@example.com",
		InitiatorDate: "2026-03-02", PartnerDate: "2026-03-03", Status: "cancelled",
	}
	store.livePeriods = []int{4}
	store.announcements = []db.Announcement{
		{ID: "a1", Subject: "old", Active: false},
		{ID: "a2", Subject: "current", Active: true},
	}
	store.targets = []db.StaffingTarget{{ID: "t1", Weekday: "Saturday", Target: 5}}

	state, err := LoadAll(context.Background(), store, testLogger(), testEmployees(), testAnchor)
	require.NoError(t, err)

	assert.Equal(t, 3, state.Shifts.Len())
	got, ok := state.Shifts.Get("e1", "2026-03-02")
	require.True(t, ok)
	assert.Equal(t, "11:00", got.StartTime)

	require.Len(t, state.Registry.TimeOff, 1)
	assert.Equal(t, []string{"2026-03-20", "2026-03-21"}, state.Registry.TimeOff[0].Dates)
	require.Len(t, state.Registry.Offers, 1)
	assert.Equal(t, requests.OfferAwaitingRecipient, state.Registry.Offers[0].Status)
	require.Len(t, state.Registry.Swaps, 1)
	assert.Equal(t, requests.SwapCancelled, state.Registry.Swaps[0].Status)

	// Period 4 went live from the persisted grid; the period-5 shift stays
	// admin-only
	assert.True(t, state.Gate.IsLive(4))
	assert.Len(t, state.Gate.PublishedShifts(), 2)
	assert.False(t, state.Gate.IsLive(5))

	require.NotNil(t, state.Announcement)
	assert.Equal(t, "current", state.Announcement.Subject)
	require.Len(t, state.StaffingTargets, 1)
	assert.Equal(t, 5, state.StaffingTargets[0].Target)

	// Outstanding invariant survives the reload
	kind, ok := state.Registry.Outstanding("bob@example.com")
	require.True(t, ok)
	assert.Equal(t, requests.KindOffer, kind)
	_, ok = state.Registry.Outstanding("alice@example.com")
	assert.False(t, ok, "cancelled swap and approved time off do not block")
}

func TestLoadAll_Empty(t *testing.T) {
	store := newFakeStore()

	state, err := LoadAll(context.Background(), store, testLogger(), testEmployees(), testAnchor)
	require.NoError(t, err)

	assert.Zero(t, state.Shifts.Len())
	assert.Empty(t, state.Gate.PublishedShifts())
	assert.Nil(t, state.Announcement)
}

func TestApprovedTimeOffOn(t *testing.T) {
	state := newTestState()
	state.Registry.AddTimeOff(requests.TimeOffRequest{
		ID: "to-1", EmployeeName: "Alice", EmployeeEmail: "alice@example.com",
		Dates: []string{"2026-03-10", "2026-03-11"}, Status: requests.TimeOffApproved,
	})
	state.Registry.AddTimeOff(requests.TimeOffRequest{
		ID: "to-2", EmployeeName: "Bob", EmployeeEmail: "bob@example.com",
		Dates: []string{"2026-03-10"}, Status: requests.TimeOffPending,
	})

	assert.Equal(t, []string{"Alice"}, state.ApprovedTimeOffOn("2026-03-10"), "pending requests are not time off yet")
	assert.Empty(t, state.ApprovedTimeOffOn("2026-03-12"))
}

func TestCurrentPeriod(t *testing.T) {
	state := newTestState()

	period, err := state.CurrentPeriod(testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, period)
}
