package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

const anchor = "2026-01-04"

func TestPeriodIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-04", 0},
		{"2026-01-17", 0},
		{"2026-01-18", 1},
		{"2026-02-01", 2},
		{"2026-01-03", -1},
		{"2025-12-21", -1},
		{"2025-12-20", -2},
	}

	for _, tt := range tests {
		got, err := PeriodIndex(tt.date, anchor)
		require.NoError(t, err, tt.date)
		assert.Equal(t, tt.want, got, "period for %s", tt.date)
	}
}

func TestPeriodIndex_InvalidInput(t *testing.T) {
	_, err := PeriodIndex("not-a-date", anchor)
	assert.Error(t, err)

	_, err = PeriodIndex("2026-01-04", "bad-anchor")
	assert.Error(t, err)
}

func TestPeriodDates(t *testing.T) {
	dates, err := PeriodDates(1, anchor)
	require.NoError(t, err)
	require.Len(t, dates, PeriodDays)
	assert.Equal(t, "2026-01-18", dates[0])
	assert.Equal(t, "2026-01-31", dates[13])

	// Every date maps back to the period it came from
	for _, date := range dates {
		idx, err := PeriodIndex(date, anchor)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	}
}

func TestGate_UnseenPeriodDefaultsToEditMode(t *testing.T) {
	gate := NewGate(anchor)
	assert.True(t, gate.InEditMode(0))
	assert.False(t, gate.IsLive(0))
	assert.Empty(t, gate.PublishedShifts())
}

func TestGate_GoLivePublishesPeriodSnapshot(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
		shift("e2", "2026-01-20", "09:00", "17:00", model.RoleMens),
	})

	require.NoError(t, gate.GoLive(0, store))

	assert.True(t, gate.IsLive(0))
	assert.False(t, gate.InEditMode(0))
	assert.Equal(t, []int{0}, gate.LivePeriods())

	published := gate.PublishedShifts()
	require.Len(t, published, 1)
	assert.Equal(t, "2026-01-05", published[0].Date, "period 1 shift stays unpublished")
}

func TestGate_EditModeKeepsSnapshotVisible(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
	})
	require.NoError(t, gate.GoLive(0, store))

	gate.SetEditMode(0)

	// Draft edits after going back to edit mode
	store.Set(shift("e2", "2026-01-06", "09:00", "17:00", model.RoleMens))

	assert.True(t, gate.InEditMode(0))
	assert.True(t, gate.IsLive(0), "edit mode does not retract the period")

	published := gate.PublishedShifts()
	require.Len(t, published, 1, "new draft shift is invisible until the next publish")
	assert.Equal(t, "e1", published[0].EmployeeID)
}

func TestGate_RepublishRefreshesSnapshot(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
	})
	require.NoError(t, gate.GoLive(0, store))

	store.Remove("e1", "2026-01-05")
	store.Set(shift("e2", "2026-01-06", "09:00", "17:00", model.RoleMens))
	require.NoError(t, gate.GoLive(0, store))

	published := gate.PublishedShifts()
	require.Len(t, published, 1)
	assert.Equal(t, "e2", published[0].EmployeeID)
}

func TestGate_Retract(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
	})
	require.NoError(t, gate.GoLive(0, store))

	require.NoError(t, gate.Retract(0))

	assert.False(t, gate.IsLive(0))
	assert.True(t, gate.InEditMode(0))
	assert.Empty(t, gate.PublishedShifts())
}

func TestGate_RestoreLive(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
		shift("e2", "2026-01-20", "09:00", "17:00", model.RoleMens),
		shift("e3", "2026-02-02", "09:00", "17:00", model.RoleWomens),
	})

	require.NoError(t, gate.RestoreLive([]int{0, 1}, store))

	assert.Equal(t, []int{0, 1}, gate.LivePeriods())
	assert.Len(t, gate.PublishedShifts(), 2, "period 2 stays unpublished")
}

func TestGate_PublishedFor(t *testing.T) {
	gate := NewGate(anchor)
	store := NewStoreFrom([]model.Shift{
		shift("e1", "2026-01-05", "09:00", "17:00", model.RoleCashier),
		shift("e2", "2026-01-06", "09:00", "17:00", model.RoleMens),
	})
	require.NoError(t, gate.GoLive(0, store))

	mine := gate.PublishedFor("e1")
	require.Len(t, mine, 1)
	assert.Equal(t, "2026-01-05", mine[0].Date)
}
