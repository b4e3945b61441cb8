package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
)

// Period 4 of the test anchor runs 2026-03-01 through 2026-03-14.
const testPeriod = 4

func TestSaveScheduleDraft(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-01"))
	store := newFakeStore()

	draft := []model.Shift{
		cashierShift("e1", "2026-03-02"),
		cashierShift("e2", "2026-03-03"),
	}

	report, err := SaveScheduleDraft(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod, draft)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Saved)
	assert.Empty(t, report.Failed)

	// The old draft entry for the period is gone, replaced by the new ones
	_, ok := state.Shifts.Get("e1", "2026-03-01")
	assert.False(t, ok)
	_, ok = state.Shifts.Get("e1", "2026-03-02")
	assert.True(t, ok)
	assert.Len(t, store.shifts, 2)
}

func TestSaveScheduleDraft_RequiresAdmin(t *testing.T) {
	state := newTestState()
	store := newFakeStore()

	_, err := SaveScheduleDraft(context.Background(), state, store, testLogger(), "alice@example.com", testPeriod, nil)
	var validation *requests.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSaveScheduleDraft_RejectsOutOfPeriodShift(t *testing.T) {
	state := newTestState()
	store := newFakeStore()

	_, err := SaveScheduleDraft(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod,
		[]model.Shift{cashierShift("e1", "2026-03-20")})
	var validation *requests.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSaveScheduleDraft_RollsBackOnPersistFailure(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-01"))
	store := newFakeStore()
	store.failReplace = true

	_, err := SaveScheduleDraft(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod,
		[]model.Shift{cashierShift("e2", "2026-03-02")})
	require.Error(t, err)

	// Original grid intact
	_, ok := state.Shifts.Get("e1", "2026-03-01")
	assert.True(t, ok)
	_, ok = state.Shifts.Get("e2", "2026-03-02")
	assert.False(t, ok)
}

func TestPublishPeriod(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-01"))
	store := newFakeStore()

	err := PublishPeriod(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod)
	require.NoError(t, err)

	assert.True(t, state.Gate.IsLive(testPeriod))
	assert.Equal(t, []int{testPeriod}, store.livePeriods)
	assert.Len(t, state.Gate.PublishedShifts(), 1)
}

func TestPublishPeriod_RequiresAdmin(t *testing.T) {
	state := newTestState()
	store := newFakeStore()

	err := PublishPeriod(context.Background(), state, store, testLogger(), "bob@example.com", testPeriod)
	var validation *requests.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestPublishPeriod_RetractsOnPersistFailure(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-01"))
	store := newFakeStore()
	store.failSaveLive = true

	err := PublishPeriod(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod)
	require.Error(t, err)

	assert.False(t, state.Gate.IsLive(testPeriod), "failed publish leaves the period unpublished")
	assert.Empty(t, state.Gate.PublishedShifts())
}

func TestSetPeriodEditMode(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-01"))
	store := newFakeStore()
	require.NoError(t, PublishPeriod(context.Background(), state, store, testLogger(), "carol@example.com", testPeriod))

	err := SetPeriodEditMode(state, testLogger(), "carol@example.com", testPeriod)
	require.NoError(t, err)

	assert.True(t, state.Gate.InEditMode(testPeriod))
	assert.True(t, state.Gate.IsLive(testPeriod))
	assert.Len(t, state.Gate.PublishedShifts(), 1, "snapshot stays visible")
}
