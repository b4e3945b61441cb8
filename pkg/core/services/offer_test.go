package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

func cashierShift(employeeID, date string) model.Shift {
	return model.Shift{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  "11:00",
		EndTime:    "18:00",
		Role:       model.RoleCashier,
	}
}

func submitOffer(t *testing.T, state *State, store *fakeStore, offerer, recipient, date string) *requests.ShiftOffer {
	t.Helper()
	offer, err := SubmitShiftOffer(context.Background(), state, store, testLogger(), offerer, recipient, date, testNow)
	require.NoError(t, err)
	return offer
}

func TestSubmitShiftOffer_SnapshotsShift(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")

	assert.Equal(t, requests.OfferAwaitingRecipient, offer.Status)
	assert.Equal(t, "11:00", offer.ShiftStart)
	assert.Equal(t, "18:00", offer.ShiftEnd)
	assert.Equal(t, model.RoleCashier, offer.ShiftRole)

	// The grid entry has not moved
	_, ok := state.Shifts.Get("e1", "2026-03-10")
	assert.True(t, ok)
}

func TestSubmitShiftOffer_Validations(t *testing.T) {
	state := newTestState(
		cashierShift("e1", "2026-03-09"),
		cashierShift("e1", "2026-03-10"),
		cashierShift("e2", "2026-03-10"),
	)
	store := newFakeStore()
	var validation *requests.ValidationError

	// No shift on the date
	_, err := SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "bob@example.com", "2026-03-20", testNow)
	assert.ErrorAs(t, err, &validation)

	// Shift is tomorrow: too soon
	_, err = SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "bob@example.com", "2026-03-09", testNow)
	assert.ErrorAs(t, err, &validation)

	// Recipient is an admin
	_, err = SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "carol@example.com", "2026-03-10", testNow)
	assert.ErrorAs(t, err, &validation)

	// Recipient already works the date
	_, err = SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "bob@example.com", "2026-03-10", testNow)
	assert.ErrorAs(t, err, &validation)
}

func TestSubmitShiftOffer_DuplicateOfferBlocked(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")

	// Even after the first offer resolves the outstanding check, an active
	// offer on the same date is its own conflict
	_, err := SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "bob@example.com", "2026-03-10", testNow)
	var outstanding *requests.OutstandingRequestError
	require.ErrorAs(t, err, &outstanding)

	// Resolve the first, reoffer is fine
	_, err = DeclineShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", "", testNow)
	require.NoError(t, err)
	_, err = SubmitShiftOffer(context.Background(), state, store, testLogger(),
		"alice@example.com", "bob@example.com", "2026-03-10", testNow)
	assert.NoError(t, err)
}

func TestApproveShiftOffer_ReassignsShift(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()
	store.shifts = []db.Shift{db.ShiftRecord(cashierShift("e1", "2026-03-10"))}

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")
	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	require.NoError(t, err)

	approved, err := ApproveShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	require.NoError(t, err)
	assert.Equal(t, requests.OfferApproved, approved.Status)

	// Offerer slot empty, recipient slot holds identical content
	_, ok := state.Shifts.Get("e1", "2026-03-10")
	assert.False(t, ok)
	got, ok := state.Shifts.Get("e2", "2026-03-10")
	require.True(t, ok)
	assert.Equal(t, "11:00", got.StartTime)
	assert.Equal(t, "18:00", got.EndTime)
	assert.Equal(t, model.RoleCashier, got.Role)

	// The shift row moved too
	require.Equal(t, 1, store.reassignCalls)
	assert.Equal(t, "e2", store.shifts[0].EmployeeID)
}

func TestApproveShiftOffer_LazyConflictCheck(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")
	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	require.NoError(t, err)

	// Bob picks up a shift on the same date before the admin decides
	state.Shifts.Set(cashierShift("e2", "2026-03-10"))

	_, err = ApproveShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	var validation *requests.ValidationError
	require.ErrorAs(t, err, &validation)

	// Offer stays decidable, nothing moved
	current, err := state.Registry.OfferByID(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, requests.OfferAwaitingAdmin, current.Status)
	_, ok := state.Shifts.Get("e1", "2026-03-10")
	assert.True(t, ok)
}

func TestApproveShiftOffer_RequiresAdmin(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")
	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	require.NoError(t, err)

	_, err = ApproveShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	var validation *requests.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestApproveShiftOffer_RevertsOnPersistFailure(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")
	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	require.NoError(t, err)

	store.failUpdate = true
	_, err = ApproveShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	require.Error(t, err)

	// Grid and status both reverted
	_, ok := state.Shifts.Get("e1", "2026-03-10")
	assert.True(t, ok)
	current, err := state.Registry.OfferByID(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, requests.OfferAwaitingAdmin, current.Status)
}

func TestAcceptShiftOffer_OnlyRecipient(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")

	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	var validation *requests.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestRevokeShiftOffer_RestoresOriginalSlot(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()
	store.shifts = []db.Shift{db.ShiftRecord(cashierShift("e1", "2026-03-10"))}

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")
	_, err := AcceptShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "bob@example.com", testNow)
	require.NoError(t, err)
	_, err = ApproveShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	require.NoError(t, err)

	revoked, err := RevokeShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "carol@example.com", testNow)
	require.NoError(t, err)
	assert.Equal(t, requests.OfferRevoked, revoked.Status)

	// Exact inverse of the approval
	got, ok := state.Shifts.Get("e1", "2026-03-10")
	require.True(t, ok)
	assert.Equal(t, "11:00", got.StartTime)
	_, ok = state.Shifts.Get("e2", "2026-03-10")
	assert.False(t, ok)
	assert.Equal(t, "e1", store.shifts[0].EmployeeID)
}

func TestCancelShiftOffer_UnblocksOfferer(t *testing.T) {
	state := newTestState(cashierShift("e1", "2026-03-10"))
	store := newFakeStore()

	offer := submitOffer(t, state, store, "alice@example.com", "bob@example.com", "2026-03-10")

	_, err := CancelShiftOffer(context.Background(), state, store, testLogger(), offer.ID, "alice@example.com", testNow)
	require.NoError(t, err)

	_, ok := state.Registry.Outstanding("alice@example.com")
	assert.False(t, ok)
}
