package requests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

func awaitingOffer() ShiftOffer {
	return ShiftOffer{
		ID:             "of-1",
		OffererName:    "Alice",
		OffererEmail:   "alice@example.com",
		RecipientName:  "Bob",
		RecipientEmail: "bob@example.com",
		ShiftDate:      "2026-03-10",
		ShiftStart:     "11:00",
		ShiftEnd:       "18:00",
		ShiftRole:      model.RoleCashier,
		Status:         OfferAwaitingRecipient,
		CreatedAt:      testNow,
	}
}

func TestOffer_HappyPath(t *testing.T) {
	offer := awaitingOffer()

	require.NoError(t, offer.Accept(testNow))
	assert.Equal(t, OfferAwaitingAdmin, offer.Status)
	assert.Equal(t, testNow, offer.RecipientAt)

	require.NoError(t, offer.Approve("admin@example.com", testNow))
	assert.Equal(t, OfferApproved, offer.Status)
	assert.Equal(t, "admin@example.com", offer.AdminDecidedBy)
}

func TestOffer_Decline(t *testing.T) {
	offer := awaitingOffer()

	require.NoError(t, offer.Decline("can't make it", testNow))
	assert.Equal(t, OfferRecipientRejected, offer.Status)
	assert.Equal(t, "can't make it", offer.RecipientNote)

	// Declined offers cannot move again
	var notInState *NotInStateError
	assert.ErrorAs(t, offer.Accept(testNow), &notInState)
	assert.ErrorAs(t, offer.Approve("a", testNow), &notInState)
}

func TestOffer_CancelWhileActive(t *testing.T) {
	offer := awaitingOffer()
	require.NoError(t, offer.Cancel(testNow))
	assert.Equal(t, OfferCancelled, offer.Status)

	offer = awaitingOffer()
	require.NoError(t, offer.Accept(testNow))
	require.NoError(t, offer.Cancel(testNow), "cancel is allowed while awaiting admin")
	assert.Equal(t, OfferCancelled, offer.Status)
}

func TestOffer_ApproveRequiresRecipientAcceptance(t *testing.T) {
	offer := awaitingOffer()

	err := offer.Approve("admin@example.com", testNow)
	var notInState *NotInStateError
	require.ErrorAs(t, err, &notInState)
	assert.Equal(t, OfferAwaitingRecipient, offer.Status)
}

func TestOffer_RejectRecordsNote(t *testing.T) {
	offer := awaitingOffer()
	require.NoError(t, offer.Accept(testNow))

	require.NoError(t, offer.Reject("admin@example.com", "coverage issue", testNow))
	assert.Equal(t, OfferRejected, offer.Status)
	assert.Equal(t, "coverage issue", offer.AdminNote)
}

func TestOffer_RevokeBeforeShiftDate(t *testing.T) {
	offer := awaitingOffer()
	require.NoError(t, offer.Accept(testNow))
	require.NoError(t, offer.Approve("admin@example.com", testNow))

	require.NoError(t, offer.Revoke("admin@example.com", testNow))
	assert.Equal(t, OfferRevoked, offer.Status)
	assert.Equal(t, testNow, offer.RevokedAt)
}

func TestOffer_RevokeRefusedAfterShiftDate(t *testing.T) {
	offer := awaitingOffer()
	require.NoError(t, offer.Accept(testNow))
	require.NoError(t, offer.Approve("admin@example.com", testNow))

	later := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	err := offer.Revoke("admin@example.com", later)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, OfferApproved, offer.Status)
}

func TestOffer_ExpireOnlyWhileActive(t *testing.T) {
	offer := awaitingOffer()
	require.NoError(t, offer.Expire(testNow))
	assert.Equal(t, OfferExpired, offer.Status)

	var notInState *NotInStateError
	assert.ErrorAs(t, offer.Expire(testNow), &notInState)
}

func TestOfferStatus_Active(t *testing.T) {
	assert.True(t, OfferAwaitingRecipient.Active())
	assert.True(t, OfferAwaitingAdmin.Active())
	assert.False(t, OfferApproved.Active())
	assert.False(t, OfferRejected.Active())
	assert.False(t, OfferRecipientRejected.Active())
	assert.False(t, OfferCancelled.Active())
	assert.False(t, OfferExpired.Active())
	assert.False(t, OfferRevoked.Active())
}
