package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OutstandingCoversAllThreeKinds(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Outstanding("alice@example.com")
	assert.False(t, ok)

	reg.AddTimeOff(pendingTimeOff())
	kind, ok := reg.Outstanding("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, KindTimeOff, kind)

	reg = NewRegistry()
	reg.AddOffer(awaitingOffer())
	kind, ok = reg.Outstanding("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, KindOffer, kind)

	reg = NewRegistry()
	reg.AddSwap(awaitingSwap())
	kind, ok = reg.Outstanding("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, KindSwap, kind)
}

func TestRegistry_BeingRecipientDoesNotBlock(t *testing.T) {
	reg := NewRegistry()
	reg.AddOffer(awaitingOffer())
	reg.AddSwap(awaitingSwap())

	// Bob is the recipient of the offer and the partner of the swap
	_, ok := reg.Outstanding("bob@example.com")
	assert.False(t, ok, "incoming requests never block the recipient")
}

func TestRegistry_TerminalRequestsDoNotBlock(t *testing.T) {
	reg := NewRegistry()

	req := pendingTimeOff()
	req.Status = TimeOffDenied
	reg.AddTimeOff(req)

	offer := awaitingOffer()
	offer.Status = OfferCancelled
	reg.AddOffer(offer)

	_, ok := reg.Outstanding("alice@example.com")
	assert.False(t, ok)
}

func TestRegistry_ByIDReturnsLivePointer(t *testing.T) {
	reg := NewRegistry()
	reg.AddTimeOff(pendingTimeOff())

	req, err := reg.TimeOffByID("to-1")
	require.NoError(t, err)

	require.NoError(t, req.Cancel("alice@example.com", testNow))

	// The mutation is visible through the registry
	again, err := reg.TimeOffByID("to-1")
	require.NoError(t, err)
	assert.Equal(t, TimeOffCancelled, again.Status)
}

func TestRegistry_ByIDNotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.TimeOffByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.OfferByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.SwapByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_RemoveRollsBackSubmission(t *testing.T) {
	reg := NewRegistry()
	reg.AddOffer(awaitingOffer())

	reg.RemoveOffer("of-1")

	_, err := reg.OfferByID("of-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := reg.Outstanding("alice@example.com")
	assert.False(t, ok)
}
