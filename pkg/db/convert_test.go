package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
)

func TestShiftRecord_MintsRowID(t *testing.T) {
	m := model.Shift{EmployeeID: "e1", Date: "2026-03-10", StartTime: "11:00", EndTime: "18:00", Role: model.RoleCashier}

	a := ShiftRecord(m)
	b := ShiftRecord(m)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "each record gets its own row ID")
	assert.Equal(t, m, a.Model())
}

func TestTimeOffRecord_RoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	m := requests.TimeOffRequest{
		ID:            "to-1",
		EmployeeName:  "Alice",
		EmployeeEmail: "alice@example.com",
		Dates:         []string{"2026-03-10", "2026-03-12"},
		Reason:        "family visit",
		Status:        requests.TimeOffPending,
		CreatedAt:     created,
	}

	rec := TimeOffRecord(m)
	assert.Equal(t, "2026-03-10,2026-03-12", rec.Dates)
	assert.Equal(t, "", rec.DecidedAt, "undecided requests store a blank timestamp")

	got := rec.Model()
	assert.Equal(t, m, got)
	assert.True(t, got.DecidedAt.IsZero())
}

func TestTimeOffRequest_ModelToleratesMessyDates(t *testing.T) {
	rec := TimeOffRequest{ID: "to-1", Dates: "2026-03-10, 2026-03-11,,"}

	got := rec.Model()
	assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, got.Dates)

	empty := TimeOffRequest{ID: "to-2"}
	assert.Nil(t, empty.Model().Dates)
}

func TestOfferRecord_RoundTrip(t *testing.T) {
	m := requests.ShiftOffer{
		ID:             "of-1",
		OffererName:    "Alice",
		OffererEmail:   "alice@example.com",
		RecipientName:  "Bob",
		RecipientEmail: "bob@example.com",
		ShiftDate:      "2026-03-10",
		ShiftStart:     "11:00",
		ShiftEnd:       "18:00",
		ShiftRole:      model.RoleCashier,
		Status:         requests.OfferAwaitingAdmin,
		CreatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		RecipientAt:    time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
	}

	rec := OfferRecord(m)
	assert.Equal(t, "awaiting_admin", rec.Status)
	assert.Equal(t, "", rec.AdminDecidedAt)

	require.Equal(t, m, rec.Model())
}

func TestSwapRecord_RoundTrip(t *testing.T) {
	m := requests.ShiftSwap{
		ID:             "sw-1",
		InitiatorName:  "Alice",
		InitiatorEmail: "alice@example.com",
		PartnerName:    "Bob",
		PartnerEmail:   "bob@example.com",
		InitiatorShift: requests.ShiftSnapshot{Date: "2026-03-10", Start: "11:00", End: "18:00", Role: model.RoleCashier},
		PartnerShift:   requests.ShiftSnapshot{Date: "2026-03-12", Start: "09:00", End: "16:00", Role: model.RoleMens},
		Status:         requests.SwapApproved,
		CreatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		PartnerAt:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		AdminDecidedAt: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		AdminDecidedBy: "carol@example.com",
	}

	rec := SwapRecord(m)
	assert.Equal(t, "2026-03-10", rec.InitiatorDate)
	assert.Equal(t, "2026-03-12", rec.PartnerDate)

	require.Equal(t, m, rec.Model())
}

func TestParseTime_BadValue(t *testing.T) {
	rec := ShiftOffer{ID: "of-1", CreatedAt: "yesterday-ish"}
	assert.True(t, rec.Model().CreatedAt.IsZero(), "unparseable timestamps degrade to zero")
}
