package requests

import (
	"time"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

type SwapStatus string

const (
	SwapAwaitingPartner SwapStatus = "awaiting_partner"
	SwapPartnerRejected SwapStatus = "partner_rejected"
	SwapAwaitingAdmin   SwapStatus = "awaiting_admin"
	SwapApproved        SwapStatus = "approved"
	SwapRejected        SwapStatus = "rejected"
	SwapCancelled       SwapStatus = "cancelled"
	SwapExpired         SwapStatus = "expired"
	SwapRevoked         SwapStatus = "revoked"
)

// Active reports whether the swap is still in flight and therefore counts
// against the initiator's single outstanding request.
func (s SwapStatus) Active() bool {
	return s == SwapAwaitingPartner || s == SwapAwaitingAdmin
}

// ShiftSnapshot freezes the content of one side of a swap at proposal time.
// The live grid entry may be mutated or removed later by the swap itself.
type ShiftSnapshot struct {
	Date  string // Date format
	Start string // Time format
	End   string
	Role  model.Role
}

// ShiftSwap is a bilateral exchange of one shift each between the initiator
// and a partner, admin-gated like offers.
type ShiftSwap struct {
	ID             string
	InitiatorName  string
	InitiatorEmail string
	PartnerName    string
	PartnerEmail   string
	InitiatorShift ShiftSnapshot
	PartnerShift   ShiftSnapshot
	Status         SwapStatus
	PartnerNote    string
	AdminNote      string
	CreatedAt      time.Time
	PartnerAt      time.Time // partner responded
	AdminDecidedAt time.Time
	AdminDecidedBy string
	RevokedAt      time.Time
}

// Cancel lets the initiator withdraw while the swap is still in flight.
func (s *ShiftSwap) Cancel(now time.Time) error {
	if !s.Status.Active() {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: "awaiting partner or admin"}
	}
	s.Status = SwapCancelled
	s.AdminDecidedAt = now
	return nil
}

// Accept records the partner's agreement. No shift moves yet.
func (s *ShiftSwap) Accept(now time.Time) error {
	if s.Status != SwapAwaitingPartner {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: string(SwapAwaitingPartner)}
	}
	s.Status = SwapAwaitingAdmin
	s.PartnerAt = now
	return nil
}

// Decline records the partner's refusal, with an optional note.
func (s *ShiftSwap) Decline(note string, now time.Time) error {
	if s.Status != SwapAwaitingPartner {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: string(SwapAwaitingPartner)}
	}
	s.Status = SwapPartnerRejected
	s.PartnerNote = note
	s.PartnerAt = now
	return nil
}

// Approve records the admin decision. The caller performs the matching grid
// exchange.
func (s *ShiftSwap) Approve(by string, now time.Time) error {
	if s.Status != SwapAwaitingAdmin {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: string(SwapAwaitingAdmin)}
	}
	s.Status = SwapApproved
	s.AdminDecidedAt = now
	s.AdminDecidedBy = by
	return nil
}

// Reject records an admin refusal; neither shift moves.
func (s *ShiftSwap) Reject(by, note string, now time.Time) error {
	if s.Status != SwapAwaitingAdmin {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: string(SwapAwaitingAdmin)}
	}
	s.Status = SwapRejected
	s.AdminNote = note
	s.AdminDecidedAt = now
	s.AdminDecidedBy = by
	return nil
}

// Revoke reverses an approved swap. Refused entirely if either shift date
// has passed; a partial reversal would leave the grid inconsistent.
func (s *ShiftSwap) Revoke(by string, now time.Time) error {
	if s.Status != SwapApproved {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: string(SwapApproved)}
	}
	today := model.FormatDate(now)
	if s.InitiatorShift.Date < today || s.PartnerShift.Date < today {
		return Validationf("cannot revoke swap %s: one of the shift dates has passed", s.ID)
	}
	s.Status = SwapRevoked
	s.RevokedAt = now
	s.AdminDecidedBy = by
	return nil
}

// Expire marks an in-flight swap where either shift date passed before it
// was resolved.
func (s *ShiftSwap) Expire(now time.Time) error {
	if !s.Status.Active() {
		return &NotInStateError{Kind: KindSwap, ID: s.ID, Status: string(s.Status), Want: "awaiting partner or admin"}
	}
	s.Status = SwapExpired
	s.AdminDecidedAt = now
	return nil
}
