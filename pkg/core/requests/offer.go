package requests

import (
	"time"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

type OfferStatus string

const (
	OfferAwaitingRecipient OfferStatus = "awaiting_recipient"
	OfferRecipientRejected OfferStatus = "recipient_rejected"
	OfferAwaitingAdmin     OfferStatus = "awaiting_admin"
	OfferApproved          OfferStatus = "approved"
	OfferRejected          OfferStatus = "rejected"
	OfferCancelled         OfferStatus = "cancelled"
	OfferExpired           OfferStatus = "expired"
	OfferRevoked           OfferStatus = "revoked"
)

// Active reports whether the offer is still in flight and therefore counts
// against the offerer's single outstanding request.
func (s OfferStatus) Active() bool {
	return s == OfferAwaitingRecipient || s == OfferAwaitingAdmin
}

// ShiftOffer is a unilateral give-away of one shift to a chosen recipient
// ("Take My Shift"). The shift snapshot is captured at submission; the live
// grid entry only moves on admin approval.
type ShiftOffer struct {
	ID             string
	OffererName    string
	OffererEmail   string
	RecipientName  string
	RecipientEmail string
	ShiftDate      string // Date format
	ShiftStart     string // Time format
	ShiftEnd       string
	ShiftRole      model.Role
	Status         OfferStatus
	RecipientNote  string
	AdminNote      string
	CreatedAt      time.Time
	RecipientAt    time.Time // recipient responded
	AdminDecidedAt time.Time
	AdminDecidedBy string
	RevokedAt      time.Time
}

// Cancel lets the offerer withdraw while the offer is still in flight.
func (o *ShiftOffer) Cancel(now time.Time) error {
	if !o.Status.Active() {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: "awaiting recipient or admin"}
	}
	o.Status = OfferCancelled
	o.AdminDecidedAt = now
	return nil
}

// Accept records the recipient's agreement. The shift is not yet moved;
// admin approval is required first.
func (o *ShiftOffer) Accept(now time.Time) error {
	if o.Status != OfferAwaitingRecipient {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: string(OfferAwaitingRecipient)}
	}
	o.Status = OfferAwaitingAdmin
	o.RecipientAt = now
	return nil
}

// Decline records the recipient's refusal, with an optional note.
func (o *ShiftOffer) Decline(note string, now time.Time) error {
	if o.Status != OfferAwaitingRecipient {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: string(OfferAwaitingRecipient)}
	}
	o.Status = OfferRecipientRejected
	o.RecipientNote = note
	o.RecipientAt = now
	return nil
}

// Approve records the admin decision. The caller is responsible for the
// matching shift reassignment.
func (o *ShiftOffer) Approve(by string, now time.Time) error {
	if o.Status != OfferAwaitingAdmin {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: string(OfferAwaitingAdmin)}
	}
	o.Status = OfferApproved
	o.AdminDecidedAt = now
	o.AdminDecidedBy = by
	return nil
}

// Reject records an admin refusal; the shift stays with the offerer.
func (o *ShiftOffer) Reject(by, note string, now time.Time) error {
	if o.Status != OfferAwaitingAdmin {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: string(OfferAwaitingAdmin)}
	}
	o.Status = OfferRejected
	o.AdminNote = note
	o.AdminDecidedAt = now
	o.AdminDecidedBy = by
	return nil
}

// Revoke reverses an approved offer. Refused once the shift date has passed.
func (o *ShiftOffer) Revoke(by string, now time.Time) error {
	if o.Status != OfferApproved {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: string(OfferApproved)}
	}
	if o.ShiftDate < model.FormatDate(now) {
		return Validationf("cannot revoke offer %s: shift date %s has passed", o.ID, o.ShiftDate)
	}
	o.Status = OfferRevoked
	o.RevokedAt = now
	o.AdminDecidedBy = by
	return nil
}

// Expire marks an in-flight offer whose shift date passed before anyone
// resolved it.
func (o *ShiftOffer) Expire(now time.Time) error {
	if !o.Status.Active() {
		return &NotInStateError{Kind: KindOffer, ID: o.ID, Status: string(o.Status), Want: "awaiting recipient or admin"}
	}
	o.Status = OfferExpired
	o.AdminDecidedAt = now
	return nil
}
