package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/rules"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// OfferStore is the slice of the database the offer lifecycle needs. Approval
// and revocation also move the underlying shift row.
type OfferStore interface {
	InsertShiftOffer(ctx context.Context, offer db.ShiftOffer) error
	UpdateShiftOffer(ctx context.Context, offer db.ShiftOffer) error
	ReassignShift(ctx context.Context, fromEmployeeID, toEmployeeID, date string) error
}

// SubmitShiftOffer validates and creates a "Take My Shift" offer. The shift
// content is snapshotted into the offer; the grid entry stays with the
// offerer until admin approval.
func SubmitShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	offererEmail, recipientEmail, shiftDate string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	offerer, err := state.EmployeeByEmail(offererEmail)
	if err != nil {
		return nil, err
	}
	if !offerer.Active || offerer.Deleted {
		return nil, requests.Validationf("%s is not an active employee", offererEmail)
	}
	recipient, err := state.EmployeeByEmail(recipientEmail)
	if err != nil {
		return nil, err
	}
	if !rules.IsSwapEligible(recipient) {
		return nil, requests.Validationf("%s cannot receive shift offers", recipient.Name)
	}

	shift, ok := state.Shifts.Get(offerer.ID, shiftDate)
	if !ok {
		return nil, requests.Validationf("%s has no shift on %s", offerer.Name, shiftDate)
	}
	if shiftDate <= model.FormatDate(now.AddDate(0, 0, 1)) {
		return nil, requests.Validationf("shift on %s is too soon to offer", shiftDate)
	}

	if kind, ok := state.Registry.Outstanding(offererEmail); ok {
		return nil, &requests.OutstandingRequestError{Kind: kind, Email: offererEmail}
	}
	if rules.IsShiftAlreadyOffered(state.Registry, offererEmail, shiftDate) {
		return nil, requests.Validationf("shift on %s is already offered", shiftDate)
	}
	if rules.RecipientAlreadyWorks(state.Shifts, recipient.ID, shiftDate) {
		return nil, requests.Validationf("%s already works on %s", recipient.Name, shiftDate)
	}

	offer := requests.ShiftOffer{
		ID:             uuid.New().String(),
		OffererName:    offerer.Name,
		OffererEmail:   offerer.Email,
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email,
		ShiftDate:      shift.Date,
		ShiftStart:     shift.StartTime,
		ShiftEnd:       shift.EndTime,
		ShiftRole:      shift.Role,
		Status:         requests.OfferAwaitingRecipient,
		CreatedAt:      now,
	}

	stored := state.Registry.AddOffer(offer)
	if err := store.InsertShiftOffer(ctx, db.OfferRecord(offer)); err != nil {
		state.Registry.RemoveOffer(offer.ID)
		return nil, fmt.Errorf("failed to save shift offer: %w", err)
	}

	logger.Info("shift offer submitted",
		zap.String("id", offer.ID),
		zap.String("offerer", offerer.Email),
		zap.String("recipient", recipient.Email),
		zap.String("date", shiftDate),
	)
	return stored, nil
}

// CancelShiftOffer withdraws an in-flight offer. Only the offerer may cancel.
func CancelShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, callerEmail string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}
	if offer.OffererEmail != callerEmail {
		return nil, requests.Validationf("only the offerer may cancel a shift offer")
	}

	prev := *offer
	if err := offer.Cancel(now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to save offer cancellation: %w", err)
	}

	logger.Info("shift offer cancelled", zap.String("id", id), zap.String("by", callerEmail))
	return offer, nil
}

// AcceptShiftOffer records the recipient's agreement and forwards the offer
// to the admin queue.
func AcceptShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, callerEmail string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}
	if offer.RecipientEmail != callerEmail {
		return nil, requests.Validationf("only the chosen recipient may accept this offer")
	}

	prev := *offer
	if err := offer.Accept(now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to save offer acceptance: %w", err)
	}

	logger.Info("shift offer accepted", zap.String("id", id), zap.String("by", callerEmail))
	return offer, nil
}

// DeclineShiftOffer records the recipient's refusal.
func DeclineShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, callerEmail, note string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}
	if offer.RecipientEmail != callerEmail {
		return nil, requests.Validationf("only the chosen recipient may decline this offer")
	}

	prev := *offer
	if err := offer.Decline(note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to save offer decline: %w", err)
	}

	logger.Info("shift offer declined", zap.String("id", id), zap.String("by", callerEmail))
	return offer, nil
}

// ApproveShiftOffer records the admin decision and reassigns the shift from
// the offerer to the recipient. The recipient's availability is re-checked
// here; it can have changed since submission.
func ApproveShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, adminEmail string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}

	offerer, err := state.EmployeeByEmail(offer.OffererEmail)
	if err != nil {
		return nil, err
	}
	recipient, err := state.EmployeeByEmail(offer.RecipientEmail)
	if err != nil {
		return nil, err
	}
	if offer.Status == requests.OfferAwaitingAdmin && rules.RecipientAlreadyWorks(state.Shifts, recipient.ID, offer.ShiftDate) {
		return nil, requests.Validationf("%s now works on %s; the offer cannot be approved", recipient.Name, offer.ShiftDate)
	}

	prev := *offer
	if err := offer.Approve(adminEmail, now); err != nil {
		return nil, err
	}
	if err := state.Shifts.Reassign(offerer.ID, recipient.ID, offer.ShiftDate); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to reassign shift: %w", err)
	}

	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		revertErr := state.Shifts.Reassign(recipient.ID, offerer.ID, offer.ShiftDate)
		if revertErr != nil {
			logger.Error("failed to revert shift reassignment", zap.String("id", id), zap.Error(revertErr))
		}
		*offer = prev
		return nil, fmt.Errorf("failed to save offer approval: %w", err)
	}
	if err := store.ReassignShift(ctx, offerer.ID, recipient.ID, offer.ShiftDate); err != nil {
		// The offer row is already approved; leave the in-memory grid
		// consistent with it and surface the row failure.
		logger.Error("shift row reassignment failed after approval", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("offer approved but shift row update failed: %w", err)
	}

	logger.Info("shift offer approved",
		zap.String("id", id),
		zap.String("by", adminEmail),
		zap.String("date", offer.ShiftDate),
	)
	return offer, nil
}

// RejectShiftOffer records an admin refusal; the shift stays with the offerer.
func RejectShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, adminEmail, note string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}

	prev := *offer
	if err := offer.Reject(adminEmail, note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to save offer rejection: %w", err)
	}

	logger.Info("shift offer rejected", zap.String("id", id), zap.String("by", adminEmail))
	return offer, nil
}

// RevokeShiftOffer reverses an approved offer, returning the shift to the
// offerer. Refused once the shift date has passed.
func RevokeShiftOffer(
	ctx context.Context,
	state *State,
	store OfferStore,
	logger *zap.Logger,
	id, adminEmail string,
	now time.Time,
) (*requests.ShiftOffer, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	offer, err := state.Registry.OfferByID(id)
	if err != nil {
		return nil, err
	}

	offerer, err := state.EmployeeByEmail(offer.OffererEmail)
	if err != nil {
		return nil, err
	}
	recipient, err := state.EmployeeByEmail(offer.RecipientEmail)
	if err != nil {
		return nil, err
	}

	prev := *offer
	if err := offer.Revoke(adminEmail, now); err != nil {
		return nil, err
	}
	if err := state.Shifts.Reassign(recipient.ID, offerer.ID, offer.ShiftDate); err != nil {
		*offer = prev
		return nil, fmt.Errorf("failed to return shift to offerer: %w", err)
	}

	if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
		revertErr := state.Shifts.Reassign(offerer.ID, recipient.ID, offer.ShiftDate)
		if revertErr != nil {
			logger.Error("failed to revert shift return", zap.String("id", id), zap.Error(revertErr))
		}
		*offer = prev
		return nil, fmt.Errorf("failed to save offer revocation: %w", err)
	}
	if err := store.ReassignShift(ctx, recipient.ID, offerer.ID, offer.ShiftDate); err != nil {
		logger.Error("shift row return failed after revocation", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("offer revoked but shift row update failed: %w", err)
	}

	logger.Info("shift offer revoked", zap.String("id", id), zap.String("by", adminEmail))
	return offer, nil
}
