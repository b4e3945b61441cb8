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

// SwapStore is the slice of the database the swap lifecycle needs.
type SwapStore interface {
	InsertShiftSwap(ctx context.Context, swap db.ShiftSwap) error
	UpdateShiftSwap(ctx context.Context, swap db.ShiftSwap) error
	SwapShifts(ctx context.Context, aEmployeeID, dateA, bEmployeeID, dateB string) error
}

// SubmitShiftSwap validates and creates a swap proposal: the initiator's
// shift for the partner's shift. Both sides are snapshotted at proposal time.
func SubmitShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	initiatorEmail, partnerEmail, myDate, theirDate string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	initiator, err := state.EmployeeByEmail(initiatorEmail)
	if err != nil {
		return nil, err
	}
	if !initiator.Active || initiator.Deleted {
		return nil, requests.Validationf("%s is not an active employee", initiatorEmail)
	}
	partner, err := state.EmployeeByEmail(partnerEmail)
	if err != nil {
		return nil, err
	}
	if !rules.IsSwapEligible(partner) {
		return nil, requests.Validationf("%s cannot take part in shift swaps", partner.Name)
	}

	myShift, ok := state.Shifts.Get(initiator.ID, myDate)
	if !ok {
		return nil, requests.Validationf("%s has no shift on %s", initiator.Name, myDate)
	}
	theirShift, ok := state.Shifts.Get(partner.ID, theirDate)
	if !ok {
		return nil, requests.Validationf("%s has no shift on %s", partner.Name, theirDate)
	}

	cutoff := model.FormatDate(now.AddDate(0, 0, 1))
	if myDate <= cutoff {
		return nil, requests.Validationf("shift on %s is too soon to swap", myDate)
	}
	if theirDate <= cutoff {
		return nil, requests.Validationf("shift on %s is too soon to swap", theirDate)
	}
	// Swapping same-day shifts with each other is a no-op for coverage but
	// still legal; swapping across days must not double-book either side.
	if myDate != theirDate {
		if rules.RecipientAlreadyWorks(state.Shifts, partner.ID, myDate) {
			return nil, requests.Validationf("%s already works on %s", partner.Name, myDate)
		}
		if rules.RecipientAlreadyWorks(state.Shifts, initiator.ID, theirDate) {
			return nil, requests.Validationf("%s already works on %s", initiator.Name, theirDate)
		}
	}

	if kind, ok := state.Registry.Outstanding(initiatorEmail); ok {
		return nil, &requests.OutstandingRequestError{Kind: kind, Email: initiatorEmail}
	}
	if rules.IsSwapAlreadyPending(state.Registry, initiatorEmail, myDate, partnerEmail, theirDate) {
		return nil, requests.Validationf("a swap for these shifts is already pending")
	}

	swap := requests.ShiftSwap{
		ID:             uuid.New().String(),
		InitiatorName:  initiator.Name,
		InitiatorEmail: initiator.Email,
		PartnerName:    partner.Name,
		PartnerEmail:   partner.Email,
		InitiatorShift: requests.ShiftSnapshot{
			Date:  myShift.Date,
			Start: myShift.StartTime,
			End:   myShift.EndTime,
			Role:  myShift.Role,
		},
		PartnerShift: requests.ShiftSnapshot{
			Date:  theirShift.Date,
			Start: theirShift.StartTime,
			End:   theirShift.EndTime,
			Role:  theirShift.Role,
		},
		Status:    requests.SwapAwaitingPartner,
		CreatedAt: now,
	}

	stored := state.Registry.AddSwap(swap)
	if err := store.InsertShiftSwap(ctx, db.SwapRecord(swap)); err != nil {
		state.Registry.RemoveSwap(swap.ID)
		return nil, fmt.Errorf("failed to save shift swap: %w", err)
	}

	logger.Info("shift swap submitted",
		zap.String("id", swap.ID),
		zap.String("initiator", initiator.Email),
		zap.String("partner", partner.Email),
		zap.String("initiator_date", myDate),
		zap.String("partner_date", theirDate),
	)
	return stored, nil
}

// CancelShiftSwap withdraws an in-flight swap. Only the initiator may cancel.
func CancelShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, callerEmail string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}
	if swap.InitiatorEmail != callerEmail {
		return nil, requests.Validationf("only the initiator may cancel a shift swap")
	}

	prev := *swap
	if err := swap.Cancel(now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to save swap cancellation: %w", err)
	}

	logger.Info("shift swap cancelled", zap.String("id", id), zap.String("by", callerEmail))
	return swap, nil
}

// AcceptShiftSwap records the partner's agreement and forwards the swap to
// the admin queue. No shift moves yet.
func AcceptShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, callerEmail string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}
	if swap.PartnerEmail != callerEmail {
		return nil, requests.Validationf("only the chosen partner may accept this swap")
	}

	prev := *swap
	if err := swap.Accept(now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to save swap acceptance: %w", err)
	}

	logger.Info("shift swap accepted", zap.String("id", id), zap.String("by", callerEmail))
	return swap, nil
}

// DeclineShiftSwap records the partner's refusal.
func DeclineShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, callerEmail, note string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}
	if swap.PartnerEmail != callerEmail {
		return nil, requests.Validationf("only the chosen partner may decline this swap")
	}

	prev := *swap
	if err := swap.Decline(note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to save swap decline: %w", err)
	}

	logger.Info("shift swap declined", zap.String("id", id), zap.String("by", callerEmail))
	return swap, nil
}

// ApproveShiftSwap records the admin decision and exchanges both shifts in
// one step, so the swap also works when both shifts fall on the same date.
// Both parties' availability is re-checked here; either side can have picked
// up a shift on the other's date since acceptance.
func ApproveShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, adminEmail string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}

	initiator, err := state.EmployeeByEmail(swap.InitiatorEmail)
	if err != nil {
		return nil, err
	}
	partner, err := state.EmployeeByEmail(swap.PartnerEmail)
	if err != nil {
		return nil, err
	}
	if swap.Status == requests.SwapAwaitingAdmin && swap.InitiatorShift.Date != swap.PartnerShift.Date {
		if rules.RecipientAlreadyWorks(state.Shifts, partner.ID, swap.InitiatorShift.Date) {
			return nil, requests.Validationf("%s now works on %s; the swap cannot be approved", partner.Name, swap.InitiatorShift.Date)
		}
		if rules.RecipientAlreadyWorks(state.Shifts, initiator.ID, swap.PartnerShift.Date) {
			return nil, requests.Validationf("%s now works on %s; the swap cannot be approved", initiator.Name, swap.PartnerShift.Date)
		}
	}

	prev := *swap
	if err := swap.Approve(adminEmail, now); err != nil {
		return nil, err
	}
	if err := state.Shifts.Exchange(initiator.ID, swap.InitiatorShift.Date, partner.ID, swap.PartnerShift.Date); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to exchange shifts: %w", err)
	}

	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		revertErr := state.Shifts.Exchange(partner.ID, swap.InitiatorShift.Date, initiator.ID, swap.PartnerShift.Date)
		if revertErr != nil {
			logger.Error("failed to revert shift exchange", zap.String("id", id), zap.Error(revertErr))
		}
		*swap = prev
		return nil, fmt.Errorf("failed to save swap approval: %w", err)
	}
	if err := store.SwapShifts(ctx, initiator.ID, swap.InitiatorShift.Date, partner.ID, swap.PartnerShift.Date); err != nil {
		logger.Error("shift row exchange failed after approval", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("swap approved but shift row update failed: %w", err)
	}

	logger.Info("shift swap approved", zap.String("id", id), zap.String("by", adminEmail))
	return swap, nil
}

// RejectShiftSwap records an admin refusal; neither shift moves.
func RejectShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, adminEmail, note string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}

	prev := *swap
	if err := swap.Reject(adminEmail, note, now); err != nil {
		return nil, err
	}
	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to save swap rejection: %w", err)
	}

	logger.Info("shift swap rejected", zap.String("id", id), zap.String("by", adminEmail))
	return swap, nil
}

// RevokeShiftSwap reverses an approved swap, exchanging both shifts back.
// Refused entirely if either shift date has passed.
func RevokeShiftSwap(
	ctx context.Context,
	state *State,
	store SwapStore,
	logger *zap.Logger,
	id, adminEmail string,
	now time.Time,
) (*requests.ShiftSwap, error) {
	if err := state.requireAdmin(adminEmail); err != nil {
		return nil, err
	}
	swap, err := state.Registry.SwapByID(id)
	if err != nil {
		return nil, err
	}

	initiator, err := state.EmployeeByEmail(swap.InitiatorEmail)
	if err != nil {
		return nil, err
	}
	partner, err := state.EmployeeByEmail(swap.PartnerEmail)
	if err != nil {
		return nil, err
	}

	prev := *swap
	if err := swap.Revoke(adminEmail, now); err != nil {
		return nil, err
	}
	// After approval the partner holds the initiator's old date and vice
	// versa; the reverse exchange runs with the sides flipped.
	if err := state.Shifts.Exchange(partner.ID, swap.InitiatorShift.Date, initiator.ID, swap.PartnerShift.Date); err != nil {
		*swap = prev
		return nil, fmt.Errorf("failed to reverse shift exchange: %w", err)
	}

	if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
		revertErr := state.Shifts.Exchange(initiator.ID, swap.InitiatorShift.Date, partner.ID, swap.PartnerShift.Date)
		if revertErr != nil {
			logger.Error("failed to revert reverse exchange", zap.String("id", id), zap.Error(revertErr))
		}
		*swap = prev
		return nil, fmt.Errorf("failed to save swap revocation: %w", err)
	}
	if err := store.SwapShifts(ctx, partner.ID, swap.InitiatorShift.Date, initiator.ID, swap.PartnerShift.Date); err != nil {
		logger.Error("shift row reverse exchange failed after revocation", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("swap revoked but shift row update failed: %w", err)
	}

	logger.Info("shift swap revoked", zap.String("id", id), zap.String("by", adminEmail))
	return swap, nil
}
