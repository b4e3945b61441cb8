package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

// ExpireStore is the slice of the database the expiry sweep needs.
type ExpireStore interface {
	UpdateShiftOffer(ctx context.Context, offer db.ShiftOffer) error
	UpdateShiftSwap(ctx context.Context, swap db.ShiftSwap) error
}

// ExpireStaleRequests sweeps offers and swaps that are still in flight after
// their shift dates passed and marks them expired. A request whose row fails
// to save is reverted in memory and retried on the next sweep. Expired
// requests no longer count as outstanding, so the sweep also unblocks
// employees whose only open request went stale.
func ExpireStaleRequests(
	ctx context.Context,
	state *State,
	store ExpireStore,
	logger *zap.Logger,
	now time.Time,
) (int, error) {
	today := model.FormatDate(now)
	expired := 0
	var errs []error

	for i := range state.Registry.Offers {
		offer := &state.Registry.Offers[i]
		if !offer.Status.Active() || offer.ShiftDate >= today {
			continue
		}
		prev := *offer
		if err := offer.Expire(now); err != nil {
			continue
		}
		if err := store.UpdateShiftOffer(ctx, db.OfferRecord(*offer)); err != nil {
			*offer = prev
			logger.Warn("failed to save offer expiry", zap.String("id", offer.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		logger.Info("shift offer expired", zap.String("id", offer.ID), zap.String("date", offer.ShiftDate))
		expired++
	}

	for i := range state.Registry.Swaps {
		swap := &state.Registry.Swaps[i]
		if !swap.Status.Active() {
			continue
		}
		if swap.InitiatorShift.Date >= today && swap.PartnerShift.Date >= today {
			continue
		}
		prev := *swap
		if err := swap.Expire(now); err != nil {
			continue
		}
		if err := store.UpdateShiftSwap(ctx, db.SwapRecord(*swap)); err != nil {
			*swap = prev
			logger.Warn("failed to save swap expiry", zap.String("id", swap.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		logger.Info("shift swap expired", zap.String("id", swap.ID))
		expired++
	}

	return expired, errors.Join(errs...)
}
