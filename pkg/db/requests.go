package db

import (
	"context"
	"fmt"

	"github.com/sarvistore/shiftdesk/pkg/sheetssql"
)

// GetTimeOffRequests retrieves all time-off request records
func (db *DB) GetTimeOffRequests(ctx context.Context) ([]TimeOffRequest, error) {
	reqs, err := sheetssql.GetTableAs[TimeOffRequest](db.ssql, "time_off_request")
	if err != nil {
		return nil, fmt.Errorf("failed to get time-off requests: %w", err)
	}
	return reqs, nil
}

// InsertTimeOffRequest inserts a new time-off request record
func (db *DB) InsertTimeOffRequest(ctx context.Context, req TimeOffRequest) error {
	if err := sheetssql.InsertModel(db.ssql, req); err != nil {
		return fmt.Errorf("failed to insert time-off request: %w", err)
	}
	return nil
}

// UpdateTimeOffRequest rewrites an existing time-off request row by ID
func (db *DB) UpdateTimeOffRequest(ctx context.Context, req TimeOffRequest) error {
	if err := sheetssql.UpdateModelByID(db.ssql, req); err != nil {
		return fmt.Errorf("failed to update time-off request: %w", err)
	}
	return nil
}

// GetShiftOffers retrieves all shift offer records
func (db *DB) GetShiftOffers(ctx context.Context) ([]ShiftOffer, error) {
	offers, err := sheetssql.GetTableAs[ShiftOffer](db.ssql, "shift_offer")
	if err != nil {
		return nil, fmt.Errorf("failed to get shift offers: %w", err)
	}
	return offers, nil
}

// InsertShiftOffer inserts a new shift offer record
func (db *DB) InsertShiftOffer(ctx context.Context, offer ShiftOffer) error {
	if err := sheetssql.InsertModel(db.ssql, offer); err != nil {
		return fmt.Errorf("failed to insert shift offer: %w", err)
	}
	return nil
}

// UpdateShiftOffer rewrites an existing shift offer row by ID
func (db *DB) UpdateShiftOffer(ctx context.Context, offer ShiftOffer) error {
	if err := sheetssql.UpdateModelByID(db.ssql, offer); err != nil {
		return fmt.Errorf("failed to update shift offer: %w", err)
	}
	return nil
}

// GetShiftSwaps retrieves all shift swap records
func (db *DB) GetShiftSwaps(ctx context.Context) ([]ShiftSwap, error) {
	swaps, err := sheetssql.GetTableAs[ShiftSwap](db.ssql, "shift_swap")
	if err != nil {
		return nil, fmt.Errorf("failed to get shift swaps: %w", err)
	}
	return swaps, nil
}

// InsertShiftSwap inserts a new shift swap record
func (db *DB) InsertShiftSwap(ctx context.Context, swap ShiftSwap) error {
	if err := sheetssql.InsertModel(db.ssql, swap); err != nil {
		return fmt.Errorf("failed to insert shift swap: %w", err)
	}
	return nil
}

// UpdateShiftSwap rewrites an existing shift swap row by ID
func (db *DB) UpdateShiftSwap(ctx context.Context, swap ShiftSwap) error {
	if err := sheetssql.UpdateModelByID(db.ssql, swap); err != nil {
		return fmt.Errorf("failed to update shift swap: %w", err)
	}
	return nil
}
