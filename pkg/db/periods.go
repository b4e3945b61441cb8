package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarvistore/shiftdesk/pkg/sheetssql"
)

// GetLivePeriods retrieves the indexes of all published pay periods
func (db *DB) GetLivePeriods(ctx context.Context) ([]int, error) {
	records, err := sheetssql.GetTableAs[LivePeriod](db.ssql, "live_period")
	if err != nil {
		return nil, fmt.Errorf("failed to get live periods: %w", err)
	}

	periods := make([]int, 0, len(records))
	seen := make(map[int]bool)
	for _, rec := range records {
		if !seen[rec.PeriodIndex] {
			seen[rec.PeriodIndex] = true
			periods = append(periods, rec.PeriodIndex)
		}
	}
	return periods, nil
}

// SaveLivePeriods replaces the live period table with the given indexes
func (db *DB) SaveLivePeriods(ctx context.Context, periods []int) error {
	if _, err := sheetssql.DeleteRowsMatching(db.ssql, "live_period", func(row map[string]string) bool {
		return true
	}); err != nil {
		return fmt.Errorf("failed to clear live periods: %w", err)
	}

	records := make([]LivePeriod, 0, len(periods))
	for _, period := range periods {
		records = append(records, LivePeriod{
			ID:          uuid.New().String(),
			PeriodIndex: period,
		})
	}
	if err := sheetssql.InsertModels(db.ssql, records); err != nil {
		return fmt.Errorf("failed to insert live periods: %w", err)
	}
	return nil
}

// GetAnnouncements retrieves all announcement records
func (db *DB) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	announcements, err := sheetssql.GetTableAs[Announcement](db.ssql, "announcement")
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}
	return announcements, nil
}

// InsertAnnouncement inserts a new announcement and deactivates earlier ones
func (db *DB) InsertAnnouncement(ctx context.Context, announcement Announcement) error {
	existing, err := db.GetAnnouncements(ctx)
	if err != nil {
		return err
	}
	for _, old := range existing {
		if !old.Active {
			continue
		}
		old.Active = false
		if err := sheetssql.UpdateModelByID(db.ssql, old); err != nil {
			return fmt.Errorf("failed to deactivate announcement %s: %w", old.ID, err)
		}
	}

	if err := sheetssql.InsertModel(db.ssql, announcement); err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

// GetStaffingTargets retrieves all staffing target records
func (db *DB) GetStaffingTargets(ctx context.Context) ([]StaffingTarget, error) {
	targets, err := sheetssql.GetTableAs[StaffingTarget](db.ssql, "staffing_target")
	if err != nil {
		return nil, fmt.Errorf("failed to get staffing targets: %w", err)
	}
	return targets, nil
}

// SetStaffingTarget inserts or updates the target for one weekday
func (db *DB) SetStaffingTarget(ctx context.Context, weekday string, target int) error {
	existing, err := db.GetStaffingTargets(ctx)
	if err != nil {
		return err
	}

	for _, rec := range existing {
		if rec.Weekday == weekday {
			rec.Target = target
			if err := sheetssql.UpdateModelByID(db.ssql, rec); err != nil {
				return fmt.Errorf("failed to update staffing target for %s: %w", weekday, err)
			}
			return nil
		}
	}

	record := StaffingTarget{
		ID:      uuid.New().String(),
		Weekday: weekday,
		Target:  target,
	}
	if err := sheetssql.InsertModel(db.ssql, record); err != nil {
		return fmt.Errorf("failed to insert staffing target for %s: %w", weekday, err)
	}
	return nil
}
