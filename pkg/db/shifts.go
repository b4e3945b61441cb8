package db

import (
	"context"
	"fmt"

	"github.com/sarvistore/shiftdesk/pkg/sheetssql"
)

// shiftChunkSize bounds how many rows go into a single append call; the
// transport has a payload ceiling on very large periods.
const shiftChunkSize = 100

// GetShifts retrieves all shift records
func (db *DB) GetShifts(ctx context.Context) ([]Shift, error) {
	shifts, err := sheetssql.GetTableAs[Shift](db.ssql, "shift")
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	return shifts, nil
}

// ChunkError reports one failed chunk of a batch save.
type ChunkError struct {
	Offset int // index of the first shift in the failed chunk
	Count  int
	Err    error
}

// SaveReport summarises a batch shift save, including partial failures.
type SaveReport struct {
	Deleted int
	Saved   int
	Failed  []ChunkError
}

// ReplaceShiftsForDates deletes every shift row on the given dates and
// inserts the new rows in chunks. Failed chunks are reported rather than
// aborting the whole save, so a retry can fill the gap.
func (db *DB) ReplaceShiftsForDates(ctx context.Context, dates []string, shifts []Shift) (*SaveReport, error) {
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}

	deleted, err := sheetssql.DeleteRowsMatching(db.ssql, "shift", func(row map[string]string) bool {
		return dateSet[row["date"]]
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear shifts for dates: %w", err)
	}

	report := &SaveReport{Deleted: deleted}
	for offset := 0; offset < len(shifts); offset += shiftChunkSize {
		end := offset + shiftChunkSize
		if end > len(shifts) {
			end = len(shifts)
		}
		chunk := shifts[offset:end]
		if err := sheetssql.InsertModels(db.ssql, chunk); err != nil {
			report.Failed = append(report.Failed, ChunkError{Offset: offset, Count: len(chunk), Err: err})
			continue
		}
		report.Saved += len(chunk)
	}

	return report, nil
}

// ReassignShift rewrites the shift row on a date from one employee to another
func (db *DB) ReassignShift(ctx context.Context, fromEmployeeID, toEmployeeID, date string) error {
	shifts, err := db.GetShifts(ctx)
	if err != nil {
		return err
	}

	for _, shift := range shifts {
		if shift.EmployeeID == fromEmployeeID && shift.Date == date {
			shift.EmployeeID = toEmployeeID
			if err := sheetssql.UpdateModelByID(db.ssql, shift); err != nil {
				return fmt.Errorf("failed to reassign shift: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("no shift row for employee %s on %s", fromEmployeeID, date)
}

// SwapShifts rewrites the two shift rows of an approved swap: a's row on
// dateA moves to b, b's row on dateB moves to a.
func (db *DB) SwapShifts(ctx context.Context, aEmployeeID, dateA, bEmployeeID, dateB string) error {
	shifts, err := db.GetShifts(ctx)
	if err != nil {
		return err
	}

	var rowA, rowB *Shift
	for i := range shifts {
		if shifts[i].EmployeeID == aEmployeeID && shifts[i].Date == dateA {
			rowA = &shifts[i]
		}
		if shifts[i].EmployeeID == bEmployeeID && shifts[i].Date == dateB {
			rowB = &shifts[i]
		}
	}
	if rowA == nil {
		return fmt.Errorf("no shift row for employee %s on %s", aEmployeeID, dateA)
	}
	if rowB == nil {
		return fmt.Errorf("no shift row for employee %s on %s", bEmployeeID, dateB)
	}

	rowA.EmployeeID = bEmployeeID
	rowB.EmployeeID = aEmployeeID

	if err := sheetssql.UpdateModelByID(db.ssql, *rowA); err != nil {
		return fmt.Errorf("failed to update first side of swap: %w", err)
	}
	if err := sheetssql.UpdateModelByID(db.ssql, *rowB); err != nil {
		return fmt.Errorf("failed to update second side of swap: %w", err)
	}
	return nil
}
