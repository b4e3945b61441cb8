package db

import (
	"fmt"

	"github.com/sarvistore/shiftdesk/pkg/sheetssql"
)

// DB provides database operations using SheetsSQL
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{
		ssql: ssql,
	}
}

// Schema returns the schema covering every table the application uses.
func Schema() (*sheetssql.Schema, error) {
	schema, err := sheetssql.SchemaFromModels(
		Shift{},
		TimeOffRequest{},
		ShiftOffer{},
		ShiftSwap{},
		LivePeriod{},
		Announcement{},
		StaffingTarget{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return schema, nil
}
