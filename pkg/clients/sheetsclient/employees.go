package sheetsclient

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sarvistore/shiftdesk/internal/config"
	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

// Expected column names in the roster sheet
var employeeFields = []string{
	"Employee ID",
	"Name",
	"Email",
	"Phone",
	"Active",
	"Deleted",
	"Admin",
	"Owner",
	"Show on schedule",
	"Employment type",
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// ListEmployees retrieves and parses the roster from the configured spreadsheet
func (c *Client) ListEmployees(cfg *config.Config) ([]model.Employee, error) {
	values, err := c.GetValues(cfg.RosterSheetID, cfg.RosterTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	employees, err := parseEmployees(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return employees, nil
}

// SetEmployeeActive flips the Active cell for one employee in the roster sheet
func (c *Client) SetEmployeeActive(cfg *config.Config, employeeID string, active bool) error {
	values, err := c.GetValues(cfg.RosterSheetID, cfg.RosterTab)
	if err != nil {
		return fmt.Errorf("failed to get roster data: %w", err)
	}
	if len(values) == 0 {
		return fmt.Errorf("roster sheet is empty")
	}

	idCol, activeCol := -1, -1
	for i, cell := range values[0] {
		if s, ok := cell.(string); ok {
			switch s {
			case "Employee ID":
				idCol = i
			case "Active":
				activeCol = i
			}
		}
	}
	if idCol == -1 || activeCol == -1 {
		return fmt.Errorf("roster is missing Employee ID or Active column")
	}

	for i := 1; i < len(values); i++ {
		row := values[i]
		if idCol >= len(row) {
			continue
		}
		if s, ok := row[idCol].(string); ok && s == employeeID {
			cell := fmt.Sprintf("%s!%s%d", cfg.RosterTab, columnLetterA1(activeCol), i+1)
			return c.UpdateValues(cfg.RosterSheetID, cell, [][]interface{}{{strconv.FormatBool(active)}})
		}
	}

	return fmt.Errorf("employee %s not found in roster", employeeID)
}

// columnLetterA1 converts a 0-based column index to its A1-notation letter(s)
func columnLetterA1(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}

// parseEmployees converts raw roster data into Employee structs
func parseEmployees(raw [][]interface{}) ([]model.Employee, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	// Build field index map from header row
	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	for _, field := range employeeFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == field {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	// Availability columns are optional per weekday, e.g. "Mon availability"
	for _, name := range weekdayNames {
		header := name + " availability"
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == header {
				fieldIndexes[header] = i
				break
			}
		}
	}

	getField := func(field string, row []interface{}) string {
		index, ok := fieldIndexes[field]
		if !ok {
			return ""
		}
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return str
		}
		return ""
	}

	parseBool := func(s string) bool {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && b
	}

	employees := make([]model.Employee, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField("Name", row)
		// Skip empty rows
		if name == "" {
			continue
		}

		employmentType := model.EmploymentType(getField("Employment type", row))
		if employmentType != model.FullTime && employmentType != model.PartTime {
			employmentType = model.PartTime
		}

		availability := make(map[time.Weekday]model.DayAvailability)
		for weekday, prefix := range weekdayNames {
			availability[weekday] = parseDayAvailability(getField(prefix+" availability", row))
		}

		employees = append(employees, model.Employee{
			ID:             getField("Employee ID", row),
			Name:           name,
			Email:          getField("Email", row),
			Phone:          getField("Phone", row),
			Active:         parseBool(getField("Active", row)),
			Deleted:        parseBool(getField("Deleted", row)),
			IsAdmin:        parseBool(getField("Admin", row)),
			IsOwner:        parseBool(getField("Owner", row)),
			ShowOnSchedule: parseBool(getField("Show on schedule", row)),
			EmploymentType: employmentType,
			Availability:   availability,
		})
	}

	return employees, nil
}

// parseDayAvailability reads one weekday availability cell. Empty means
// available all day, "off" means unavailable, "HH:MM-HH:MM" is a window.
func parseDayAvailability(cell string) model.DayAvailability {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return model.DayAvailability{Available: true}
	}
	if strings.EqualFold(cell, "off") {
		return model.DayAvailability{Available: false}
	}

	parts := strings.SplitN(cell, "-", 2)
	if len(parts) != 2 {
		return model.DayAvailability{Available: true}
	}
	return model.DayAvailability{
		Available: true,
		Start:     strings.TrimSpace(parts[0]),
		End:       strings.TrimSpace(parts[1]),
	}
}
