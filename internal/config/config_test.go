package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shiftdesk_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
rosterSheetID: roster-sheet-id
rosterTab: Roster
databaseSheetID: database-sheet-id
periodAnchor: "2026-01-04"
storeHours:
  open: "09:00"
  close: "18:00"
  overrides:
    Sun:
      closed: true
holidayRules:
  - "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
`

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "roster-sheet-id", cfg.RosterSheetID)
	assert.Equal(t, "Roster", cfg.RosterTab)
	assert.Equal(t, "2026-01-04", cfg.PeriodAnchor)
	assert.Equal(t, "09:00", cfg.StoreHours.Open)
	assert.True(t, cfg.StoreHours.Overrides["Sun"].Closed)
	require.Len(t, cfg.HolidayRules, 1)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "rosterSheetID: [unclosed")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	err := Validate(&Config{RosterSheetID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate_BadPeriodAnchor(t *testing.T) {
	err := Validate(&Config{
		RosterSheetID:   "x",
		RosterTab:       "Roster",
		DatabaseSheetID: "y",
		PeriodAnchor:    "04/01/2026",
	})
	assert.Error(t, err)
}

func TestValidate_BadHolidayRule(t *testing.T) {
	err := Validate(&Config{
		RosterSheetID:   "x",
		RosterTab:       "Roster",
		DatabaseSheetID: "y",
		PeriodAnchor:    "2026-01-04",
		StoreHours:      StoreHours{Open: "09:00", Close: "18:00"},
		HolidayRules:    []string{"FREQ=SOMETIMES"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}
