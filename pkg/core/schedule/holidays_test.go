package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidaysFromRules_InvalidRule(t *testing.T) {
	_, err := HolidaysFromRules([]string{"NOT-A-RULE"})
	assert.Error(t, err)
}

func TestHolidays_Within(t *testing.T) {
	holidays, err := HolidaysFromRules([]string{
		"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
		"FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1",
	})
	require.NoError(t, err)

	dates, err := holidays.Within("2026-12-01", "2027-01-31")
	require.NoError(t, err)
	assert.Contains(t, dates, "2026-12-25")
	assert.Contains(t, dates, "2027-01-01")
	assert.NotContains(t, dates, "2026-12-24")
}

func TestHolidays_IsHoliday(t *testing.T) {
	holidays, err := HolidaysFromRules([]string{
		"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
	})
	require.NoError(t, err)

	hit, err := holidays.IsHoliday("2026-12-25")
	require.NoError(t, err)
	assert.True(t, hit)

	miss, err := holidays.IsHoliday("2026-12-26")
	require.NoError(t, err)
	assert.False(t, miss)
}

func TestHolidays_Empty(t *testing.T) {
	holidays, err := HolidaysFromRules(nil)
	require.NoError(t, err)

	dates, err := holidays.Within("2026-01-01", "2026-12-31")
	require.NoError(t, err)
	assert.Empty(t, dates)
}
