package schedule

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

// Holidays expands the configured stat-holiday recurrence rules so callers
// can flag closure dates when rendering or publishing a period.
type Holidays struct {
	rules []*rrule.RRule
}

// HolidaysFromRules parses RRULE strings into a Holidays set.
func HolidaysFromRules(ruleStrs []string) (*Holidays, error) {
	rules := make([]*rrule.RRule, 0, len(ruleStrs))
	for i, str := range ruleStrs {
		rule, err := rrule.StrToRRule(str)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday rule [%d] %q: %w", i, str, err)
		}
		rules = append(rules, rule)
	}
	return &Holidays{rules: rules}, nil
}

// Within returns the holiday dates falling inside [start, end], inclusive,
// as schedule date strings.
func (h *Holidays) Within(start, end string) ([]string, error) {
	from, err := model.ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := model.ParseDate(end)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, rule := range h.rules {
		// Anchor DTSTART to the query window so rules written without one
		// still match dates before their parse time
		rule.DTStart(from)
		for _, t := range rule.Between(from, to, true) {
			date := model.FormatDate(t)
			if !seen[date] {
				seen[date] = true
				dates = append(dates, date)
			}
		}
	}
	return dates, nil
}

// IsHoliday reports whether a single date matches any holiday rule.
func (h *Holidays) IsHoliday(date string) (bool, error) {
	matches, err := h.Within(date, date)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}
