package schedule

import (
	"fmt"
	"sort"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
)

// PeriodDays is the length of one pay period.
const PeriodDays = 14

// PeriodIndex returns the pay period a date falls in, relative to the anchor
// start date. Dates before the anchor produce negative indexes.
func PeriodIndex(date, anchor string) (int, error) {
	d, err := model.ParseDate(date)
	if err != nil {
		return 0, err
	}
	a, err := model.ParseDate(anchor)
	if err != nil {
		return 0, fmt.Errorf("invalid period anchor: %w", err)
	}

	days := int(d.Sub(a).Hours() / 24)
	if days < 0 {
		// Floor division for dates before the anchor
		return -((-days - 1)/PeriodDays + 1), nil
	}
	return days / PeriodDays, nil
}

// PeriodDates returns the 14 dates of a pay period in order.
func PeriodDates(index int, anchor string) ([]string, error) {
	a, err := model.ParseDate(anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid period anchor: %w", err)
	}

	start := a.AddDate(0, 0, index*PeriodDays)
	dates := make([]string, PeriodDays)
	for i := 0; i < PeriodDays; i++ {
		dates[i] = model.FormatDate(start.AddDate(0, 0, i))
	}
	return dates, nil
}

// Gate controls which pay periods are visible to employees. Admin edits land
// in the shift store immediately; employees only see the published snapshot
// of periods that have gone live. Toggling a live period back to edit mode
// keeps its last published snapshot visible while the admin works.
type Gate struct {
	anchor    string
	editMode  map[int]bool
	live      map[int]bool
	published map[model.ShiftKey]model.Shift
}

// NewGate creates a publication gate with nothing published yet.
func NewGate(anchor string) *Gate {
	return &Gate{
		anchor:    anchor,
		editMode:  make(map[int]bool),
		live:      make(map[int]bool),
		published: make(map[model.ShiftKey]model.Shift),
	}
}

// Anchor returns the pay period anchor date.
func (g *Gate) Anchor() string {
	return g.anchor
}

// InEditMode reports whether a period is currently in edit mode.
// Unseen periods default to edit mode.
func (g *Gate) InEditMode(period int) bool {
	edit, seen := g.editMode[period]
	if !seen {
		return true
	}
	return edit
}

// IsLive reports whether a period has been published.
func (g *Gate) IsLive(period int) bool {
	return g.live[period]
}

// GoLive snapshots the current shift store entries for the period's dates
// into the published projection and marks the period live.
func (g *Gate) GoLive(period int, store *Store) error {
	dates, err := PeriodDates(period, g.anchor)
	if err != nil {
		return err
	}

	// Replace the period's slice of the projection with the current grid
	for _, date := range dates {
		for key := range g.published {
			if key.Date == date {
				delete(g.published, key)
			}
		}
		for _, shift := range store.OnDate(date) {
			g.published[shift.Key()] = shift
		}
	}

	g.live[period] = true
	g.editMode[period] = false
	return nil
}

// SetEditMode returns a period to edit mode. Already-published shifts stay
// visible; further admin edits only reach employees on the next GoLive.
func (g *Gate) SetEditMode(period int) {
	g.editMode[period] = true
}

// Retract unpublishes a period entirely, removing its snapshot from the
// projection. Used to roll back a failed GoLive, not exposed as a user
// operation.
func (g *Gate) Retract(period int) error {
	dates, err := PeriodDates(period, g.anchor)
	if err != nil {
		return err
	}
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}
	for key := range g.published {
		if dateSet[key.Date] {
			delete(g.published, key)
		}
	}
	delete(g.live, period)
	delete(g.editMode, period)
	return nil
}

// RestoreLive marks the given periods live and snapshots the store's current
// entries for them. Used at bootstrap, where the persisted grid is the
// published truth.
func (g *Gate) RestoreLive(periods []int, store *Store) error {
	for _, period := range periods {
		if err := g.GoLive(period, store); err != nil {
			return err
		}
	}
	return nil
}

// LivePeriods returns the published period indexes in ascending order.
func (g *Gate) LivePeriods() []int {
	periods := make([]int, 0, len(g.live))
	for period := range g.live {
		periods = append(periods, period)
	}
	sort.Ints(periods)
	return periods
}

// PublishedShifts returns the employee-visible projection: published
// snapshot entries whose dates fall within live periods.
func (g *Gate) PublishedShifts() []model.Shift {
	shifts := make([]model.Shift, 0, len(g.published))
	for _, shift := range g.published {
		period, err := PeriodIndex(shift.Date, g.anchor)
		if err != nil || !g.live[period] {
			continue
		}
		shifts = append(shifts, shift)
	}
	sortShifts(shifts)
	return shifts
}

// PublishedFor returns the employee-visible shifts for one employee.
func (g *Gate) PublishedFor(employeeID string) []model.Shift {
	shifts := make([]model.Shift, 0)
	for _, shift := range g.PublishedShifts() {
		if shift.EmployeeID == employeeID {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}
