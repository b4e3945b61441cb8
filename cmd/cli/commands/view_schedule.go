package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule <period>",
		Short: "View the shift grid for a pay period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("period must be a number: %w", err)
			}

			app.Logger.Debug("viewSchedule command", zap.Int("period", period))

			dates, err := schedule.PeriodDates(period, app.State.Gate.Anchor())
			if err != nil {
				return err
			}
			counts, err := services.ScheduledCounts(app.State, period)
			if err != nil {
				return err
			}

			targets := make(map[string]int)
			for _, t := range app.State.StaffingTargets {
				targets[t.Weekday] = t.Target
			}
			names := make(map[string]string, len(app.State.Employees))
			for _, emp := range app.State.Employees {
				names[emp.ID] = emp.Name
			}

			status := "edit mode"
			if app.State.Gate.IsLive(period) {
				status = "live"
				if app.State.Gate.InEditMode(period) {
					status = "live (editing)"
				}
			}

			fmt.Printf("\nPay period %d (%s - %s) - %s\n\n", period, dates[0], dates[len(dates)-1], status)

			for _, date := range dates {
				day, err := model.ParseDate(date)
				if err != nil {
					return err
				}
				weekday := day.Weekday().String()

				header := fmt.Sprintf("%s (%s)", date, weekday)
				if holiday, err := app.Holidays.IsHoliday(date); err == nil && holiday {
					header += " [holiday]"
				}
				if target, ok := targets[weekday]; ok {
					header += fmt.Sprintf("  staffed %d/%d", counts[date], target)
				}
				fmt.Println(header)

				for _, shift := range app.State.Shifts.OnDate(date) {
					name := names[shift.EmployeeID]
					if name == "" {
						name = shift.EmployeeID
					}
					fmt.Printf("  %-22s %s-%s  %s", name, shift.StartTime, shift.EndTime, shift.Role)
					if shift.Task != "" {
						fmt.Printf("  (%s)", shift.Task)
					}
					fmt.Println()
				}
				if off := app.State.ApprovedTimeOffOn(date); len(off) > 0 {
					fmt.Printf("  off: %s\n", strings.Join(off, ", "))
				}
				fmt.Println()
			}

			return nil
		},
	}
}
