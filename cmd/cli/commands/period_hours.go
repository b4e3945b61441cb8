package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// PeriodHoursCmd creates the periodHours command
func PeriodHoursCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "periodHours <period>",
		Short: "Total scheduled hours per employee for a pay period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("period must be a number: %w", err)
			}

			app.Logger.Debug("periodHours command", zap.Int("period", period))

			hours, err := services.PeriodHours(app.State, period)
			if err != nil {
				return err
			}

			names := make(map[string]string, len(app.State.Employees))
			for _, emp := range app.State.Employees {
				names[emp.ID] = emp.Name
			}

			ids := make([]string, 0, len(hours))
			for id := range hours {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool {
				return names[ids[i]] < names[ids[j]]
			})

			fmt.Printf("\nScheduled hours for pay period %d:\n\n", period)
			for _, id := range ids {
				name := names[id]
				if name == "" {
					name = id
				}
				fmt.Printf("  %-22s %5.1f\n", name, hours[id])
			}
			fmt.Println()

			return nil
		},
	}
}
