package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees from the roster sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listEmployees command")

			employees := app.State.Employees
			app.Logger.Info("Employees loaded", zap.Int("count", len(employees)))

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, emp := range employees {
				status := "active"
				if !emp.Active {
					status = "inactive"
				}
				if emp.Deleted {
					status = "deleted"
				}
				flags := ""
				if emp.IsOwner {
					flags = " [owner]"
				} else if emp.IsAdmin {
					flags = " [admin]"
				}
				fmt.Printf("- %s (%s) - %s - %s - %s%s\n",
					emp.Name,
					emp.ID,
					emp.Email,
					string(emp.EmploymentType),
					status,
					flags,
				)
			}

			return nil
		},
	}
}
