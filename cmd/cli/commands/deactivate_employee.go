package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// DeactivateEmployeeCmd creates the deactivateEmployee command
func DeactivateEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivateEmployee <admin_email> <employee_email>",
		Short: "Deactivate an employee on the roster",
		Long: `Deactivate an employee on the roster sheet.

Refused while the employee still holds upcoming shifts or has a request in
flight; reassign or resolve those first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminEmail, employeeEmail := args[0], args[1]

			app.Logger.Debug("deactivateEmployee command",
				zap.String("admin", adminEmail),
				zap.String("employee", employeeEmail))

			err := services.DeactivateEmployee(
				app.Ctx, app.State, app.RosterWriter(), app.Logger,
				adminEmail, employeeEmail, time.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s has been deactivated.\n\n", employeeEmail)
			return nil
		},
	}
}
