package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// PublishCmd creates the publish command: take a pay period live.
func PublishCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <period> <admin_email>",
		Short: "Publish a pay period so employees can see it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("period must be a number: %w", err)
			}
			adminEmail := args[1]

			app.Logger.Debug("publish command", zap.Int("period", period), zap.String("admin", adminEmail))

			if err := services.PublishPeriod(app.Ctx, app.State, app.Database, app.Logger, adminEmail, period); err != nil {
				return err
			}

			fmt.Printf("\nPay period %d is now live.\n", period)
			fmt.Printf("Live periods: %v\n\n", app.State.Gate.LivePeriods())
			return nil
		},
	}
}

// EditModeCmd creates the editMode command: return a live period to editing.
func EditModeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "editMode <period> <admin_email>",
		Short: "Return a pay period to edit mode (published shifts stay visible)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("period must be a number: %w", err)
			}
			adminEmail := args[1]

			app.Logger.Debug("editMode command", zap.Int("period", period), zap.String("admin", adminEmail))

			if err := services.SetPeriodEditMode(app.State, app.Logger, adminEmail, period); err != nil {
				return err
			}

			fmt.Printf("\nPay period %d is back in edit mode.\n\n", period)
			return nil
		},
	}
}
