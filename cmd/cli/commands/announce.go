package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// AnnounceCmd creates the announce command
func AnnounceCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "announce <admin_email> <subject> <message>",
		Short: "Post an announcement banner to all employees",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminEmail, subject, message := args[0], args[1], args[2]

			app.Logger.Debug("announce command", zap.String("admin", adminEmail))

			announcement, err := services.PostAnnouncement(
				app.Ctx, app.State, app.Database, app.Logger,
				adminEmail, subject, message, time.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\nAnnouncement posted (%s): %s\n\n", announcement.ID, announcement.Subject)
			return nil
		},
	}
}

// SetTargetCmd creates the setTarget command
func SetTargetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setTarget <admin_email> <weekday> <count>",
		Short: "Set the staffing target for a weekday",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminEmail, weekday := args[0], args[1]
			target, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}

			app.Logger.Debug("setTarget command",
				zap.String("admin", adminEmail),
				zap.String("weekday", weekday),
				zap.Int("target", target))

			if err := services.SetStaffingTarget(app.Ctx, app.State, app.Database, app.Logger, adminEmail, weekday, target); err != nil {
				return err
			}

			fmt.Printf("\nStaffing target for %s set to %d.\n\n", weekday, target)
			return nil
		},
	}
}
