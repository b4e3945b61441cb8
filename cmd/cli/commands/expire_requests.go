package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// ExpireRequestsCmd creates the expireRequests command: sweep offers and
// swaps whose shift dates passed while still in flight.
func ExpireRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "expireRequests",
		Short: "Mark stale in-flight offers and swaps as expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("expireRequests command")

			expired, err := services.ExpireStaleRequests(app.Ctx, app.State, app.Database, app.Logger, time.Now())
			if err != nil {
				fmt.Printf("\nExpired %d requests; some rows failed to save and will retry next sweep.\n\n", expired)
				return err
			}

			fmt.Printf("\nExpired %d stale requests.\n\n", expired)
			return nil
		},
	}
}
