package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListRequestsCmd creates the listRequests command
func ListRequestsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listRequests",
		Short: "List time-off requests, shift offers and shift swaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pendingOnly, _ := cmd.Flags().GetBool("pending")
			reg := app.State.Registry

			fmt.Printf("\nTime-off requests (%d):\n", len(reg.TimeOff))
			for i := range reg.TimeOff {
				req := &reg.TimeOff[i]
				if pendingOnly && !req.Status.Outstanding() {
					continue
				}
				fmt.Printf("  %s  %-10s %s: %s\n",
					req.ID, req.Status, req.EmployeeName, strings.Join(req.Dates, ", "))
			}

			fmt.Printf("\nShift offers (%d):\n", len(reg.Offers))
			for i := range reg.Offers {
				offer := &reg.Offers[i]
				if pendingOnly && !offer.Status.Active() {
					continue
				}
				fmt.Printf("  %s  %-18s %s -> %s on %s (%s-%s %s)\n",
					offer.ID, offer.Status, offer.OffererName, offer.RecipientName,
					offer.ShiftDate, offer.ShiftStart, offer.ShiftEnd, offer.ShiftRole)
			}

			fmt.Printf("\nShift swaps (%d):\n", len(reg.Swaps))
			for i := range reg.Swaps {
				swap := &reg.Swaps[i]
				if pendingOnly && !swap.Status.Active() {
					continue
				}
				fmt.Printf("  %s  %-18s %s (%s) <-> %s (%s)\n",
					swap.ID, swap.Status,
					swap.InitiatorName, swap.InitiatorShift.Date,
					swap.PartnerName, swap.PartnerShift.Date)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("pending", false, "Only show requests still in flight")

	return cmd
}
