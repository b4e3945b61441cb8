package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ActionCmd creates the action command: run any named action as a caller.
func ActionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "action <name> <caller_email> [payload_json]",
		Short: "Dispatch a named action on behalf of a caller",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			caller := args[1]
			var payload json.RawMessage
			if len(args) > 2 {
				payload = json.RawMessage(args[2])
			}

			app.Logger.Debug("action command",
				zap.String("action", name),
				zap.String("caller", caller))

			resp := app.Dispatcher.Dispatch(app.Ctx, name, caller, payload)

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render response: %w", err)
			}
			fmt.Println(string(out))

			if !resp.Success {
				return fmt.Errorf("action %s failed: %s", name, resp.Error.Message)
			}
			return nil
		},
	}
}
