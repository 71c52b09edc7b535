package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/wire"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Pin one senior or one caregiver (at most one pinned per category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		seniorID, _ := cmd.Flags().GetInt("senior")
		caregiverID, _ := cmd.Flags().GetInt("caregiver")

		return wire.RosterAdapter().Pin(cmd.Context(), primary.PinRequest{
			SeniorID:    seniorID,
			CaregiverID: caregiverID,
		})
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin",
	Short: "Unpin every pinned entry within scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("scope")

		return wire.RosterAdapter().Unpin(cmd.Context(), roster.UnpinScope(scope))
	},
}

func init() {
	pinCmd.Flags().Int("senior", 0, "Senior id to pin")
	pinCmd.Flags().Int("caregiver", 0, "Caregiver id to pin")
	pinCmd.MarkFlagsOneRequired("senior", "caregiver")
	pinCmd.MarkFlagsMutuallyExclusive("senior", "caregiver")

	unpinCmd.Flags().String("scope", "both", "Scope: seniors, caregivers or both")
}

// PinCmd returns the pin command.
func PinCmd() *cobra.Command {
	return pinCmd
}

// UnpinCmd returns the unpin command.
func UnpinCmd() *cobra.Command {
	return unpinCmd
}
