package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/wire"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a senior and/or a caregiver",
	Long: `Delete the named senior and/or caregiver. An id that does not resolve
is skipped. Deleting a caregiver unassigns every senior that references it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seniorID, _ := cmd.Flags().GetInt("senior")
		caregiverID, _ := cmd.Flags().GetInt("caregiver")

		return wire.RosterAdapter().Delete(cmd.Context(), primary.DeleteRequest{
			SeniorID:    seniorID,
			CaregiverID: caregiverID,
		})
	},
}

func init() {
	deleteCmd.Flags().Int("senior", 0, "Senior id to delete")
	deleteCmd.Flags().Int("caregiver", 0, "Caregiver id to delete")
}

// DeleteCmd returns the delete command.
func DeleteCmd() *cobra.Command {
	return deleteCmd
}
