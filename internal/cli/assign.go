package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/wire"
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a senior to a caregiver",
	RunE: func(cmd *cobra.Command, args []string) error {
		seniorID, _ := cmd.Flags().GetInt("senior")
		caregiverID, _ := cmd.Flags().GetInt("caregiver")

		return wire.RosterAdapter().Assign(cmd.Context(), seniorID, caregiverID)
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign",
	Short: "Remove a senior's caregiver assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		seniorID, _ := cmd.Flags().GetInt("senior")
		caregiverID, _ := cmd.Flags().GetInt("caregiver")

		return wire.RosterAdapter().Unassign(cmd.Context(), seniorID, caregiverID)
	},
}

func init() {
	assignCmd.Flags().Int("senior", 0, "Senior id (required)")
	assignCmd.Flags().Int("caregiver", 0, "Caregiver id (required)")
	assignCmd.MarkFlagRequired("senior")
	assignCmd.MarkFlagRequired("caregiver")

	unassignCmd.Flags().Int("senior", 0, "Senior id (required)")
	unassignCmd.Flags().Int("caregiver", 0, "Caregiver id (required)")
	unassignCmd.MarkFlagRequired("senior")
	unassignCmd.MarkFlagRequired("caregiver")
}

// AssignCmd returns the assign command.
func AssignCmd() *cobra.Command {
	return assignCmd
}

// UnassignCmd returns the unassign command.
func UnassignCmd() *cobra.Command {
	return unassignCmd
}
