// Package cli defines the cobra commands. Commands parse and validate
// arguments into structured requests; domain invariants are enforced by
// the service behind the adapters, never here.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/wire"
)

var seniorCmd = &cobra.Command{
	Use:   "senior",
	Short: "Manage seniors (care recipients)",
}

var seniorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new senior",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")
		note, _ := cmd.Flags().GetString("note")
		risk, _ := cmd.Flags().GetString("risk")
		caregiverID, _ := cmd.Flags().GetInt("caregiver")

		return wire.SeniorAdapter().Add(cmd.Context(), primary.AddSeniorRequest{
			Name:        name,
			Phone:       phone,
			Address:     address,
			Note:        note,
			Risk:        risk,
			CaregiverID: caregiverID,
		})
	},
}

var seniorEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a senior's fields (the id never changes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid senior id %q", args[0])
		}
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")
		note, _ := cmd.Flags().GetString("note")
		risk, _ := cmd.Flags().GetString("risk")

		return wire.SeniorAdapter().Edit(cmd.Context(), primary.EditSeniorRequest{
			SeniorID: id,
			Name:     name,
			Phone:    phone,
			Address:  address,
			Note:     note,
			Risk:     risk,
		})
	},
}

var seniorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List seniors",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword, _ := cmd.Flags().GetString("keyword")
		risk, _ := cmd.Flags().GetString("risk")

		return wire.SeniorAdapter().List(cmd.Context(), primary.SeniorFilters{
			Keyword: keyword,
			Risk:    risk,
		})
	},
}

func init() {
	seniorAddCmd.Flags().String("name", "", "Display name (required)")
	seniorAddCmd.Flags().String("phone", "", "Phone number (required)")
	seniorAddCmd.Flags().String("address", "", "Postal address")
	seniorAddCmd.Flags().String("note", "", "Free-text notes")
	seniorAddCmd.Flags().String("risk", "LR", "Risk level: HR, MR or LR")
	seniorAddCmd.Flags().Int("caregiver", 0, "Caregiver id to assign at creation")
	seniorAddCmd.MarkFlagRequired("name")
	seniorAddCmd.MarkFlagRequired("phone")

	seniorEditCmd.Flags().String("name", "", "New display name")
	seniorEditCmd.Flags().String("phone", "", "New phone number")
	seniorEditCmd.Flags().String("address", "", "New postal address")
	seniorEditCmd.Flags().String("note", "", "New notes")
	seniorEditCmd.Flags().String("risk", "", "New risk level: HR, MR or LR")

	seniorListCmd.Flags().String("keyword", "", "Filter by name keyword (case-insensitive)")
	seniorListCmd.Flags().String("risk", "", "Filter by risk level")

	seniorCmd.AddCommand(seniorAddCmd)
	seniorCmd.AddCommand(seniorEditCmd)
	seniorCmd.AddCommand(seniorListCmd)
}

// SeniorCmd returns the senior command tree.
func SeniorCmd() *cobra.Command {
	return seniorCmd
}
