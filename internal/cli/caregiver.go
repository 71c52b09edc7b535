package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/wire"
)

var caregiverCmd = &cobra.Command{
	Use:   "caregiver",
	Short: "Manage caregivers",
}

var caregiverAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new caregiver",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")
		note, _ := cmd.Flags().GetString("note")

		return wire.CaregiverAdapter().Add(cmd.Context(), primary.AddCaregiverRequest{
			Name:    name,
			Phone:   phone,
			Address: address,
			Note:    note,
		})
	},
}

var caregiverEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a caregiver's fields (assigned seniors pick up the change)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid caregiver id %q", args[0])
		}
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")
		note, _ := cmd.Flags().GetString("note")

		return wire.CaregiverAdapter().Edit(cmd.Context(), primary.EditCaregiverRequest{
			CaregiverID: id,
			Name:        name,
			Phone:       phone,
			Address:     address,
			Note:        note,
		})
	},
}

var caregiverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List caregivers",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword, _ := cmd.Flags().GetString("keyword")

		return wire.CaregiverAdapter().List(cmd.Context(), primary.CaregiverFilters{
			Keyword: keyword,
		})
	},
}

var caregiverShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a caregiver and the seniors assigned to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid caregiver id %q", args[0])
		}
		return wire.CaregiverAdapter().Show(cmd.Context(), id)
	},
}

func init() {
	caregiverAddCmd.Flags().String("name", "", "Display name (required)")
	caregiverAddCmd.Flags().String("phone", "", "Phone number (required)")
	caregiverAddCmd.Flags().String("address", "", "Postal address")
	caregiverAddCmd.Flags().String("note", "", "Free-text notes")
	caregiverAddCmd.MarkFlagRequired("name")
	caregiverAddCmd.MarkFlagRequired("phone")

	caregiverEditCmd.Flags().String("name", "", "New display name")
	caregiverEditCmd.Flags().String("phone", "", "New phone number")
	caregiverEditCmd.Flags().String("address", "", "New postal address")
	caregiverEditCmd.Flags().String("note", "", "New notes")

	caregiverListCmd.Flags().String("keyword", "", "Filter by name keyword (case-insensitive)")

	caregiverCmd.AddCommand(caregiverAddCmd)
	caregiverCmd.AddCommand(caregiverEditCmd)
	caregiverCmd.AddCommand(caregiverListCmd)
	caregiverCmd.AddCommand(caregiverShowCmd)
}

// CaregiverCmd returns the caregiver command tree.
func CaregiverCmd() *cobra.Command {
	return caregiverCmd
}
