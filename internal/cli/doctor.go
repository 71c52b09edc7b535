package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/wire"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the loaded roster data for invariant violations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RosterAdapter().Doctor(cmd.Context())
	},
}

// DoctorCmd returns the doctor command.
func DoctorCmd() *cobra.Command {
	return doctorCmd
}
