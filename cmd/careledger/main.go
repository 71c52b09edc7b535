package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/careledger/internal/cli"
	"github.com/example/careledger/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "careledger",
		Short:   "careledger - track seniors, caregivers and their assignments",
		Version: version.String(),
		Long: `careledger is a desktop CLI for keeping records of seniors (care
recipients) and caregivers, assigning seniors to caregivers, and pinning
the records that need attention. State is kept locally and saved after
every change.`,
	}

	// Entity commands
	rootCmd.AddCommand(cli.SeniorCmd())
	rootCmd.AddCommand(cli.CaregiverCmd())

	// Cross-category operations
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.UnassignCmd())
	rootCmd.AddCommand(cli.PinCmd())
	rootCmd.AddCommand(cli.UnpinCmd())

	// Maintenance
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
