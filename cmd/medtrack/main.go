package main

import (
	"os"

	"github.com/medtrack/medtrack/cmd/medtrack/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medtrack",
		Short: "Operations CLI for the MedTrack server",
	}

	rootCmd.AddCommand(cmd.ServeCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
