package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiffin-hq/tiffin/internal/interfaces/cli/migrate"
	"github.com/tiffin-hq/tiffin/internal/interfaces/cli/server"
)

// @title Tiffin API
// @version 1.0
// @description Corporate meal-benefit administration: subscription scheduling, freezing and settlement.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{
		Use:   "tiffin",
		Short: "Tiffin - corporate meal-benefit administration",
		Long:  `Tiffin manages employee meal subscriptions and compensations: bulk creation, day freezing, settlement and renewal sweeps.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
