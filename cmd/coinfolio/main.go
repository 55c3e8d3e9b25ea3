// coinfolio tracks crypto holdings against live market prices.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coinfolio/internal/logger"
)

// @title           Coinfolio API
// @version         1.0
// @description     Coinfolio tracks crypto holdings against live market prices and reports profit and loss.

// @host      localhost:8080
// @BasePath  /api/v1

var version = "0.1.0"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coinfolio",
		Short: "Track crypto holdings and their profit and loss",
		Long: `coinfolio records crypto purchases, prices them against a market
snapshot and reports per-holding and portfolio profit and loss.

Holdings are kept in a local sqlite file (STORAGE_PATH). Run "coinfolio serve"
for the local JSON API or use the subcommands directly.`,
		SilenceUsage: true,
	}

	root.AddCommand(versionCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(addCmd())
	root.AddCommand(holdingsCmd())
	root.AddCommand(removeCmd())
	root.AddCommand(refreshCmd())
	root.AddCommand(summaryCmd())
	root.AddCommand(marketsCmd())
	root.AddCommand(quickCmd())
	root.AddCommand(migrateCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coinfolio version %s\n", version)
		},
	}
}
