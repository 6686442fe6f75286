package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Rent ledger administration tool",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvironment(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "config/config.dev.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		migrateCmd(),
		reconcileCmd(),
		summaryCmd(),
		tokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
