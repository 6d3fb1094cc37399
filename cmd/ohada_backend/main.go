package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title OHADA Ledger API
// @version 1.0
// @description SYSCOHADA general ledger: chart of accounts, journal entries, periods and reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	rootCmd := &cobra.Command{
		Use:   "ohada_backend",
		Short: "SYSCOHADA general ledger backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	rootCmd.AddCommand(serve, newMigrateCommand(), newSeedChartCommand(), newCheckEntryCommand())
	return rootCmd
}
