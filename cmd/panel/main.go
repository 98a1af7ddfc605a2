package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/smmpanel/panel/internal/interfaces/cli/migrate"
	"github.com/smmpanel/panel/internal/interfaces/cli/provider"
	"github.com/smmpanel/panel/internal/interfaces/cli/server"
	"github.com/smmpanel/panel/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "panel",
		Short:        "SMM panel admin service",
		Long:         `Admin API for an SMM reseller panel: upstream provider management, schema migrations and operator tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		provider.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
