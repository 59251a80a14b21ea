package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/config"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront backend for a Medusa commerce backend",
	Long: `storefront serves the shop's JSON API: catalog, search, cart,
customer accounts, Google sign-in and guest order claims.

Configuration is read from the environment and env/.env.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		var err error
		if cfg.LogDev {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, ensureTopicCmd, categoriesCmd, sweepSessionsCmd, analyticsLoadCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
