// Package cmd implements the CLI commands for the quicklist server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/quicklist/internal/config"
	"github.com/donaldgifford/quicklist/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quicklist",
	Short: "Publish scraped products as eBay listings",
	Long: "An API server that turns products captured by the browser extension into eBay " +
		"inventory items, offers and published listings, and keeps the seller's OAuth " +
		"credential fresh.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(tokenCommand())
}

// Root returns the root command, for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}
