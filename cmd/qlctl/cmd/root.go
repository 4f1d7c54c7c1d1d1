// Package cmd implements the qlctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/quicklist/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "qlctl",
		Short: "CLI client for quicklist",
		Long: "qlctl is a command-line client for the quicklist API.\n" +
			"It submits product files as eBay listings, shows the listing history,\n" +
			"and inspects policies, locations and the stored credential.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.qlctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:3000", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(policiesCmd())
	rootCmd.AddCommand(locationsCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(storeCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(quotaCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".qlctl")
	}

	viper.SetEnvPrefix("QLCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
