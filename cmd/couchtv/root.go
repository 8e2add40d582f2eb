package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "couchtv",
	Short: "Browse, search and track TV and movie catalogs",
	Long: `couchtv - media catalog browser

Aggregates content providers into uniform feeds, search results and
details, and keeps local watchlists.

The config file is taken from --config, $COUCHTV_CONFIG, ./config.toml,
the XDG config directory or /etc/couchtv, in that order. Run
'couchtv config init' to write a default one.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("couchtv {{.Version}}\n")
}
