// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the harvest CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/logging"
	"github.com/pdiddy/harvest/internal/secrets"
	"github.com/pdiddy/harvest/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the configuration decoded over the defaults at startup.
	cfg types.HarvestConfig

	logger = zap.NewNop()

	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string
)

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest research project outputs into website partials",
	Long: `harvest collects the outputs of a research project (publications from
HAL, deliverable releases from GitHub, personnel, partners and the software
stack from spreadsheets, news from YAML) and writes AsciiDoc partials for the
project website.

Each source is a subcommand; "all" runs every harvest in turn.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		l, err := logging.New(os.Stderr, level, format)
		if err != nil {
			return err
		}
		logger = l

		if err := secrets.LoadEnv(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}

		cfg = types.DefaultHarvestConfig()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("decoding config: %w", err)
		}
		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			cfg.Output.PartialsDir = dir
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./harvest.yaml or ~/.config/harvest/harvest.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console or json)")
	flags.StringP("output-dir", "o", "", "directory for generated partials (overrides output.partials_dir)")
	flags.Bool("refresh", false, "ignore cached collections and fetch fresh data")
	flags.Bool("no-cache", false, "disable the collection cache for this run")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("harvest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "harvest"))
		}
	}

	viper.SetEnvPrefix("HARVEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
