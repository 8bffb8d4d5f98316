// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the listing-engine CLI: quality-gated
// generation of property-listing marketing copy.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/listing-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the listing-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "listing-engine",
	Short: "Quality-gated generation of property-listing copy",
	Long: `listing-engine turns a property-listing record into structured marketing
copy (title, meta description, headline, description, key features,
neighborhood summary, call to action) and gates every candidate behind an
automated quality check. Failing candidates are regenerated with feedback,
bounded by a retry budget.

Run one record with 'generate', score an existing document with 'score',
expose the pipeline over HTTP with 'serve', and inspect past runs with
'runs'.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadedSecrets = secrets.Load(".secrets/")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./listing-engine.yaml or ~/.config/listing-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("listing-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "listing-engine"))
		}
	}

	viper.SetEnvPrefix("LISTING_ENGINE")
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
