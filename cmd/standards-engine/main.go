// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the standards-engine CLI.
// Implements: prd001-sources, prd002-extraction, prd003-structured,
//             prd004-practice-base, prd005-ingestion (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the standards-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "standards-engine",
	Short: "Searchable practice base built from coding-standard documents",
	Long: `standards-engine ingests coding-standard documents — free-form markdown
with embedded code examples, or structured YAML/JSON rule lists — and turns
them into uniform, searchable practice records annotated with category,
severity, language, and lint-rule associations.

Register sources in standards-engine.yaml, then use ingest to build the
local practice base and search, show, list, and export to query it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./standards-engine.yaml or ~/.config/standards-engine/config.yaml)")
	rootCmd.PersistentFlags().String("index-dir", "", "directory for the practice base index (default: index)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("standards-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "standards-engine"))
		}
	}

	viper.SetEnvPrefix("STANDARDS_ENGINE")
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
