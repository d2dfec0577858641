// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chanlocs CLI: importing
// electrode/sensor location files into the normalized channel model,
// inspecting the format registry, and managing stored montages.
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

// rootCmd is the base command for the chanlocs CLI.
var rootCmd = &cobra.Command{
	Use:   "chanlocs",
	Short: "Import electrode and sensor location files",
	Long: `chanlocs imports electrode/sensor spatial-location files in a dozen-plus
legacy conventions (polar, spherical, BESA spherical, Cartesian, digitizer
recordings) into one normalized channel model with polar, spherical, and
Cartesian coordinates filled in for every channel.

Use "chanlocs formats" to list the supported formats and column roles, and
"chanlocs montage" to persist imported channel sets for reuse.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chanlocs.yaml or ~/.config/chanlocs/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chanlocs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chanlocs"))
		}
	}

	viper.SetEnvPrefix("CHANLOCS")
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
