// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the title2ris CLI.
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

// rootCmd is the base command for the title2ris CLI.
var rootCmd = &cobra.Command{
	Use:   "title2ris <input-file> <output-file>",
	Short: "Resolve a list of paper titles into a RIS bibliography",
	Long: `title2ris reads plain paper titles, one per line, resolves each against
the CrossRef metadata API with a bounded concurrent worker pool, and writes
the resolved records as a RIS bibliography file.

Supplementary-information and frontispiece search hits are skipped in favor
of the next ranked candidate. Titles that cannot be resolved are reported
and omitted from the output. An interrupted run still writes the entries
resolved so far.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runResolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./title2ris.yaml or ~/.config/title2ris/config.yaml)")

	rootCmd.Flags().Int("workers", 0, "concurrent resolution workers (default 4)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 20s)")
	rootCmd.Flags().Int("retries", 0, "attempt budget per title, including the first try (default 3)")
	rootCmd.Flags().Float64("rate", 0, "aggregate request ceiling in requests/second (default 1)")
	rootCmd.Flags().Int("burst", 0, "request burst capacity (default 1)")
	rootCmd.Flags().Int("rows", 0, "ranked candidates requested per title (default 2)")
	rootCmd.Flags().String("encoding", "", "input/output text encoding, IANA name (default utf-8)")
	rootCmd.Flags().String("report", "", "also write a YAML run report to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("title2ris")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "title2ris"))
		}
	}

	viper.SetEnvPrefix("TITLE2RIS")
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
