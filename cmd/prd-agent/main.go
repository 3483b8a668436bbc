// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the prd-agent CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prd-agent/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the prd-agent CLI.
var rootCmd = &cobra.Command{
	Use:   "prd-agent",
	Short: "Interview a user about a product idea and draft a PRD",
	Long: `prd-agent interviews you about a product idea using the 5 Whys technique,
then asks a language model to synthesize the transcript into a Product
Requirements Document written to a Markdown file.

The interview subcommand runs the whole flow; archive lists previously
generated documents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./prd-agent.yaml or ~/.config/prd-agent/config.yaml)")
	rootCmd.PersistentFlags().String("archive-dir", "", "base directory for the archive (default archive)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prd-agent")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prd-agent"))
		}
	}

	viper.SetEnvPrefix("PRD_AGENT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// reportInterrupt prints the interruption notice shown before the process
// exits on Ctrl-C.
func reportInterrupt(w io.Writer) {
	color.New(color.FgRed).Fprintln(w, "\nProcess interrupted.")
}

func main() {
	// An interrupt must produce a console message even while blocked on
	// stdin or a network round trip, so the handler exits directly.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		reportInterrupt(os.Stderr)
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
