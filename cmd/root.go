// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the agentceo CLI.
// It implements subcommands for signing in, managing ideas and configuration
// using the Cobra CLI framework, plus a full-screen console for the idea workflow.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"agentceo/cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	flagAPIURL  string
	flagVerbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agentceo",
	Short: "Propose, approve and execute ideas with the Agentic AI CEO",
	Long: `agentceo is a terminal client for the Agentic AI CEO service. Sign in with
your email and password, propose ideas, approve them, and let the agent implement
them as pull requests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flagAPIURL != "" {
				cfg.APIURL = flagAPIURL
			}
			fmt.Printf("agentceo %s\napi %s\n", Version, cfg.APIURL)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version and the configured API")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Agent service base URL (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
