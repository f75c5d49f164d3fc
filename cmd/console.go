// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"agentceo/cli/internal/tui"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// consoleCmd opens the interactive Idea Console.
var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"ui"},
	Short:   "Open the interactive idea console",
	Long: `The console shows every idea and lets you propose (p), approve (a), execute (x)
and reload (r) without leaving the terminal. The list is reloaded from the server after
every action. Press q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		// Diagnostics would tear the full-screen view.
		a.log.Level = pterm.LogLevelDisabled
		return tui.Run(cmd.Context(), a.console, a.session)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
