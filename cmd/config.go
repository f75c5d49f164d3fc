// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"agentceo/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configCmd inspects and edits the non-secret settings file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
	Long: `Settings live in config.json under the XDG config directory. Environment
variables (AGENTCEO_API_URL, AGENTCEO_EMAIL, AGENTCEO_LOG_LEVEL, AGENTCEO_TIMEOUT) and
a .env file in the working directory override the file; --api-url overrides both.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if flagAPIURL != "" {
			cfg.APIURL = flagAPIURL
		}

		data := [][]string{{"Key", "Value"}}
		for _, k := range config.Keys {
			v, _ := cfg.Get(k)
			data = append(data, []string{k, v})
		}
		if err := pterm.DefaultTable.WithWriter(os.Stdout).WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		if p, err := config.Path(); err == nil {
			pterm.Println(pterm.Gray("File: " + p))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Persist a setting",
	Args:    cobra.ExactArgs(2),
	Example: "  agentceo config set api_url https://ceo.example.com\n  agentceo config set email ceo@example.com",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("%s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
