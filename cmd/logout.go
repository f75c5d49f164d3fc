// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd removes the stored access token. The server is not contacted.
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout"},
	Short:   "Remove the stored access token",
	Long: `The logout command deletes the access token and account name from the OS
keychain. The next request is sent without credentials. The token itself is not
revoked on the server.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.session.SignOut(); err != nil {
			return err
		}
		pterm.Success.Println("Signed out. The stored token has been removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
