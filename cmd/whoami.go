package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd shows whether a token is stored and for which account. It does not
// check the token with the server.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"status", "me"},
	Short:   "Show the signed-in account",
	Long: `The whoami command reports whether an access token is stored on this machine
and which account it belongs to. A stored token may still be rejected by the server
if it has expired; the next request will tell.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if !a.session.IsAuthenticated() {
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Println("   Run 'agentceo login' to get started.")
			return nil
		}

		account := a.session.Account()
		if account == "" {
			account = "unknown account"
		}
		fmt.Printf("👤 Signed in as %s\n", account)
		fmt.Printf("   API: %s\n", a.baseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
