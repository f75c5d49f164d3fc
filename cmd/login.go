// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"agentceo/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginEmail string

// loginCmd exchanges an email and password for an access token and stores it
// in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with email and password",
	Long: `The login command asks for your email and password and exchanges them for an
access token at the agent service. The token is stored in the OS keychain and sent
with every later request until you run 'agentceo logout'.

The email defaults to --email, AGENTCEO_EMAIL or the 'email' config setting.
The password is never echoed and never stored.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		var printed []int
		email := strings.TrimSpace(loginEmail)
		if email == "" {
			var n int
			email, n, err = promptEmail(os.Stdout, reader, a.cfg.Email)
			if err != nil {
				return err
			}
			printed = append(printed, n)
		}
		if email == "" {
			return errors.New("email is required")
		}

		password, err := terminal.ReadPassword(os.Stdout, reader, "Password: ")
		if err != nil {
			return err
		}
		printed = append(printed, len("Password: "))
		if terminal.IsInteractive() {
			terminal.ClearPreviousLines(printed...)
		}

		err = withSpinner("Signing in", func() error {
			return a.session.SignIn(cmd.Context(), email, password)
		})
		if err != nil {
			return a.reportAs("Login failed", "signing in", err)
		}

		pterm.Success.Printfln("Signed in as %s", email)
		return nil
	},
}

// promptEmail asks for the sign-in email, offering def when it is set. It also
// returns how many characters the prompt and answer took on screen.
func promptEmail(w io.Writer, r *bufio.Reader, def string) (string, int, error) {
	prompt := "Email: "
	if def != "" {
		prompt = fmt.Sprintf("Email [%s]: ", def)
	}
	answer, err := terminal.ReadLine(w, r, prompt)
	if err != nil {
		return "", 0, err
	}
	email := strings.TrimSpace(answer)
	if email == "" {
		email = def
	}
	return email, len(prompt) + len(answer), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email to sign in with")
}
