// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"agentceo/cli/internal/console"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	ideasJSON        bool
	proposeTitle     string
	proposeDesc      string
	executeFiles     string
	executeFilesPath string
)

// ideasCmd groups the idea lifecycle commands.
var ideasCmd = &cobra.Command{
	Use:     "ideas",
	Aliases: []string{"idea"},
	Short:   "List, propose, approve and execute ideas",
	Long: `Every ideas subcommand talks to the agent service and then prints the full,
freshly loaded idea list. The server decides which transitions are allowed; the CLI
sends any action for any idea and reports what the server answers.`,
}

var ideasListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all ideas",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		err = withSpinner("Loading ideas", func() error {
			_, err := a.console.LoadIdeas(cmd.Context())
			return err
		})
		if err != nil {
			return a.report(err)
		}

		if ideasJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(a.console.Ideas())
		}
		printIdeas(a.console.Ideas())
		return nil
	},
}

var ideasProposeCmd = &cobra.Command{
	Use:     "propose",
	Short:   "Propose a new idea",
	Args:    cobra.NoArgs,
	Example: `  agentceo ideas propose --title "Dark mode" --description "Add a dark theme to the dashboard"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		err = withSpinner("Proposing idea", func() error {
			return a.console.ProposeIdea(cmd.Context(), proposeTitle, proposeDesc)
		})
		if err != nil {
			return mutationFailed(a, err)
		}

		pterm.Success.Printfln("Proposed %q", proposeTitle)
		printIdeas(a.console.Ideas())
		return nil
	},
}

var ideasApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := console.ParseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		err = withSpinner(fmt.Sprintf("Approving idea #%d", id), func() error {
			return a.console.ApproveIdea(cmd.Context(), id)
		})
		if err != nil {
			return mutationFailed(a, err)
		}

		pterm.Success.Printfln("Approved idea #%d", id)
		printIdeas(a.console.Ideas())
		return nil
	},
}

var ideasExecuteCmd = &cobra.Command{
	Use:   "execute <id>",
	Short: "Ask the agent to implement an idea",
	Long: `The execute command asks the agent to implement an idea and open a pull request.
Optional file contents are passed as a JSON list of {"path", "content"} objects, either
inline with --files or from a file with --files-file. Invalid JSON is rejected before
anything is sent.`,
	Example: `  agentceo ideas execute 7
  agentceo ideas execute 7 --files '[{"path":"README.md","content":"# Hello"}]'
  agentceo ideas execute 7 --files-file changes.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := console.ParseID(args[0])
		if err != nil {
			return err
		}
		raw, err := filesText()
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		var confirmation string
		err = withSpinner(fmt.Sprintf("Executing idea #%d", id), func() error {
			res, err := a.console.ExecuteIdea(cmd.Context(), id, raw)
			if err == nil || isReloadFailure(err) {
				confirmation = console.Confirmation(res)
			}
			return err
		})
		if confirmation != "" {
			pterm.Success.Println(confirmation)
		}
		if err != nil {
			return mutationFailed(a, err)
		}

		printIdeas(a.console.Ideas())
		return nil
	},
}

func filesText() (string, error) {
	if executeFiles != "" && executeFilesPath != "" {
		return "", errors.New("use either --files or --files-file, not both")
	}
	if executeFilesPath == "" {
		return executeFiles, nil
	}
	b, err := os.ReadFile(executeFilesPath)
	if err != nil {
		return "", fmt.Errorf("read files: %w", err)
	}
	return string(b), nil
}

func isReloadFailure(err error) bool {
	var ae *console.ActionError
	return errors.As(err, &ae) && ae.Action == console.ActionLoad
}

// mutationFailed reports a failed mutation. When only the reload after a
// successful mutation failed, the last loaded list is still shown.
func mutationFailed(a *app, err error) error {
	reported := a.report(err)
	if isReloadFailure(err) && a.console.Loaded() {
		pterm.Println(pterm.Gray("Showing the last loaded list:"))
		printIdeas(a.console.Ideas())
	}
	return reported
}

func init() {
	rootCmd.AddCommand(ideasCmd)
	ideasCmd.AddCommand(ideasListCmd, ideasProposeCmd, ideasApproveCmd, ideasExecuteCmd)

	ideasListCmd.Flags().BoolVar(&ideasJSON, "json", false, "Print ideas as JSON")

	ideasProposeCmd.Flags().StringVarP(&proposeTitle, "title", "t", "", "Idea title")
	ideasProposeCmd.Flags().StringVarP(&proposeDesc, "description", "d", "", "What the agent should build")
	_ = ideasProposeCmd.MarkFlagRequired("title")

	ideasExecuteCmd.Flags().StringVar(&executeFiles, "files", "", "JSON list of files to write")
	ideasExecuteCmd.Flags().StringVar(&executeFilesPath, "files-file", "", "Read the JSON file list from this path")
}
