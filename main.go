// Package main is the entry point for the agentceo CLI application.
// It provides a terminal console for proposing, approving and executing ideas
// against the Agentic AI CEO service.
package main

import (
	"agentceo/cli/cmd"
)

// main is the entry point for the agentceo CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
