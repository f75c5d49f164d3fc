// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadLine prints prompt and reads one line from r, without the line ending.
func ReadLine(w io.Writer, r *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prints prompt and reads a secret from the terminal without echo.
// When stdin is not a terminal, it falls back to reading a plain line from r.
func ReadPassword(w io.Writer, r *bufio.Reader, prompt string) (string, error) {
	if !IsInteractive() {
		return ReadLine(w, r, prompt)
	}
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
