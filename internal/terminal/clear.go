// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides utilities for terminal operations such as clearing text
// and reading input without echo.
package terminal

import (
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

const defaultWidth = 80

// Width returns the current terminal width, or 80 when stdout is not a terminal.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultWidth
}

// LinesFor returns how many terminal lines a text of textLength characters
// occupies at the given width, plus the empty line left after Enter.
func LinesFor(textLength, width int) int {
	return PromptLines(width, textLength)
}

// PromptLines returns how many terminal lines a sequence of answered prompts
// occupies at the given width, plus the empty line left after the last Enter.
// Each length is one prompt plus the answer typed after it.
func PromptLines(width int, lengths ...int) int {
	if width <= 0 {
		width = defaultWidth
	}
	total := 0
	for _, n := range lengths {
		lines := (n + width - 1) / width
		if lines < 1 {
			lines = 1
		}
		total += lines
	}
	if total < 1 {
		total = 1
	}
	return total + 1
}

// ClearPreviousLines clears answered prompts from the screen. Each length is
// the number of characters printed for one prompt (prompt + user input).
func ClearPreviousLines(lengths ...int) {
	n := PromptLines(Width(), lengths...)
	cursor.ClearLine()
	cursor.StartOfLine()
	cursor.ClearLinesUp(n - 1)
	cursor.StartOfLine()
}
