package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"agentceo/cli/internal/console"
	"agentceo/cli/internal/model"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function, which also clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// withSpinner runs fn while a spinner shows text. Nothing is drawn when stdout
// is not a terminal.
func withSpinner(text string, fn func() error) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fn()
	}
	cursor.Hide()
	defer cursor.Show()
	stop := startInlineSpinner(os.Stdout, text, spinnerFrames, 120*time.Millisecond)
	err := fn()
	stop()
	return err
}

// printIdeas renders the idea list as a table.
func printIdeas(ideas []model.Idea) {
	pterm.Println()
	if err := console.RenderTable(os.Stdout, ideas); err != nil {
		pterm.Error.Println(err)
	}
}
