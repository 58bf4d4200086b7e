package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ergochat/readline"

	"github.com/Rorical/RoriChat/internal/widget"
)

// LineReader is the part of readline the loop needs.
type LineReader interface {
	ReadLine() (string, error)
}

var exitWords = map[string]bool{"exit": true, "quit": true, "q": true}

// Run reads lines until EOF, interrupt or an exit word, submitting each one
// through the widget.
func Run(ctx context.Context, lines LineReader, w *widget.Widget) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := lines.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if exitWords[strings.ToLower(strings.TrimSpace(line))] {
			return nil
		}

		w.OnDraftChanged(line)
		if !w.SubmitEnabled() {
			continue
		}
		w.Submit(ctx, w.Draft())
	}
}

// NewReader opens a readline prompt on the controlling terminal.
func NewReader() (*readline.Instance, error) {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "You: ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt: %w", err)
	}
	return rl, nil
}
