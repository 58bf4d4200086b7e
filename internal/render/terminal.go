package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// Terminal renders messages for a terminal. Bot text is markdown, user
// text is shown as typed.
type Terminal struct {
	renderer *glamour.TermRenderer
}

// NewTerminal builds a renderer wrapping at width. A style of "" picks one
// from the terminal background.
func NewTerminal(width int, style string) (*Terminal, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithEmoji(),
	}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Terminal{renderer: r}, nil
}

// User returns the text with any escape sequences removed. It is never
// interpreted as markdown.
func (t *Terminal) User(content string) string {
	return ansi.Strip(content)
}

// Bot renders markdown. Escape sequences from the backend are stripped first
// so an answer cannot drive the terminal.
func (t *Terminal) Bot(content string) (result string) {
	clean := ansi.Strip(content)

	defer func() {
		if r := recover(); r != nil {
			result = clean
		}
	}()

	if t == nil || t.renderer == nil || clean == "" {
		return clean
	}
	rendered, err := t.renderer.Render(clean)
	if err != nil {
		return clean
	}
	return strings.Trim(rendered, "\n")
}
