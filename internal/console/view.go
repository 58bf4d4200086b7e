// Package console is the line-mode front end: a ChatView that prints to a
// plain terminal and a read-submit loop around it.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/render"
)

const typingLine = "Assistant is typing..."

type View struct {
	out          io.Writer
	renderer     *render.Terminal
	conversation *models.Conversation
	echoUser     bool
	inputEnabled bool
	typing       bool
}

// NewView prints to out. With echoUser the user's own messages are printed
// too; a readline prompt already shows them otherwise.
func NewView(out io.Writer, renderer *render.Terminal, echoUser bool) *View {
	return &View{
		out:          out,
		renderer:     renderer,
		conversation: models.NewConversation(),
		echoUser:     echoUser,
	}
}

func (v *View) AppendMessage(msg models.Message) {
	v.conversation.Append(msg)

	switch msg.Sender {
	case models.User:
		if v.echoUser {
			fmt.Fprintf(v.out, "You: %s\n", v.renderer.User(msg.Content))
		}
	case models.Bot:
		fmt.Fprintf(v.out, "\n%s\n\n", v.renderer.Bot(msg.Content))
	}
}

func (v *View) SetInputEnabled(enabled bool) {
	v.inputEnabled = enabled
}

func (v *View) SetTypingIndicator(active bool) {
	if active == v.typing {
		return
	}
	v.typing = active
	if active {
		fmt.Fprint(v.out, typingLine)
	} else {
		fmt.Fprint(v.out, "\r"+ansi.EraseEntireLine)
	}
}

func (v *View) InputEnabled() bool {
	return v.inputEnabled
}

func (v *View) Typing() bool {
	return v.typing
}

func (v *View) Messages() []models.Message {
	return v.conversation.Messages()
}
