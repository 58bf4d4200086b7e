package app

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/render"
	"github.com/Rorical/RoriChat/ui/components"
)

// tuiView is the terminal ChatView: a scrolling viewport over the
// conversation plus the input and typing flags the layout reads.
type tuiView struct {
	conversation *models.Conversation
	renderer     *render.Terminal
	viewport     viewport.Model
	state        *models.AppModel
	style        string
}

func newTUIView(state *models.AppModel, style string) *tuiView {
	v := &tuiView{
		conversation: models.NewConversation(),
		viewport:     viewport.New(80, 20),
		state:        state,
		style:        style,
	}
	v.renderer, _ = render.NewTerminal(76, style)
	return v
}

func (v *tuiView) AppendMessage(msg models.Message) {
	v.conversation.Append(msg)
	v.refresh()
}

func (v *tuiView) SetInputEnabled(enabled bool) {
	v.state.InputEnabled = enabled
}

func (v *tuiView) SetTypingIndicator(active bool) {
	v.state.Typing = active
	if active {
		v.state.Status = "Waiting for reply"
	} else {
		v.state.Status = "Ready"
	}
}

// resize re-wraps every message for the new width.
func (v *tuiView) resize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = max(height, 1)

	if r, err := render.NewTerminal(max(width-6, 20), v.style); err == nil {
		v.renderer = r
	}
	v.refresh()
}

func (v *tuiView) refresh() {
	v.viewport.SetContent(components.RenderMessages(v.conversation.Messages(), v.renderer))
	v.viewport.GotoBottom()
}

func (v *tuiView) Messages() []models.Message {
	return v.conversation.Messages()
}
