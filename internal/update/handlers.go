package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/widget"
)

// QuestionSender hands a question to whatever performs the request.
type QuestionSender interface {
	Ask(question string) error
}

// HandleKeyMsg handles the submit and quit keys. Other keys return nil.
func HandleKeyMsg(w *widget.Widget, keyMsg tea.KeyMsg, sender QuestionSender) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		HandleSubmit(w, sender)
	}
	return nil
}

// HandleSubmit starts a request cycle when the submit control is enabled.
// A question that cannot be handed off still gets its one bot message.
func HandleSubmit(w *widget.Widget, sender QuestionSender) {
	if !w.SubmitEnabled() {
		return
	}

	question, ok := w.Begin(w.Draft())
	if !ok {
		return
	}

	if err := sender.Ask(question); err != nil {
		w.Complete(backend.Failure(fmt.Errorf("failed to dispatch question: %w", err)))
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(w *widget.Widget, coreEventMsg CoreEventMsg) {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.ReplyEvent:
		w.Complete(event.Reply)
	}
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
