package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/widget"
)

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// BusClosedMsg is delivered once the core side of the bus has shut down.
type BusClosedMsg struct{}

// HandleUpdate routes the messages that arrive from outside the input box:
// core replies, bus shutdown and terminal resizes. Keys go through
// HandleKeyMsg.
func HandleUpdate(appModel *models.AppModel, w *widget.Widget, msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
	case CoreEventMsg:
		HandleCoreEvent(w, msg)
	case BusClosedMsg:
		appModel.Status = "Disconnected"
	}
}
