package dispatcher

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/update"
)

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{
		eventBus: eventBus,
	}
}

// ListenForCoreEvents waits for the next core event and hands it to the
// bubbletea loop. It must be re-issued after every delivered event.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ed.eventBus.CoreToUI()
		if !ok {
			return update.BusClosedMsg{}
		}
		return update.CoreEventMsg{Event: event}
	}
}

// Ask forwards a question to the core.
func (ed *EventDispatcher) Ask(question string) error {
	return ed.eventBus.SendToCore(eventbus.AskEvent{Question: question})
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
