package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/internal/widget"
	"github.com/Rorical/RoriChat/ui/components"
)

// Rows taken by everything except the message viewport.
const chromeHeight = 7

type AppModel struct {
	state      *models.AppModel
	widget     *widget.Widget
	view       *tuiView
	dispatcher *dispatcher.EventDispatcher
	input      textinput.Model
	spinner    spinner.Model
}

func newAppModel(state *models.AppModel, view *tuiView, w *widget.Widget, disp *dispatcher.EventDispatcher) *AppModel {
	input := textinput.New()
	input.Placeholder = "Ask me anything... (Enter to send, Esc to exit)"
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &AppModel{
		state:      state,
		widget:     w,
		view:       view,
		dispatcher: disp,
		input:      input,
		spinner:    sp,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case update.CoreEventMsg:
		// Handle core events and continue listening
		update.HandleUpdate(m.state, m.widget, msg)
		return m, m.dispatcher.ListenForCoreEvents()

	case tea.WindowSizeMsg:
		update.HandleUpdate(m.state, m.widget, msg)
		m.input.Width = max(msg.Width-8, 10)
		m.view.resize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.view.viewport, cmd = m.view.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	update.HandleUpdate(m.state, m.widget, msg)
	return m, nil
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.view.viewport, cmd = m.view.viewport.Update(msg)
		return cmd
	}

	if cmd := update.HandleKeyMsg(m.widget, msg, m.dispatcher); cmd != nil {
		return cmd
	}
	if msg.Type == tea.KeyEnter {
		// The widget clears the draft on a successful submit
		m.input.SetValue(m.widget.Draft())
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.widget.OnDraftChanged(after)
	}
	return cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader("-- RORICHAT --"))
	b.WriteString("\n")
	b.WriteString(m.view.viewport.View())
	b.WriteString("\n")
	b.WriteString(components.RenderTyping(m.state.Typing, m.spinner.View()))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(m.input.View(), m.state.InputEnabled, m.state.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.statusLine(), m.state.Width))

	return b.String()
}

func (m *AppModel) statusLine() string {
	send := "send disabled"
	if m.state.InputEnabled {
		send = "enter to send"
	}
	return fmt.Sprintf("%s · %s · %s · %s", m.state.ActiveProfile, m.state.ServerURL, m.state.Status, send)
}
