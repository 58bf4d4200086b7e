package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/internal/widget"
)

type harness struct {
	model   *AppModel
	bus     *eventbus.EventBus
	service *core.ChatService
}

func newHarness(t *testing.T, handler http.HandlerFunc) *harness {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := backend.NewClient(backend.Options{ServerURL: srv.URL})
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	svc := core.NewChatService(client, eb, nil)
	svc.Start()
	t.Cleanup(func() {
		svc.Stop()
		eb.Close()
	})

	state := &models.AppModel{Status: "Ready", ActiveProfile: "default", ServerURL: srv.URL}
	view := newTUIView(state, "dark")
	w := widget.New(view, client, nil)

	m := newAppModel(state, view, w, disp)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &harness{model: m, bus: eb, service: svc}
}

func (h *harness) typeText(text string) {
	h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// awaitReply runs the dispatcher command the program would run and feeds
// the result back into Update.
func (h *harness) awaitReply(t *testing.T) {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- h.model.dispatcher.ListenForCoreEvents()() }()

	select {
	case msg := <-done:
		require.IsType(t, update.CoreEventMsg{}, msg)
		h.model.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for core event")
	}
}

func TestAppModel_TypingEnablesSubmit(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.False(t, h.model.state.InputEnabled)

	h.typeText("   ")
	assert.False(t, h.model.state.InputEnabled)

	h.typeText("Hi")
	assert.True(t, h.model.state.InputEnabled)
	assert.Equal(t, "   Hi", h.model.widget.Draft())
}

func TestAppModel_FullCycle(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer": "**Feed twice a day**"}`))
	})

	h.typeText("How often?")
	h.model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "", h.model.input.Value())
	assert.True(t, h.model.state.Typing)
	assert.False(t, h.model.state.InputEnabled)
	assert.Contains(t, h.model.View(), "Assistant is typing")

	h.awaitReply(t)

	assert.False(t, h.model.state.Typing)
	assert.False(t, h.model.state.InputEnabled)
	assert.NotContains(t, h.model.View(), "Assistant is typing")

	msgs := h.model.view.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.Message{Content: "How often?", Sender: models.User}, msgs[0])
	assert.Equal(t, models.Message{Content: "**Feed twice a day**", Sender: models.Bot}, msgs[1])

	view := h.model.View()
	assert.Contains(t, view, "Feed twice a day")
	assert.NotContains(t, view, "**Feed")
}

func TestAppModel_BackendFailure(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "vector store offline"}`))
	})

	h.typeText("Hi")
	h.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	h.awaitReply(t)

	msgs := h.model.view.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, widget.BackendErrorMessage, msgs[1].Content)
	assert.NotContains(t, h.model.View(), "vector store offline")
}

func TestAppModel_EnterIgnoredWhileDisabled(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	h.model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, h.model.view.Messages())
	assert.False(t, h.model.state.Typing)
}

func TestAppModel_Quit(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_BusClosed(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	_, cmd := h.model.Update(update.BusClosedMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, "Disconnected", h.model.state.Status)
	assert.Contains(t, h.model.View(), "Disconnected")
}
