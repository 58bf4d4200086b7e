// Package widget holds the chat interaction loop: it keeps the draft, renders
// messages through a ChatView and runs one backend round trip per submit.
package widget

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/models"
)

const (
	BackendErrorMessage   = "Sorry, I encountered an error. Please try again."
	ConnectionLostMessage = "Sorry, check your internet connection."
)

// ChatView is what the widget draws on. AppendMessage must leave the newest
// message visible.
type ChatView interface {
	AppendMessage(msg models.Message)
	SetInputEnabled(enabled bool)
	SetTypingIndicator(active bool)
}

// Asker performs a single /chat round trip.
type Asker interface {
	Ask(ctx context.Context, question string) backend.Reply
}

type Widget struct {
	view    ChatView
	asker   Asker
	logger  *zap.Logger
	draft   string
	enabled bool
	pending int
}

func New(view ChatView, asker Asker, logger *zap.Logger) *Widget {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Widget{
		view:   view,
		asker:  asker,
		logger: logger,
	}
}

// OnDraftChanged records the current draft. Submit is enabled iff the draft
// has non-whitespace content.
func (w *Widget) OnDraftChanged(text string) {
	w.draft = text
	w.enabled = strings.TrimSpace(text) != ""
	w.view.SetInputEnabled(w.enabled)
}

func (w *Widget) Draft() string {
	return w.draft
}

func (w *Widget) SubmitEnabled() bool {
	return w.enabled
}

// Pending reports whether a submitted question is still awaiting its reply.
func (w *Widget) Pending() bool {
	return w.pending > 0
}

// Begin runs the part of a submit that happens before the request: the
// user's message is shown, the draft cleared, submit disabled and the typing
// indicator raised. It returns the trimmed question, or false when there is
// nothing to send.
func (w *Widget) Begin(question string) (string, bool) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", false
	}

	w.view.AppendMessage(models.Message{Content: question, Sender: models.User})

	w.draft = ""
	w.enabled = false
	w.view.SetInputEnabled(false)

	w.view.SetTypingIndicator(true)
	w.pending++

	w.logger.Debug("chat request started", zap.Int("question_length", len(question)))
	return question, true
}

// Complete renders the outcome of a request started by Begin. Submit stays
// disabled; only the next draft change turns it back on.
func (w *Widget) Complete(reply backend.Reply) {
	if w.pending > 0 {
		w.pending--
	}
	w.view.SetTypingIndicator(false)

	switch reply.Outcome {
	case backend.Answered:
		w.logger.Debug("chat request answered", zap.Int("status", reply.Status))
		w.view.AppendMessage(models.Message{Content: reply.Answer, Sender: models.Bot})
	case backend.Rejected:
		w.logger.Error("backend reported failure",
			zap.Int("status", reply.Status),
			zap.String("detail", reply.Detail),
			zap.String("body", reply.Body))
		w.view.AppendMessage(models.Message{Content: BackendErrorMessage, Sender: models.Bot})
	default:
		w.logger.Error("chat request failed", zap.Error(reply.Err))
		w.view.AppendMessage(models.Message{Content: ConnectionLostMessage, Sender: models.Bot})
	}
}

// Submit runs a full request cycle and blocks until the backend settles. It
// returns false without touching the view for an empty question.
func (w *Widget) Submit(ctx context.Context, question string) bool {
	question, ok := w.Begin(question)
	if !ok {
		return false
	}
	w.Complete(w.asker.Ask(ctx, question))
	return true
}
