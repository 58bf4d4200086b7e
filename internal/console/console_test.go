package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/render"
	"github.com/Rorical/RoriChat/internal/widget"
)

type scriptedLines struct {
	lines []string
	err   error
}

func (s *scriptedLines) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestView(t *testing.T, echo bool) (*View, *bytes.Buffer) {
	t.Helper()
	r, err := render.NewTerminal(80, "dark")
	require.NoError(t, err)
	var out bytes.Buffer
	return NewView(&out, r, echo), &out
}

func answeringServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer": "**Yes**, dogs can eat carrots."}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestView_TypingIndicator(t *testing.T) {
	view, out := newTestView(t, false)

	view.SetTypingIndicator(true)
	view.SetTypingIndicator(true)
	assert.True(t, view.Typing())
	assert.Equal(t, 1, strings.Count(out.String(), typingLine))

	view.SetTypingIndicator(false)
	assert.False(t, view.Typing())
	assert.True(t, strings.HasSuffix(out.String(), "\r\x1b[2K"))
}

func TestView_EchoUser(t *testing.T) {
	quiet, quietOut := newTestView(t, false)
	quiet.AppendMessage(models.Message{Content: "Hi", Sender: models.User})
	assert.Empty(t, quietOut.String())
	assert.Len(t, quiet.Messages(), 1)

	loud, loudOut := newTestView(t, true)
	loud.AppendMessage(models.Message{Content: "**Hi**", Sender: models.User})
	assert.Equal(t, "You: **Hi**\n", loudOut.String())
}

func TestRun_SubmitsEachLine(t *testing.T) {
	srv := answeringServer(t)
	view, out := newTestView(t, false)
	w := widget.New(view, backend.NewClient(backend.Options{ServerURL: srv.URL}), nil)

	lines := &scriptedLines{lines: []string{"Can dogs eat carrots?", "   ", "And cats?", "exit", "never read"}}
	require.NoError(t, Run(context.Background(), lines, w))

	msgs := view.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "Can dogs eat carrots?", msgs[0].Content)
	assert.Equal(t, models.Bot, msgs[1].Sender)
	assert.Equal(t, "And cats?", msgs[2].Content)
	assert.Equal(t, []string{"never read"}, lines.lines)

	assert.Contains(t, out.String(), "dogs can eat carrots")
	assert.NotContains(t, out.String(), "**Yes**")
	assert.False(t, view.Typing())

	// The last submit leaves input disabled until the next draft
	assert.False(t, view.InputEnabled())
	w.OnDraftChanged("And birds?")
	assert.True(t, view.InputEnabled())
}

func TestRun_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "QUIT", " q "} {
		view, _ := newTestView(t, false)
		w := widget.New(view, nil, nil)

		require.NoError(t, Run(context.Background(), &scriptedLines{lines: []string{word}}, w))
		assert.Empty(t, view.Messages())
	}
}

func TestRun_ReadError(t *testing.T) {
	view, _ := newTestView(t, false)
	w := widget.New(view, nil, nil)

	err := Run(context.Background(), &scriptedLines{err: errors.New("tty gone")}, w)
	assert.ErrorContains(t, err, "tty gone")
}

func TestRun_CancelledContext(t *testing.T) {
	view, _ := newTestView(t, false)
	w := widget.New(view, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Run(ctx, &scriptedLines{lines: []string{"Hi"}}, w))
	assert.Empty(t, view.Messages())
}
