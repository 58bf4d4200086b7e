package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/update"
)

func TestListenForCoreEvents(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)

	reply := eventbus.ReplyEvent{Question: "Hi", Reply: backend.Answer("Hello")}
	require.NoError(t, eb.SendToUI(reply))

	msg := ed.ListenForCoreEvents()()
	assert.Equal(t, update.CoreEventMsg{Event: reply}, msg)

	eb.Close()
	assert.Equal(t, update.BusClosedMsg{}, ed.ListenForCoreEvents()())
}

func TestAsk(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)

	require.NoError(t, ed.Ask("Hi"))
	assert.Equal(t, eventbus.AskEvent{Question: "Hi"}, <-eb.UIToCore())

	eb.Close()
	assert.ErrorIs(t, ed.Ask("Hi"), eventbus.ErrBusClosed)
}
