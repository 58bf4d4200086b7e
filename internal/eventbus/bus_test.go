package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/backend"
)

func TestSendAndReceive(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(AskEvent{Question: "Hi"}))
	assert.Equal(t, AskEvent{Question: "Hi"}, <-eb.UIToCore())

	reply := ReplyEvent{Question: "Hi", Reply: backend.Answer("Hello")}
	require.NoError(t, eb.SendToUI(reply))
	assert.Equal(t, reply, <-eb.CoreToUI())
}

func TestSendWhenFull(t *testing.T) {
	eb := NewEventBusWithBuffer(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) {
		reported = append(reported, err)
	})

	require.NoError(t, eb.SendToCore(AskEvent{Question: "one"}))
	err := eb.SendToCore(AskEvent{Question: "two"})

	assert.ErrorIs(t, err, ErrBusFull)
	require.Len(t, reported, 1)
	assert.Equal(t, "SendToCore", reported[0].Operation)
}

func TestSendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(AskEvent{Question: "Hi"}), ErrBusClosed)
	assert.ErrorIs(t, eb.SendToUI(ReplyEvent{}), ErrBusClosed)

	_, ok := <-eb.UIToCore()
	assert.False(t, ok)
}
