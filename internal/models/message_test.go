package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderString(t *testing.T) {
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "bot", Bot.String())
	assert.Equal(t, "unknown", Sender(42).String())
}

func TestConversationPreservesOrder(t *testing.T) {
	c := NewConversation()
	c.Append(Message{Content: "Hi", Sender: User})
	c.Append(Message{Content: "Hello!", Sender: Bot})

	msgs := c.Messages()
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []Message{
		{Content: "Hi", Sender: User},
		{Content: "Hello!", Sender: Bot},
	}, msgs)

	// The returned slice is a copy.
	msgs[0].Content = "changed"
	assert.Equal(t, "Hi", c.Messages()[0].Content)
}
