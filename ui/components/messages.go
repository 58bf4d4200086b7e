package components

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/render"
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderMessages(messages []models.Message, r *render.Terminal) string {
	var b strings.Builder

	userLabel := styles.SenderLabelStyle("39")
	botLabel := styles.SenderLabelStyle("214")
	userStyle := styles.UserStyle()
	botStyle := styles.BotStyle()

	for _, msg := range messages {
		switch msg.Sender {
		case models.User:
			b.WriteString(userLabel.Render("You") + "\n")
			b.WriteString(userStyle.Render(r.User(msg.Content)) + "\n\n")
		case models.Bot:
			b.WriteString(botLabel.Render("Assistant") + "\n")
			b.WriteString(botStyle.Render(r.Bot(msg.Content)) + "\n\n")
		}
	}

	return b.String()
}
