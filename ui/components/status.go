package components

import (
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(width).Render(status)
}

// RenderTyping draws the typing indicator. It returns "" when inactive; the
// caller keeps the row.
func RenderTyping(active bool, spinner string) string {
	if !active {
		return ""
	}
	return styles.TypingStyle().Render(spinner + " Assistant is typing")
}

func RenderHeader(title string) string {
	return styles.HeaderStyle().Render(title)
}
