package components

import (
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderInput(input string, enabled bool, width int) string {
	return styles.InputStyle(width, enabled).Render(input)
}
