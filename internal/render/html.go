package render

import (
	"html"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// HTML renders messages as HTML fragments.
type HTML struct {
	policy *bluemonday.Policy
}

func NewHTML() *HTML {
	return &HTML{policy: bluemonday.UGCPolicy()}
}

// User escapes markup-significant characters.
func (h *HTML) User(content string) string {
	return html.EscapeString(content)
}

// Bot converts markdown to HTML and sanitizes the result.
func (h *HTML) Bot(content string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})
	out := markdown.ToHTML([]byte(content), p, r)
	return string(h.policy.SanitizeBytes(out))
}
