// Package transcript saves a conversation as a standalone HTML page.
package transcript

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/render"
)

var page = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="saved">Saved {{.Saved}}</p>
<div id="chat-box">
{{- range .Messages}}
<div class="message {{.Sender}}"><div class="bubble">{{.Body}}</div></div>
{{- end}}
</div>
</body>
</html>
`))

type entry struct {
	Sender string
	Body   template.HTML
}

// Render produces the page. User text is escaped; bot text is rendered as
// sanitized markdown.
func Render(title string, messages []models.Message, r *render.HTML, saved time.Time) ([]byte, error) {
	entries := make([]entry, 0, len(messages))
	for _, msg := range messages {
		var body string
		if msg.Sender == models.Bot {
			body = r.Bot(msg.Content)
		} else {
			body = r.User(msg.Content)
		}
		entries = append(entries, entry{
			Sender: msg.Sender.String(),
			Body:   template.HTML(body),
		})
	}

	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Title    string
		Saved    string
		Messages []entry
	}{
		Title:    title,
		Saved:    saved.Format(time.RFC1123),
		Messages: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the transcript to path. An empty conversation writes nothing.
func Save(path, title string, messages []models.Message) error {
	if path == "" || len(messages) == 0 {
		return nil
	}

	data, err := Render(title, messages, render.NewHTML(), time.Now())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create transcript directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
