package chart

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

// DefaultScriptURL is where the page loads Chart.js from.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/chart.js"

//go:embed templates/chart.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/chart.html.tmpl"))

// HTMLRenderer writes a standalone page whose script passes the config to Chart.js
// on a canvas with id CanvasID. Dark adds the dark-mode class to <body>.
type HTMLRenderer struct {
	Title     string
	ScriptURL string
	Dark      bool
	Width     int
	Height    int
}

func NewHTMLRenderer(dark bool, widthPx, heightPx int) HTMLRenderer {
	return HTMLRenderer{
		Title:     DefaultTitle,
		ScriptURL: DefaultScriptURL,
		Dark:      dark,
		Width:     widthPx,
		Height:    heightPx,
	}
}

func (r HTMLRenderer) Render(w io.Writer, cfg Config) error {
	scriptURL := r.ScriptURL
	if scriptURL == "" {
		scriptURL = DefaultScriptURL
	}
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}
	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	data := struct {
		Title     string
		ScriptURL string
		Dark      bool
		Width     int
		Height    int
		CanvasID  string
		Config    Config
	}{
		Title:     title,
		ScriptURL: scriptURL,
		Dark:      r.Dark,
		Width:     width,
		Height:    height,
		CanvasID:  CanvasID,
		Config:    cfg,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
