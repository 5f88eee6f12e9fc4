// Package goldmark renders diary markdown to HTML using yuin/goldmark.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/diarymap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements diarymap.Renderer at compile time.
var _ diarymap.Renderer = (*Renderer)(nil)

// Renderer wraps goldmark with the extensions the diary uses: tables,
// footnotes, definition lists and generated heading ids.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Footnote,
			extension.DefinitionList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// The diary is authored by hand and may embed raw HTML.
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render transforms markdown into an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", diarymap.Errorf(diarymap.EINVALID, "empty diary markdown")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
