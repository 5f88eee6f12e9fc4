// Package markup applies place annotation to rendered diary HTML.
//
// Only text between tags is annotated; tags, comments and the contents of
// links, code and raw-text elements pass through untouched. Every token is
// copied from the raw input, so stripping the annotations reproduces the
// HTML byte for byte.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/keyword"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped lists elements whose text is never annotated.
var skipped = map[atom.Atom]bool{
	atom.A:      true,
	atom.Code:   true,
	atom.Pre:    true,
	atom.Script: true,
	atom.Style:  true,
}

// Annotate annotates the text runs of src with place mentions found by m.
func Annotate(src string, m *keyword.Matcher) (diarymap.AnnotatedText, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var out diarymap.AnnotatedText
	depth := 0 // nesting inside skipped elements

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenize diary html: %w", err)
			}
			return out, nil
		}

		// Copy before TagName, which lower-cases the buffer in place.
		raw := string(z.Raw())

		switch tt {
		case html.TextToken:
			if depth > 0 {
				out = out.AppendText(raw)
			} else {
				out = out.Concat(m.Annotate(raw))
			}
			continue
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipped[atom.Lookup(name)] {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipped[atom.Lookup(name)] && depth > 0 {
				depth--
			}
		}
		out = out.AppendText(raw)
	}
}

// Render writes spans as location elements the page script can bind to.
func Render(at diarymap.AnnotatedText) string {
	var sb strings.Builder
	for _, s := range at {
		if !s.IsSpan() {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString(`<span class="location" data-place-id="`)
		sb.WriteString(html.EscapeString(s.PlaceID))
		sb.WriteString(`">`)
		sb.WriteString(s.Text)
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

// InjectVersion places a version indicator inside the first level-one
// heading. HTML without an h1 is returned unchanged.
func InjectVersion(src string, v diarymap.Version) string {
	indicator := fmt.Sprintf(`<span class="version-indicator" title="%s">%s</span>`,
		html.EscapeString(fmt.Sprintf("Git: %s | Built: %s", v.Hash, v.Generated)),
		html.EscapeString(v.String()),
	)
	return strings.Replace(src, "</h1>", indicator+"</h1>", 1)
}
