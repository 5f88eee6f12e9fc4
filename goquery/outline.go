// Package goquery extracts the diary outline from rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/diarymap"
)

// Ensure Outliner implements diarymap.Outliner at compile time.
var _ diarymap.Outliner = (*Outliner)(nil)

// headingSelector matches the headings included in the outline.
const headingSelector = "h1, h2, h3"

// Outliner lists diary headings for the navigation index.
type Outliner struct {
	// MaxLevel is the deepest heading level included. Zero means 3.
	MaxLevel int
}

// NewOutliner creates a new Outliner.
func NewOutliner() *Outliner {
	return &Outliner{MaxLevel: 3}
}

// Outline returns the headings of html in document order.
func (o *Outliner) Outline(html string) ([]diarymap.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, diarymap.Errorf(diarymap.EINVALID, "failed to parse HTML: %v", err)
	}

	maxLevel := o.MaxLevel
	if maxLevel == 0 {
		maxLevel = 3
	}

	var entries []diarymap.Entry
	doc.Find(headingSelector).Each(func(_ int, sel *goquery.Selection) {
		level := headingLevel(goquery.NodeName(sel))
		if level == 0 || level > maxLevel {
			return
		}

		// Drop decorations such as the version indicator.
		heading := sel.Clone()
		heading.Find(".version-indicator").Remove()

		title := strings.Join(strings.Fields(heading.Text()), " ")
		if title == "" {
			return
		}

		anchor, _ := sel.Attr("id")
		entries = append(entries, diarymap.Entry{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	})

	return entries, nil
}

func headingLevel(name string) int {
	if len(name) != 2 || name[0] != 'h' || name[1] < '1' || name[1] > '6' {
		return 0
	}
	return int(name[1] - '0')
}
