// Package keyword finds place-name mentions in free text.
//
// All keywords of all places are held in a single rune trie, so the text is
// scanned once from left to right. At each position the longest keyword that
// respects word boundaries wins, and scanning resumes after it.
//
// Matching is case-sensitive. A keyword whose first (last) rune is a word
// rune must not be preceded (followed) by another word rune, where word runes
// are letters, digits, combining marks and '_'. Keyword edges that are
// punctuation are not constrained.
package keyword

import (
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/diarymap"
	"golang.org/x/text/unicode/norm"
)

type node struct {
	children map[rune]*node
	placeID  string // non-empty when a keyword ends here
}

func (n *node) child(r rune) *node {
	c, ok := n.children[r]
	if !ok {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		c = &node{}
		n.children[r] = c
	}
	return c
}

// Matcher annotates text with mentions of a fixed set of places.
// A Matcher is immutable once built and safe for concurrent use.
type Matcher struct {
	root  *node
	forms int
}

// New builds a Matcher over places. Place ids must be unique and every
// keyword non-empty. Each keyword is registered in the spelling given and
// in its composed (NFC) and decomposed (NFD) forms, so "Crépon" matches
// either encoding of the accent.
//
// When two places register the same keyword, the place listed first owns it.
func New(places []*diarymap.Place) (*Matcher, error) {
	if _, err := diarymap.IndexPlaces(places); err != nil {
		return nil, err
	}

	m := &Matcher{root: &node{}}
	for _, p := range places {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		for _, kw := range p.Keywords {
			m.insert(kw, p.ID)
			m.insert(norm.NFC.String(kw), p.ID)
			m.insert(norm.NFD.String(kw), p.ID)
		}
	}
	return m, nil
}

func (m *Matcher) insert(kw, placeID string) {
	n := m.root
	for _, r := range kw {
		n = n.child(r)
	}
	if n.placeID == "" {
		n.placeID = placeID
		m.forms++
	}
}

// Forms returns the number of distinct keyword spellings registered.
func (m *Matcher) Forms() int {
	return m.forms
}

// Annotate returns text split into plain segments and place spans.
// Spans never overlap and stripping them reproduces text exactly.
func (m *Matcher) Annotate(text string) diarymap.AnnotatedText {
	var out diarymap.AnnotatedText
	plain := 0
	for i := 0; i < len(text); {
		if end, id := m.longestAt(text, i); id != "" {
			out = out.AppendText(text[plain:i])
			out = out.AppendSpan(text[i:end], id)
			i, plain = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return out.AppendText(text[plain:])
}

// longestAt returns the end offset and place id of the longest keyword
// starting at start, or an empty id when none matches.
func (m *Matcher) longestAt(text string, start int) (int, string) {
	first, _ := utf8.DecodeRuneInString(text[start:])
	if isWord(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWord(prev) {
			return start, ""
		}
	}

	end, id := start, ""
	n := m.root
	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if n = n.children[r]; n == nil {
			break
		}
		i += size
		if n.placeID != "" && endsOnBoundary(text, i, r) {
			end, id = i, n.placeID
		}
	}
	return end, id
}

func endsOnBoundary(text string, end int, last rune) bool {
	if !isWord(last) || end == len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWord(next)
}

// isWord reports whether r belongs to a word. Format characters such as the
// soft hyphen and zero-width joiner sit inside words.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || unicode.Is(unicode.Cf, r)
}

// Annotate builds a Matcher over places and applies it to text.
func Annotate(text string, places []*diarymap.Place) (diarymap.AnnotatedText, error) {
	m, err := New(places)
	if err != nil {
		return nil, err
	}
	return m.Annotate(text), nil
}
