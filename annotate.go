package diarymap

import "strings"

// Segment is a run of text, optionally tied to a place.
// A segment with an empty PlaceID is plain text.
type Segment struct {
	Text    string `json:"text"`
	PlaceID string `json:"placeId,omitempty"`
}

// IsSpan reports whether the segment is an annotated span.
func (s Segment) IsSpan() bool {
	return s.PlaceID != ""
}

// Span locates an annotated segment in the original text by byte offsets.
type Span struct {
	Start   int
	End     int
	Text    string
	PlaceID string
}

// AnnotatedText is an ordered sequence of segments. Concatenating the text
// of every segment reproduces the input it was built from.
type AnnotatedText []Segment

// AppendText appends plain text, merging it into a trailing plain segment.
func (a AnnotatedText) AppendText(text string) AnnotatedText {
	if text == "" {
		return a
	}
	if n := len(a); n > 0 && !a[n-1].IsSpan() {
		a[n-1].Text += text
		return a
	}
	return append(a, Segment{Text: text})
}

// AppendSpan appends a span tied to placeID.
func (a AnnotatedText) AppendSpan(text, placeID string) AnnotatedText {
	return append(a, Segment{Text: text, PlaceID: placeID})
}

// Concat appends all segments of b, merging plain text at the seam.
func (a AnnotatedText) Concat(b AnnotatedText) AnnotatedText {
	for _, s := range b {
		if s.IsSpan() {
			a = a.AppendSpan(s.Text, s.PlaceID)
		} else {
			a = a.AppendText(s.Text)
		}
	}
	return a
}

// Strip returns the text with all annotations removed.
func (a AnnotatedText) Strip() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Spans returns the annotated spans with their offsets into Strip().
func (a AnnotatedText) Spans() []Span {
	var spans []Span
	offset := 0
	for _, s := range a {
		if s.IsSpan() {
			spans = append(spans, Span{
				Start:   offset,
				End:     offset + len(s.Text),
				Text:    s.Text,
				PlaceID: s.PlaceID,
			})
		}
		offset += len(s.Text)
	}
	return spans
}

// PlaceIDs returns the ids of all referenced places in order of first mention.
func (a AnnotatedText) PlaceIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, s := range a {
		if s.IsSpan() && !seen[s.PlaceID] {
			seen[s.PlaceID] = true
			ids = append(ids, s.PlaceID)
		}
	}
	return ids
}
