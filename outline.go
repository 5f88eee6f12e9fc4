package diarymap

// Entry is a heading in the rendered diary, used for navigation.
type Entry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outliner extracts the diary's heading structure from rendered HTML.
type Outliner interface {
	// Outline returns the headings in document order.
	// Headings without an id attribute get no anchor.
	Outline(html string) ([]Entry, error)
}
