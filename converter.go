package diarymap

// Renderer renders diary markdown to HTML.
type Renderer interface {
	// Render transforms markdown into an HTML fragment.
	// Returns EINVALID for empty input.
	Render(markdown string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used to turn encyclopedia summary HTML into plain paragraphs.
	Convert(html string) (string, error)
}
