package diarymap

import "context"

// Summary is the lead section of an encyclopedia article.
type Summary struct {
	Title       string
	Extract     string // plain text
	ExtractHTML string
	URL         string
}

// SummaryFetcher retrieves article summaries from an online encyclopedia.
type SummaryFetcher interface {
	// FetchSummary returns the summary for the article at articleURL.
	// Returns EINVALID if articleURL is not an article link and ENOTFOUND
	// if the article does not exist. A single attempt is made.
	FetchSummary(ctx context.Context, articleURL string) (*Summary, error)
}

// Limiter spaces out requests to the encyclopedia.
type Limiter interface {
	// Wait blocks until a request is allowed or ctx is done.
	Wait(ctx context.Context) error
}
