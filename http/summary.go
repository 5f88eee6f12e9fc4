// Package http implements the encyclopedia summary client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/diarymap"
	"github.com/tidwall/gjson"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultSummaryURL is the Wikipedia REST endpoint for page summaries.
const DefaultSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// DefaultUserAgent identifies the enrichment client to the encyclopedia.
const DefaultUserAgent = "diarymap/1.0 (static diary map builder)"

// Ensure SummaryService implements diarymap.SummaryFetcher at compile time.
var _ diarymap.SummaryFetcher = (*SummaryService)(nil)

// SummaryService fetches article summaries from the Wikipedia REST API.
// Each call makes exactly one request; callers decide what to do on failure.
type SummaryService struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// SummaryOption configures a SummaryService.
type SummaryOption func(*SummaryService)

// WithSummaryTimeout sets the timeout for each request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithSummaryTimeout(d time.Duration) SummaryOption {
	return func(s *SummaryService) {
		s.timeout = d
	}
}

// WithBaseURL points the service at a different summary endpoint.
// The article title is appended to it.
func WithBaseURL(u string) SummaryOption {
	return func(s *SummaryService) {
		s.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) SummaryOption {
	return func(s *SummaryService) {
		s.userAgent = ua
	}
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(opts ...SummaryOption) *SummaryService {
	s := &SummaryService{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultSummaryURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// ArticleTitle extracts the article title from a wikipedia.org/wiki/ URL.
func ArticleTitle(articleURL string) (string, error) {
	u, err := url.Parse(articleURL)
	if err != nil {
		return "", diarymap.Errorf(diarymap.EINVALID, "invalid article URL %q: %v", articleURL, err)
	}
	if !strings.HasSuffix(u.Host, "wikipedia.org") {
		return "", diarymap.Errorf(diarymap.EINVALID, "not a wikipedia URL: %q", articleURL)
	}
	title, ok := strings.CutPrefix(u.Path, "/wiki/")
	if !ok || title == "" {
		return "", diarymap.Errorf(diarymap.EINVALID, "not a wikipedia article URL: %q", articleURL)
	}
	return title, nil
}

// FetchSummary retrieves the summary of the article at articleURL.
func (s *SummaryService) FetchSummary(ctx context.Context, articleURL string) (*diarymap.Summary, error) {
	title, err := ArticleTitle(articleURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+url.PathEscape(title), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, diarymap.Errorf(diarymap.ENOTFOUND, "article %q not found", title)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, title)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON summary for %s", title)
	}

	fields := gjson.GetManyBytes(body, "title", "extract", "extract_html", "content_urls.desktop.page")
	return &diarymap.Summary{
		Title:       fields[0].String(),
		Extract:     fields[1].String(),
		ExtractHTML: fields[2].String(),
		URL:         fields[3].String(),
	}, nil
}
