package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/diarymap"
)

// Ensure LoggingSummaryFetcher implements diarymap.SummaryFetcher.
var _ diarymap.SummaryFetcher = (*LoggingSummaryFetcher)(nil)

// LoggingSummaryFetcher wraps a SummaryFetcher with logging.
type LoggingSummaryFetcher struct {
	next   diarymap.SummaryFetcher
	logger *slog.Logger
}

// NewLoggingSummaryFetcher creates a new LoggingSummaryFetcher.
func NewLoggingSummaryFetcher(next diarymap.SummaryFetcher, logger *slog.Logger) *LoggingSummaryFetcher {
	return &LoggingSummaryFetcher{next: next, logger: logger}
}

// FetchSummary delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingSummaryFetcher) FetchSummary(ctx context.Context, articleURL string) (s *diarymap.Summary, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", articleURL,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", diarymap.ErrorCode(err), "err", err)
		} else {
			attrs = append(attrs, "title", s.Title, "chars", len(s.Extract))
		}
		f.logger.Info("summary fetch", attrs...)
	}(time.Now())
	return f.next.FetchSummary(ctx, articleURL)
}
