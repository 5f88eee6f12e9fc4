package mock

import (
	"context"

	"github.com/fwojciec/diarymap"
)

var _ diarymap.SummaryFetcher = (*SummaryFetcher)(nil)

// SummaryFetcher is a mock implementation of diarymap.SummaryFetcher.
type SummaryFetcher struct {
	FetchSummaryFn func(ctx context.Context, articleURL string) (*diarymap.Summary, error)
}

func (f *SummaryFetcher) FetchSummary(ctx context.Context, articleURL string) (*diarymap.Summary, error) {
	return f.FetchSummaryFn(ctx, articleURL)
}
