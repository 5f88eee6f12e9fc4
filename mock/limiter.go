package mock

import (
	"context"

	"github.com/fwojciec/diarymap"
)

var _ diarymap.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of diarymap.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
