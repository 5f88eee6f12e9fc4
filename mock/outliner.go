package mock

import "github.com/fwojciec/diarymap"

var _ diarymap.Outliner = (*Outliner)(nil)

// Outliner is a mock implementation of diarymap.Outliner.
type Outliner struct {
	OutlineFn func(html string) ([]diarymap.Entry, error)
}

func (o *Outliner) Outline(html string) ([]diarymap.Entry, error) {
	return o.OutlineFn(html)
}
