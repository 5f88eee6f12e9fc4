package mock

import "github.com/fwojciec/diarymap"

var _ diarymap.Converter = (*Converter)(nil)

// Converter is a mock implementation of diarymap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
