package mock

import "github.com/fwojciec/diarymap"

var _ diarymap.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of diarymap.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
