package mock

import "github.com/fwojciec/diarymap"

var _ diarymap.MapRenderer = (*MapRenderer)(nil)

// MapRenderer is a mock implementation of diarymap.MapRenderer.
type MapRenderer struct {
	RenderMapFn func(m *diarymap.EventMap) (string, error)
}

func (r *MapRenderer) RenderMap(m *diarymap.EventMap) (string, error) {
	return r.RenderMapFn(m)
}
