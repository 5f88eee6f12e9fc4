package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/diarymap"
)

// Ensure LoggingRenderer implements diarymap.Renderer.
var _ diarymap.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   diarymap.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next diarymap.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs sizes and duration.
func (r *LoggingRenderer) Render(markdown string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("markdown render",
			"in", len(markdown),
			"out", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(markdown)
}

// Ensure LoggingMapRenderer implements diarymap.MapRenderer.
var _ diarymap.MapRenderer = (*LoggingMapRenderer)(nil)

// LoggingMapRenderer wraps a MapRenderer with logging.
type LoggingMapRenderer struct {
	next   diarymap.MapRenderer
	logger *slog.Logger
}

// NewLoggingMapRenderer creates a new LoggingMapRenderer.
func NewLoggingMapRenderer(next diarymap.MapRenderer, logger *slog.Logger) *LoggingMapRenderer {
	return &LoggingMapRenderer{next: next, logger: logger}
}

// RenderMap delegates to the wrapped renderer and logs the outcome.
func (r *LoggingMapRenderer) RenderMap(m *diarymap.EventMap) (svg string, err error) {
	defer func(begin time.Time) {
		var title string
		if m != nil {
			title = m.Title
		}
		r.logger.Info("map render",
			"title", title,
			"bytes", len(svg),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderMap(m)
}
