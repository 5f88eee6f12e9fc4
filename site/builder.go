package site

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/keyword"
	"github.com/fwojciec/diarymap/markup"
	"github.com/fwojciec/diarymap/validate"
)

// Source is the raw material of a build.
type Source struct {
	// Diary is the diary markdown.
	Diary    string
	Places   []*diarymap.Place
	Timeline *diarymap.Timeline
	Units    *diarymap.UnitHistory
	Version  diarymap.Version
	Title    string
}

// Builder turns a Source into a page: validate, render the markdown,
// annotate place mentions, outline the entries and assemble.
type Builder struct {
	Renderer diarymap.Renderer
	Outliner diarymap.Outliner

	// Rules for the validation pass. Nil skips validation.
	Rules *validate.Rules

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Build runs the pipeline. It fails on the first validation error, before
// any rendering happens.
func (b *Builder) Build(src Source) (*diarymap.Artifact, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := time.Now()

	if b.Rules != nil {
		report := validate.Dataset(validate.Input{
			Places:   src.Places,
			Timeline: src.Timeline,
			Units:    src.Units,
		}, *b.Rules)
		for _, w := range report.Warnings() {
			logger.Warn("validation", "file", w.File, "record", w.Record, "field", w.Field, "message", w.Message)
		}
		if err := report.Err(); err != nil {
			return nil, err
		}
	}

	matcher, err := keyword.New(src.Places)
	if err != nil {
		return nil, err
	}

	html, err := b.Renderer.Render(src.Diary)
	if err != nil {
		return nil, err
	}

	diary, err := markup.Annotate(html, matcher)
	if err != nil {
		return nil, err
	}
	logger.Debug("annotated diary",
		"keywords", matcher.Forms(),
		"mentions", len(diary.Spans()),
		"places", len(diary.PlaceIDs()))

	outline, err := b.Outliner.Outline(html)
	if err != nil {
		return nil, err
	}

	artifact, err := Assemble(Input{
		Diary:    diary,
		Places:   src.Places,
		Timeline: src.Timeline,
		Units:    src.Units,
		Outline:  outline,
		Version:  src.Version,
		Title:    src.Title,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("assembled page",
		"bytes", len(artifact.HTML),
		"fingerprint", artifact.Fingerprint,
		"duration", time.Since(start))
	return artifact, nil
}
