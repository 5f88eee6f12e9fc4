// Package enrich adds encyclopedia summaries, key facts and schematic maps
// to the historical events of a timeline.
package enrich

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/diarymap"
	"golang.org/x/time/rate"
)

var _ diarymap.Limiter = (*rate.Limiter)(nil)

// DefaultRate is the default number of encyclopedia requests per second.
const DefaultRate = 2

// NewLimiter allows rps encyclopedia requests per second, without bursts.
// All fetches share one bucket.
func NewLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// SummaryParagraphs is the number of leading paragraphs kept from a summary.
const SummaryParagraphs = 2

// Origins of an event's summary.
const (
	OriginEncyclopedia = "encyclopedia"
	OriginResearch     = "research"
)

// Progress reports the outcome for one historical event.
type Progress struct {
	Event *diarymap.Event
	Index int
	Total int

	// Origin is where the summary came from, or empty if none was found.
	Origin string

	// Err is a fetch or render failure. The event is still enriched from
	// the research data where possible.
	Err error
}

// Result summarises an enrichment run.
type Result struct {
	// Events holds the enriched copies of the historical events, in
	// timeline order.
	Events []*diarymap.Event

	// Enriched counts events that gained a summary or a map.
	Enriched int

	// Failed counts events whose fetch or map render failed.
	Failed int
}

// Enricher enriches historical events.
type Enricher struct {
	// Summaries fetches article summaries. Nil works offline from the
	// research data only.
	Summaries diarymap.SummaryFetcher

	// Converter turns summary HTML into markdown paragraphs.
	Converter diarymap.Converter

	// Maps renders research map data. Nil skips maps.
	Maps diarymap.MapRenderer

	Research diarymap.Research

	// Limiter spaces out fetches. Nil fetches without waiting.
	Limiter diarymap.Limiter

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Enrich processes each historical event in tl. The timeline itself is not
// modified. Failures are reported through progress and never stop the run;
// only ctx cancellation does.
func (e *Enricher) Enrich(ctx context.Context, tl *diarymap.Timeline, progress func(Progress)) (*Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if progress == nil {
		progress = func(Progress) {}
	}

	historical := tl.Historical()
	result := &Result{Events: make([]*diarymap.Event, 0, len(historical))}

	for i, orig := range historical {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event := *orig
		p := Progress{Event: &event, Index: i, Total: len(historical)}
		research := e.Research[event.ID]

		summary, err := e.summarize(ctx, &event)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		if err != nil {
			logger.Debug("summary fetch failed", "event", event.ID, "source", event.Source, "error", err)
			p.Err = err
		}
		if summary != "" {
			p.Origin = OriginEncyclopedia
		} else if research != nil && research.Summary != "" {
			summary = research.Summary
			p.Origin = OriginResearch
		}
		if summary != "" {
			event.Summary = summary
		}

		if research != nil && len(research.KeyFacts) > 0 {
			event.KeyFacts = append([]string(nil), research.KeyFacts...)
		}

		var mapped bool
		if research != nil && research.Map != nil && e.Maps != nil {
			svg, err := e.Maps.RenderMap(research.Map)
			if err != nil {
				logger.Debug("map render failed", "event", event.ID, "error", err)
				if p.Err == nil {
					p.Err = err
				}
			} else {
				bounds := research.Map.Bounds
				event.MapSVG = svg
				event.MapBounds = &bounds
				mapped = true
			}
		}

		if p.Err != nil {
			result.Failed++
		}
		if summary != "" || mapped {
			result.Enriched++
		}
		result.Events = append(result.Events, &event)
		progress(p)
	}

	logger.Debug("enrichment complete",
		"events", len(result.Events),
		"enriched", result.Enriched,
		"failed", result.Failed)
	return result, nil
}

// summarize fetches the encyclopedia summary for event, if its source is an
// encyclopedia article. It returns the first paragraphs as markdown.
func (e *Enricher) summarize(ctx context.Context, event *diarymap.Event) (string, error) {
	if e.Summaries == nil || !IsEncyclopediaSource(event.Source) {
		return "", nil
	}

	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	s, err := e.Summaries.FetchSummary(ctx, event.Source)
	if err != nil {
		return "", err
	}

	if s.ExtractHTML != "" && e.Converter != nil {
		md, err := e.Converter.Convert(s.ExtractHTML)
		if err == nil {
			if text := FirstParagraphs(md, SummaryParagraphs); text != "" {
				return text, nil
			}
		}
	}
	return FirstParagraphs(s.Extract, SummaryParagraphs), nil
}

// IsEncyclopediaSource reports whether source links to an encyclopedia
// article that summaries can be fetched for.
func IsEncyclopediaSource(source string) bool {
	return strings.Contains(source, "wikipedia.org")
}

// FirstParagraphs returns the first n non-blank paragraphs of text, joined
// by blank lines. Paragraphs are separated by one or more blank lines.
func FirstParagraphs(text string, n int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paras []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paras = append(paras, p)
		if len(paras) == n {
			break
		}
	}
	return strings.Join(paras, "\n\n")
}
