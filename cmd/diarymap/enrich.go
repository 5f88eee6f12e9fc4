package main

import (
	"fmt"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/enrich"
	"github.com/fwojciec/diarymap/fs"
	dmhttp "github.com/fwojciec/diarymap/http"
	dmslog "github.com/fwojciec/diarymap/slog"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	path := deps.Path(fs.TimelineFile)
	timeline, err := fs.LoadTimeline(path)
	if err == nil && len(timeline.Events) == 0 {
		err = diarymap.Errorf(diarymap.ENOTFOUND, "timeline %s has no events to enrich", path)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	research, err := fs.LoadResearch(deps.Path(fs.ResearchFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	if c.Rate <= 0 {
		err := diarymap.Errorf(diarymap.EINVALID, "--rate must be positive, got %g", c.Rate)
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	summaries := deps.Summaries
	if c.Offline {
		summaries = nil
	} else if summaries == nil {
		client := dmhttp.NewSummaryService(deps.Config.SummaryOptions(c.Timeout)...)
		summaries = dmslog.NewLoggingSummaryFetcher(client, deps.Logger)
	}

	enricher := &enrich.Enricher{
		Summaries: summaries,
		Converter: deps.Converter,
		Maps:      deps.Maps,
		Research:  research,
		Limiter:   enrich.NewLimiter(c.Rate),
		Logger:    deps.Logger,
	}

	result, err := enricher.Enrich(deps.Ctx, timeline, func(p enrich.Progress) {
		origin := p.Origin
		if origin == "" {
			origin = "no summary"
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %s", p.Index+1, p.Total, p.Event.Name, origin)
		if p.Event.MapSVG != "" {
			fmt.Fprint(deps.Stdout, ", map")
		}
		fmt.Fprintln(deps.Stdout)
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", p.Event.ID, diarymap.ErrorMessage(p.Err))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	patched, err := fs.PatchTimeline(path, result.Events)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	mapsDir := deps.Path(fs.EventMapsDir)
	maps, err := fs.WriteEventMaps(mapsDir, result.Events)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d of %d historical events enriched, %d patched in %s, %d maps in %s\n",
		result.Enriched, len(result.Events), patched, path, maps, mapsDir)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d events had fetch or map errors\n", result.Failed)
	}
	return nil
}
