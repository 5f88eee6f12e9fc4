package validate

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/diarymap"
)

// Content quality thresholds for historical events.
const (
	MinSummaryLength     = 100
	MinDescriptionLength = 20
	MinKeyFacts          = 2
	MaxKeyFacts          = 6
	MinKeyFactLength     = 10
	MaxKeyFactLength     = 150
	MinBoundsSpan        = 0.1
	MaxBoundsSpan        = 10.0
)

func checkTimeline(r *Report, tl *diarymap.Timeline, places diarymap.PlaceIndex, rules Rules) {
	if tl.Metadata == nil || tl.Metadata.DateRange.IsZero() {
		r.errorf(TimelineFile, "", "metadata.date_range", "is required")
	}
	if len(tl.Events) == 0 {
		r.errorf(TimelineFile, "", "events", "no events defined")
		return
	}

	periodStart, _ := diarymap.ParseDate(rules.Period.Start)
	periodEnd, _ := diarymap.ParseDate(rules.Period.End)

	seen := map[string]bool{}
	sameDay := map[string]string{}
	var prev time.Time
	for i, e := range tl.Events {
		if e == nil {
			r.null(TimelineFile, "events", i)
			continue
		}
		checkStruct(r, TimelineFile, e.ID, e)

		if e.ID != "" {
			if seen[e.ID] {
				r.errorf(TimelineFile, e.ID, "id", "duplicate event id")
			}
			seen[e.ID] = true
		}

		date, ok := checkDate(r, TimelineFile, e.ID, "date", e.Date)
		if ok {
			if !periodStart.IsZero() && (date.Before(periodStart) || date.After(periodEnd)) {
				r.errorf(TimelineFile, e.ID, "date", "%s outside %s..%s", e.Date, rules.Period.Start, rules.Period.End)
			}
			if date.Before(prev) {
				r.errorf(TimelineFile, e.ID, "date", "%s is out of order: events must be sorted by date", e.Date)
			}
			prev = date
		}
		if e.EndDate != nil {
			if end, endOK := checkDate(r, TimelineFile, e.ID, "end_date", *e.EndDate); endOK && ok && end.Before(date) {
				r.errorf(TimelineFile, e.ID, "end_date", "%s is before date %s", *e.EndDate, e.Date)
			}
		}

		key := e.Date + "/" + string(e.Type)
		if other, dup := sameDay[key]; dup {
			r.warnf(TimelineFile, e.ID, "date", "another %s event on %s (%s) may be a duplicate", e.Type, e.Date, other)
		} else {
			sameDay[key] = e.ID
		}

		for _, id := range e.RelatedPlaces {
			if !places.Has(id) {
				r.errorf(TimelineFile, e.ID, "related_places", "unknown place %q", id)
			}
		}

		switch e.Type {
		case diarymap.EventHistorical:
			checkHistorical(r, e)
		case diarymap.EventDiary:
			checkDiary(r, e)
		}
	}
}

func checkDate(r *Report, file, record, field, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := diarymap.ParseDate(value)
	if err != nil {
		r.errorf(file, record, field, "%s", diarymap.ErrorMessage(err))
		return time.Time{}, false
	}
	return t, true
}

func checkHistorical(r *Report, e *diarymap.Event) {
	if e.Source == "" {
		r.errorf(TimelineFile, e.ID, "source", "is required for historical events")
	} else if u, err := url.Parse(e.Source); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		r.errorf(TimelineFile, e.ID, "source", "%q is not an http(s) URL", e.Source)
	} else if strings.Contains(u.Host, "wikipedia.org") && (u.Host != "en.wikipedia.org" || !strings.HasPrefix(u.Path, "/wiki/")) {
		r.errorf(TimelineFile, e.ID, "source", "%q should be an en.wikipedia.org/wiki/ URL", e.Source)
	}

	if b := e.MapBounds; b == nil {
		r.warnf(TimelineFile, e.ID, "map_bounds", "is missing")
	} else {
		if b.North <= b.South {
			r.errorf(TimelineFile, e.ID, "map_bounds", "north %g is not above south %g", b.North, b.South)
		}
		if b.East <= b.West {
			r.errorf(TimelineFile, e.ID, "map_bounds", "east %g is not beyond west %g", b.East, b.West)
		}
		lat, lng := b.North-b.South, b.East-b.West
		if lat > 0 && lng > 0 && (lat < MinBoundsSpan || lng < MinBoundsSpan || lat > MaxBoundsSpan || lng > MaxBoundsSpan) {
			r.warnf(TimelineFile, e.ID, "map_bounds", "span %.2f x %.2f degrees outside %g..%g", lat, lng, MinBoundsSpan, MaxBoundsSpan)
		}
	}

	if n := utf8.RuneCountInString(e.Summary); n == 0 {
		r.warnf(TimelineFile, e.ID, "summary", "is missing")
	} else if n < MinSummaryLength {
		r.warnf(TimelineFile, e.ID, "summary", "%d characters, want at least %d", n, MinSummaryLength)
	}
	if n := utf8.RuneCountInString(e.Description); n < MinDescriptionLength {
		r.warnf(TimelineFile, e.ID, "description", "%d characters, want at least %d", n, MinDescriptionLength)
	}

	if n := len(e.KeyFacts); n < MinKeyFacts || n > MaxKeyFacts {
		r.warnf(TimelineFile, e.ID, "key_facts", "%d facts, want %d..%d", n, MinKeyFacts, MaxKeyFacts)
	}
	for i, f := range e.KeyFacts {
		n := utf8.RuneCountInString(strings.TrimSpace(f))
		switch {
		case n == 0:
			r.errorf(TimelineFile, e.ID, "key_facts", "fact %d is empty", i)
		case n < MinKeyFactLength || n > MaxKeyFactLength:
			r.warnf(TimelineFile, e.ID, "key_facts", "fact %d has %d characters, want %d..%d", i, n, MinKeyFactLength, MaxKeyFactLength)
		}
	}
}

func checkDiary(r *Report, e *diarymap.Event) {
	if e.Source != diarymap.SourceDiary {
		r.errorf(TimelineFile, e.ID, "source", "diary events must cite %q, got %q", diarymap.SourceDiary, e.Source)
	}
	if e.Description == "" {
		r.errorf(TimelineFile, e.ID, "description", "is required for diary events")
	}
	if len(e.RelatedPlaces) == 0 {
		r.warnf(TimelineFile, e.ID, "related_places", "diary event has no related places")
	}
}
