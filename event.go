package diarymap

import (
	"slices"
	"time"
)

// EventType distinguishes events taken from history from those taken from the diary.
type EventType string

// EventType constants.
const (
	EventHistorical EventType = "historical"
	EventDiary      EventType = "diary"
)

// SourceDiary is the Source value of events that cite the diary itself.
const SourceDiary = "diary"

// MapBounds is the geographic box shown by an event's mini map.
type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Event is a dated occurrence on the timeline.
type Event struct {
	ID            string    `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Date          string    `json:"date" validate:"required"`
	EndDate       *string   `json:"end_date"`
	Type          EventType `json:"type" validate:"required,oneof=historical diary"`
	Description   string    `json:"description,omitempty"`
	Source        string    `json:"source,omitempty"`
	RelatedPlaces []string  `json:"related_places,omitempty"`

	// Enrichment fields, written by the enrich command.
	Summary   string     `json:"summary,omitempty"`
	KeyFacts  []string   `json:"key_facts,omitempty"`
	MapSVG    string     `json:"map_svg,omitempty"`
	MapBounds *MapBounds `json:"map_bounds,omitempty"`
}

// End returns the end date, or the empty string for single-day events.
func (e *Event) End() string {
	if e.EndDate == nil {
		return ""
	}
	return *e.EndDate
}

// TimelineMetadata describes the timeline as a whole.
type TimelineMetadata struct {
	Title     string    `json:"title,omitempty"`
	DateRange DateRange `json:"date_range"`
}

// Timeline is the on-disk shape of the timeline file.
type Timeline struct {
	Metadata *TimelineMetadata `json:"metadata,omitempty"`
	Events   []*Event          `json:"events"`
}

// Historical returns the historical events in timeline order.
func (t *Timeline) Historical() []*Event {
	var events []*Event
	for _, e := range t.Events {
		if e.Type == EventHistorical {
			events = append(events, e)
		}
	}
	return events
}

// Range returns the metadata date range, falling back to the first and
// last event dates when the metadata does not declare one.
func (t *Timeline) Range() DateRange {
	if t.Metadata != nil && !t.Metadata.DateRange.IsZero() {
		return t.Metadata.DateRange
	}
	var r DateRange
	for _, e := range t.Events {
		if r.Start == "" || e.Date < r.Start {
			r.Start = e.Date
		}
		if end := max(e.Date, e.End()); end > r.End {
			r.End = end
		}
	}
	return r
}

// SortEvents orders events by date, ascending. Events sharing a date keep
// their relative order. A malformed date is reported with the event id.
func SortEvents(events []*Event) error {
	keys := make(map[*Event]time.Time, len(events))
	for i, e := range events {
		if e == nil {
			return Errorf(EINVALID, "events[%d] is null", i)
		}
		t, err := ParseDate(e.Date)
		if err != nil {
			return Errorf(EINVALID, "event %q: field date: %s", e.ID, ErrorMessage(err))
		}
		keys[e] = t
	}
	slices.SortStableFunc(events, func(a, b *Event) int {
		return keys[a].Compare(keys[b])
	})
	return nil
}
