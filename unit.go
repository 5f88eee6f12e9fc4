package diarymap

import (
	"slices"
	"time"
)

// UnitSchema is the controlled vocabulary for unit history records.
type UnitSchema struct {
	UnitTypes  []string `json:"unit_types"`
	EventTypes []string `json:"event_types"`
}

// HasUnitType reports whether t belongs to the vocabulary.
func (s *UnitSchema) HasUnitType(t string) bool {
	return slices.Contains(s.UnitTypes, t)
}

// HasEventType reports whether t belongs to the vocabulary.
func (s *UnitSchema) HasEventType(t string) bool {
	return slices.Contains(s.EventTypes, t)
}

// Source is a cited reference for unit history.
type Source struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url,omitempty" validate:"omitempty,url"`
}

// Unit is a military formation the diarist served in or alongside.
type Unit struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Parent string `json:"parent,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UnitEvent is a dated entry in a unit's history.
type UnitEvent struct {
	ID            string   `json:"id" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	EndDate       string   `json:"end_date,omitempty"`
	UnitID        string   `json:"unit_id" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	Description   string   `json:"description,omitempty"`
	RelatedPlaces []string `json:"related_places,omitempty"`
	SourceIDs     []string `json:"source_ids,omitempty"`
}

// UnitHistory is the on-disk shape of the unit history file.
type UnitHistory struct {
	Schema  UnitSchema   `json:"schema"`
	Sources []*Source    `json:"sources"`
	Units   []*Unit      `json:"units"`
	Events  []*UnitEvent `json:"events"`
}

// SortUnitEvents orders unit events by date, ascending and stable.
func SortUnitEvents(events []*UnitEvent) error {
	keys := make(map[*UnitEvent]time.Time, len(events))
	for i, e := range events {
		if e == nil {
			return Errorf(EINVALID, "unit events[%d] is null", i)
		}
		t, err := ParseDate(e.Date)
		if err != nil {
			return Errorf(EINVALID, "unit event %q: field date: %s", e.ID, ErrorMessage(err))
		}
		keys[e] = t
	}
	slices.SortStableFunc(events, func(a, b *UnitEvent) int {
		return keys[a].Compare(keys[b])
	})
	return nil
}
