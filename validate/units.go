package validate

import (
	"time"

	"github.com/fwojciec/diarymap"
)

func checkUnits(r *Report, u *diarymap.UnitHistory, places diarymap.PlaceIndex) {
	sources := map[string]bool{}
	for i, s := range u.Sources {
		if s == nil {
			r.null(UnitsFile, "sources", i)
			continue
		}
		checkStruct(r, UnitsFile, s.ID, s)
		if s.ID != "" && sources[s.ID] {
			r.errorf(UnitsFile, s.ID, "id", "duplicate source id")
		}
		sources[s.ID] = true
	}

	units := map[string]bool{}
	for i, unit := range u.Units {
		if unit == nil {
			r.null(UnitsFile, "units", i)
			continue
		}
		checkStruct(r, UnitsFile, unit.ID, unit)
		if unit.ID != "" && units[unit.ID] {
			r.errorf(UnitsFile, unit.ID, "id", "duplicate unit id")
		}
		units[unit.ID] = true
		if unit.Type != "" && !u.Schema.HasUnitType(unit.Type) {
			r.errorf(UnitsFile, unit.ID, "type", "%q is not a declared unit type", unit.Type)
		}
	}
	for _, unit := range u.Units {
		if unit == nil {
			continue
		}
		if unit.Parent != "" && !units[unit.Parent] {
			r.errorf(UnitsFile, unit.ID, "parent", "unknown unit %q", unit.Parent)
		}
	}

	events := map[string]bool{}
	var prev time.Time
	for i, e := range u.Events {
		if e == nil {
			r.null(UnitsFile, "events", i)
			continue
		}
		checkStruct(r, UnitsFile, e.ID, e)
		if e.ID != "" && events[e.ID] {
			r.errorf(UnitsFile, e.ID, "id", "duplicate event id")
		}
		events[e.ID] = true

		if e.Type != "" && !u.Schema.HasEventType(e.Type) {
			r.errorf(UnitsFile, e.ID, "type", "%q is not a declared event type", e.Type)
		}
		if e.UnitID != "" && !units[e.UnitID] {
			r.errorf(UnitsFile, e.ID, "unit_id", "unknown unit %q", e.UnitID)
		}
		for _, id := range e.SourceIDs {
			if !sources[id] {
				r.errorf(UnitsFile, e.ID, "source_ids", "unknown source %q", id)
			}
		}
		for _, id := range e.RelatedPlaces {
			if !places.Has(id) {
				r.errorf(UnitsFile, e.ID, "related_places", "unknown place %q", id)
			}
		}

		date, ok := checkDate(r, UnitsFile, e.ID, "date", e.Date)
		if ok {
			if date.Before(prev) {
				r.errorf(UnitsFile, e.ID, "date", "%s is out of order: events must be sorted by date", e.Date)
			}
			prev = date
		}
		if e.EndDate != "" {
			if end, endOK := checkDate(r, UnitsFile, e.ID, "end_date", e.EndDate); endOK && ok && end.Before(date) {
				r.errorf(UnitsFile, e.ID, "end_date", "%s is before date %s", e.EndDate, e.Date)
			}
		}
	}
}
