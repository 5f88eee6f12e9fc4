package validate

import "github.com/fwojciec/diarymap"

func checkPlaces(r *Report, places []*diarymap.Place, rules Rules) diarymap.PlaceIndex {
	idx := diarymap.PlaceIndex{}
	if len(places) == 0 {
		r.errorf(PlacesFile, "", "places", "no places defined")
		return idx
	}

	for i, p := range places {
		if p == nil {
			r.null(PlacesFile, "places", i)
			continue
		}
		record := p.ID
		if record == "" {
			record = p.DisplayName
		}
		checkStruct(r, PlacesFile, record, p)

		if p.ID != "" {
			if idx.Has(p.ID) {
				r.errorf(PlacesFile, p.ID, "id", "duplicate place id (entry %d)", i)
			} else {
				idx[p.ID] = p
			}
		}

		if p.Lat == 0 && p.Lng == 0 {
			r.errorf(PlacesFile, record, "lat", "coordinates are (0, 0)")
		} else if !rules.Bounds.Contains(p.Lat, p.Lng) {
			r.errorf(PlacesFile, record, "lat", "coordinates (%g, %g) outside bounds", p.Lat, p.Lng)
		}

		if p.StartDate != "" && p.EndDate != "" && p.EndDate < p.StartDate {
			r.errorf(PlacesFile, record, "end_date", "%s is before start_date %s", p.EndDate, p.StartDate)
		}
	}
	return idx
}
