package diarymap

// Place represents a named, geocoded location mentioned in the diary.
// Keywords are the surface forms used to find mentions in the text.
type Place struct {
	ID          string   `json:"id" validate:"required"`
	DisplayName string   `json:"display_name" validate:"required"`
	Lat         float64  `json:"lat" validate:"latitude"`
	Lng         float64  `json:"lng" validate:"longitude"`
	Country     string   `json:"country" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1,dive,required"`
	Summary     string   `json:"summary,omitempty"`
	DateRange   string   `json:"date_range,omitempty"`
	StartDate   string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Validate returns an error if the place cannot take part in annotation.
func (p *Place) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "place id required (display name %q)", p.DisplayName)
	}
	if len(p.Keywords) == 0 {
		return Errorf(EINVALID, "place %q: keywords required", p.ID)
	}
	for i, kw := range p.Keywords {
		if kw == "" {
			return Errorf(EINVALID, "place %q: keywords[%d] is empty", p.ID, i)
		}
	}
	return nil
}

// PlaceFile is the on-disk shape of the place registry.
type PlaceFile struct {
	Places []*Place `json:"places"`
}

// PlaceIndex maps place ids to places.
type PlaceIndex map[string]*Place

// IndexPlaces builds a PlaceIndex, rejecting duplicate ids.
func IndexPlaces(places []*Place) (PlaceIndex, error) {
	idx := make(PlaceIndex, len(places))
	for i, p := range places {
		if p == nil {
			return nil, Errorf(EINVALID, "places[%d] is null", i)
		}
		if _, ok := idx[p.ID]; ok {
			return nil, Errorf(EINVALID, "duplicate place id %q", p.ID)
		}
		idx[p.ID] = p
	}
	return idx, nil
}

// Has reports whether id names a registered place.
func (idx PlaceIndex) Has(id string) bool {
	_, ok := idx[id]
	return ok
}
