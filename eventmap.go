package diarymap

// MapMarker is a labelled point on an event map, in map coordinates.
type MapMarker struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Annotation kinds drawn on event maps.
const (
	AnnotationArrow        = "arrow"
	AnnotationZone         = "zone"
	AnnotationEncirclement = "encirclement"
	AnnotationRiver        = "river"
	AnnotationRoute        = "route"
	AnnotationBulge        = "bulge"
)

// MapAnnotation is an overlay drawn on an event map. Which fields are used
// depends on Type.
type MapAnnotation struct {
	Type  string  `json:"type"`
	X1    float64 `json:"x1,omitempty"`
	Y1    float64 `json:"y1,omitempty"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	CX    float64 `json:"cx,omitempty"`
	CY    float64 `json:"cy,omitempty"`
	R     float64 `json:"r,omitempty"`
	RX    float64 `json:"rx,omitempty"`
	RY    float64 `json:"ry,omitempty"`
	Path  string  `json:"path,omitempty"`
	Label string  `json:"label,omitempty"`
}

// EventMap describes a schematic mini map for a historical event.
type EventMap struct {
	Title       string          `json:"title"`
	Bounds      MapBounds       `json:"bounds"`
	LandPath    string          `json:"land_path,omitempty"`
	WaterPath   string          `json:"water_path,omitempty"`
	Markers     []MapMarker     `json:"markers,omitempty"`
	Annotations []MapAnnotation `json:"annotations,omitempty"`
}

// MapRenderer renders event maps.
type MapRenderer interface {
	// RenderMap returns the map as a standalone SVG document.
	RenderMap(m *EventMap) (string, error)
}

// ResearchEntry is pre-researched content for one historical event.
// It backs enrichment when the encyclopedia is unavailable.
type ResearchEntry struct {
	Summary  string    `json:"summary,omitempty"`
	KeyFacts []string  `json:"key_facts,omitempty"`
	Map      *EventMap `json:"map,omitempty"`
}

// Research maps event ids to pre-researched content.
type Research map[string]*ResearchEntry
