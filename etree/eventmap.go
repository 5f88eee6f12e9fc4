// Package etree renders schematic event maps as SVG using beevik/etree.
package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/diarymap"
)

// Ensure MapRenderer implements diarymap.MapRenderer at compile time.
var _ diarymap.MapRenderer = (*MapRenderer)(nil)

// Map canvas size in SVG user units.
const (
	Width  = 300
	Height = 200
)

const styles = `
      .water { fill: #b8d4e8; }
      .land { fill: #e8e4d9; }
      .marker { fill: #8b4513; }
      .label { font-family: Georgia, serif; font-size: 10px; fill: #333; }
      .title { font-family: Georgia, serif; font-size: 11px; font-weight: bold; fill: #2c3e50; }
      .annotation { fill: none; stroke: #8b4513; stroke-width: 1.5; opacity: 0.6; }
      .river { fill: none; stroke: #6ba3d6; stroke-width: 2; }
      .zone { fill: #c0392b; opacity: 0.2; }
    `

// MapRenderer draws event maps: water background, land mass, optional
// water overlay, annotations, labelled markers and a title.
type MapRenderer struct{}

// NewMapRenderer creates a new MapRenderer.
func NewMapRenderer() *MapRenderer {
	return &MapRenderer{}
}

// RenderMap returns m as an indented SVG document.
func (r *MapRenderer) RenderMap(m *diarymap.EventMap) (string, error) {
	if m == nil {
		return "", diarymap.Errorf(diarymap.EINVALID, "event map required")
	}

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("viewBox", "0 0 "+num(Width)+" "+num(Height))
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	defs := svg.CreateElement("defs")
	defs.CreateElement("style").SetText(styles)
	arrow := defs.CreateElement("marker")
	setAttrs(arrow, "id", "arrowhead", "markerWidth", "8", "markerHeight", "6", "refX", "8", "refY", "3", "orient", "auto")
	setAttrs(arrow.CreateElement("path"), "d", "M0,0 L8,3 L0,6 Z", "class", "marker")

	setAttrs(svg.CreateElement("rect"), "class", "water", "width", num(Width), "height", num(Height))
	if m.LandPath != "" {
		setAttrs(svg.CreateElement("path"), "class", "land", "d", m.LandPath)
	}
	if m.WaterPath != "" {
		setAttrs(svg.CreateElement("path"), "class", "water", "d", m.WaterPath)
	}

	for i, a := range m.Annotations {
		if err := annotate(svg, a); err != nil {
			return "", diarymap.Errorf(diarymap.EINVALID, "map %q: annotations[%d]: %s", m.Title, i, diarymap.ErrorMessage(err))
		}
	}

	for _, mk := range m.Markers {
		setAttrs(svg.CreateElement("circle"), "class", "marker", "cx", num(mk.X), "cy", num(mk.Y), "r", "4")
		label := svg.CreateElement("text")
		setAttrs(label, "class", "label", "x", num(mk.X+6), "y", num(mk.Y+4))
		label.SetText(mk.Label)
	}

	title := svg.CreateElement("text")
	setAttrs(title, "class", "title", "x", "10", "y", "15")
	title.SetText(m.Title)

	doc.Indent(2)
	return doc.WriteToString()
}

func annotate(svg *etree.Element, a diarymap.MapAnnotation) error {
	switch a.Type {
	case diarymap.AnnotationArrow:
		setAttrs(svg.CreateElement("line"), "class", "annotation",
			"x1", num(a.X1), "y1", num(a.Y1), "x2", num(a.X2), "y2", num(a.Y2),
			"marker-end", "url(#arrowhead)")
		if a.Label != "" {
			label := svg.CreateElement("text")
			setAttrs(label, "class", "label", "x", num(a.X1+4), "y", num(a.Y1))
			label.SetText(a.Label)
		}
	case diarymap.AnnotationZone:
		setAttrs(svg.CreateElement("circle"), "class", "zone", "cx", num(a.CX), "cy", num(a.CY), "r", num(a.R))
	case diarymap.AnnotationEncirclement:
		setAttrs(svg.CreateElement("ellipse"), "class", "annotation",
			"cx", num(a.CX), "cy", num(a.CY), "rx", num(a.RX), "ry", num(a.RY),
			"stroke-dasharray", "5,3")
	case diarymap.AnnotationRiver:
		setAttrs(svg.CreateElement("path"), "class", "river", "d", a.Path)
	case diarymap.AnnotationRoute:
		setAttrs(svg.CreateElement("path"), "class", "annotation", "d", a.Path, "stroke-dasharray", "4,2")
	case diarymap.AnnotationBulge:
		setAttrs(svg.CreateElement("path"), "class", "annotation", "d", a.Path, "stroke-width", "2")
	default:
		return diarymap.Errorf(diarymap.EINVALID, "unknown annotation type %q", a.Type)
	}
	return nil
}

// setAttrs sets alternating key/value pairs on el.
func setAttrs(el *etree.Element, kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		el.CreateAttr(kv[i], kv[i+1])
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
