// Package site assembles the annotated diary and its data files into a
// single self-contained HTML page.
package site

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/markup"
)

// DefaultTitle is used when neither the caller nor the timeline names the page.
const DefaultTitle = "Diary Map"

var (
	//go:embed page.html.tmpl
	pageSource string

	//go:embed app.js
	appSource string

	pageTemplate = template.Must(template.New("page").Parse(pageSource))
)

// Input is everything a page is built from.
type Input struct {
	Diary    diarymap.AnnotatedText
	Places   []*diarymap.Place
	Timeline *diarymap.Timeline
	Units    *diarymap.UnitHistory
	Outline  []diarymap.Entry
	Version  diarymap.Version
	Title    string
}

type page struct {
	Title    string
	Diary    template.HTML
	Outline  []diarymap.Entry
	Places   template.JS
	Timeline template.JS
	Units    template.JS
	Range    diarymap.DateRange
	App      template.JS
}

// Assemble renders the page. Timeline and unit events are ordered by date;
// the inputs are not modified. Two calls with the same input produce the
// same bytes and fingerprint.
func Assemble(in Input) (*diarymap.Artifact, error) {
	timeline := diarymap.Timeline{Events: []*diarymap.Event{}}
	if in.Timeline != nil {
		timeline.Metadata = in.Timeline.Metadata
		timeline.Events = append(timeline.Events, in.Timeline.Events...)
	}
	if err := diarymap.SortEvents(timeline.Events); err != nil {
		return nil, err
	}

	units := diarymap.UnitHistory{
		Sources: []*diarymap.Source{},
		Units:   []*diarymap.Unit{},
		Events:  []*diarymap.UnitEvent{},
	}
	if in.Units != nil {
		units.Schema = in.Units.Schema
		units.Sources = append(units.Sources, in.Units.Sources...)
		units.Units = append(units.Units, in.Units.Units...)
		units.Events = append(units.Events, in.Units.Events...)
	}
	if err := diarymap.SortUnitEvents(units.Events); err != nil {
		return nil, err
	}

	places := in.Places
	if places == nil {
		places = []*diarymap.Place{}
	}

	p := page{
		Title:   title(in.Title, &timeline),
		Outline: in.Outline,
		Range:   timeline.Range(),
		App:     template.JS(appSource),
	}
	var err error
	if p.Places, err = marshal("places", places); err != nil {
		return nil, err
	}
	if p.Timeline, err = marshal("timeline", &timeline); err != nil {
		return nil, err
	}
	if p.Units, err = marshal("units", &units); err != nil {
		return nil, err
	}

	diary := markup.Render(in.Diary)

	// The fingerprint covers everything but the version marker.
	p.Diary = template.HTML(markup.InjectVersion(diary, diarymap.Version{}))
	unversioned, err := render(&p)
	if err != nil {
		return nil, err
	}

	p.Diary = template.HTML(markup.InjectVersion(diary, in.Version))
	html, err := render(&p)
	if err != nil {
		return nil, err
	}

	return &diarymap.Artifact{
		HTML:        html,
		Fingerprint: Fingerprint(unversioned),
	}, nil
}

// Fingerprint returns the hex xxhash64 digest of b.
func Fingerprint(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

func title(explicit string, tl *diarymap.Timeline) string {
	if explicit != "" {
		return explicit
	}
	if tl.Metadata != nil && tl.Metadata.Title != "" {
		return tl.Metadata.Title
	}
	return DefaultTitle
}

func marshal(name string, v any) (template.JS, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", diarymap.Errorf(diarymap.EINTERNAL, "encode %s: %s", name, err)
	}
	return template.JS(b), nil
}

func render(p *page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
