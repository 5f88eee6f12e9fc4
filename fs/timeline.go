package fs

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/diarymap"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// PatchTimeline writes the enrichment fields of events into the timeline
// file at path, leaving every other field as it was. Events are matched by
// id; empty enrichment fields are left untouched. It returns the number of
// events patched.
func PatchTimeline(path string, events []*diarymap.Event) (int, error) {
	data, err := readFile(path, "timeline")
	if err != nil {
		return 0, err
	}
	if !gjson.ValidBytes(data) {
		return 0, diarymap.Errorf(diarymap.EINVALID, "%s: invalid JSON", path)
	}

	index := map[string]int{}
	for i, id := range gjson.GetBytes(data, "events.#.id").Array() {
		index[id.String()] = i
	}

	var patched int
	for _, e := range events {
		i, ok := index[e.ID]
		if !ok {
			return 0, diarymap.Errorf(diarymap.ENOTFOUND, "%s: event %q not found", path, e.ID)
		}
		prefix := "events." + strconv.Itoa(i) + "."

		var fields []field
		if e.Summary != "" {
			fields = append(fields, field{"summary", e.Summary})
		}
		if len(e.KeyFacts) > 0 {
			fields = append(fields, field{"key_facts", e.KeyFacts})
		}
		if e.MapSVG != "" {
			fields = append(fields, field{"map_svg", e.MapSVG})
		}
		if e.MapBounds != nil {
			fields = append(fields, field{"map_bounds", e.MapBounds})
		}
		if len(fields) == 0 {
			continue
		}

		for _, f := range fields {
			data, err = sjson.SetBytes(data, prefix+f.name, f.value)
			if err != nil {
				return 0, diarymap.Errorf(diarymap.EINTERNAL, "event %q: field %s: %s", e.ID, f.name, err)
			}
		}
		patched++
	}

	if _, err := WriteFile(path, pretty.PrettyOptions(data, prettyOptions)); err != nil {
		return 0, err
	}
	return patched, nil
}

type field struct {
	name  string
	value any
}

// WriteEventMaps writes each event's SVG map to dir as <id>.svg and returns
// the number of files written.
func WriteEventMaps(dir string, events []*diarymap.Event) (int, error) {
	var n int
	for _, e := range events {
		if e.MapSVG == "" {
			continue
		}
		if e.ID == "" || strings.ContainsAny(e.ID, `/\`) || e.ID == "." || e.ID == ".." {
			return n, diarymap.Errorf(diarymap.EINVALID, "event %q: id cannot be used as a file name", e.ID)
		}
		if _, err := WriteFile(filepath.Join(dir, e.ID+".svg"), []byte(e.MapSVG)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
