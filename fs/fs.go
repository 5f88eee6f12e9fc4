// Package fs reads project input files and writes generated artifacts.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/diarymap"
)

// Default file locations, relative to the project directory.
const (
	DiaryFile    = "diary.md"
	PlacesFile   = "places.json"
	TimelineFile = "data/timeline.json"
	UnitsFile    = "data/units.json"
	ResearchFile = "data/research.json"
	EventMapsDir = "data/event_maps"
	OutputFile   = "index.html"
)

// DefaultTimelineRange is used when no timeline file exists yet.
var DefaultTimelineRange = diarymap.DateRange{Start: "1943-12-01", End: "1946-02-18"}

// ReadDiary returns the diary markdown.
func ReadDiary(path string) (string, error) {
	b, err := readFile(path, "diary")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadPlaces reads the place registry.
func LoadPlaces(path string) ([]*diarymap.Place, error) {
	b, err := readFile(path, "places")
	if err != nil {
		return nil, err
	}
	var f diarymap.PlaceFile
	if err := decode(path, b, &f); err != nil {
		return nil, err
	}
	if err := checkEntries(path, "places", f.Places); err != nil {
		return nil, err
	}
	return f.Places, nil
}

// LoadTimeline reads the timeline. A missing file yields an empty timeline
// spanning DefaultTimelineRange.
func LoadTimeline(path string) (*diarymap.Timeline, error) {
	b, err := readFile(path, "timeline")
	if diarymap.ErrorCode(err) == diarymap.ENOTFOUND {
		return &diarymap.Timeline{
			Metadata: &diarymap.TimelineMetadata{DateRange: DefaultTimelineRange},
			Events:   []*diarymap.Event{},
		}, nil
	} else if err != nil {
		return nil, err
	}
	var t diarymap.Timeline
	if err := decode(path, b, &t); err != nil {
		return nil, err
	}
	if err := checkEntries(path, "events", t.Events); err != nil {
		return nil, err
	}
	if t.Events == nil {
		t.Events = []*diarymap.Event{}
	}
	return &t, nil
}

// LoadUnits reads the unit history. A missing file yields an empty history.
func LoadUnits(path string) (*diarymap.UnitHistory, error) {
	b, err := readFile(path, "units")
	if diarymap.ErrorCode(err) == diarymap.ENOTFOUND {
		return &diarymap.UnitHistory{}, nil
	} else if err != nil {
		return nil, err
	}
	var u diarymap.UnitHistory
	if err := decode(path, b, &u); err != nil {
		return nil, err
	}
	if err := checkEntries(path, "sources", u.Sources); err != nil {
		return nil, err
	}
	if err := checkEntries(path, "units", u.Units); err != nil {
		return nil, err
	}
	if err := checkEntries(path, "events", u.Events); err != nil {
		return nil, err
	}
	return &u, nil
}

// LoadResearch reads pre-researched event content. A missing file yields
// an empty set.
func LoadResearch(path string) (diarymap.Research, error) {
	b, err := readFile(path, "research")
	if diarymap.ErrorCode(err) == diarymap.ENOTFOUND {
		return diarymap.Research{}, nil
	} else if err != nil {
		return nil, err
	}
	r := diarymap.Research{}
	if err := decode(path, b, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// checkEntries rejects null elements of a decoded list.
func checkEntries[T any](path, list string, entries []*T) error {
	for i, e := range entries {
		if e == nil {
			return diarymap.Errorf(diarymap.EINVALID, "%s: %s[%d] is null", path, list, i)
		}
	}
	return nil
}

func readFile(path, what string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, diarymap.Errorf(diarymap.ENOTFOUND, "%s file %s not found", what, path)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func decode(path string, b []byte, v any) error {
	if err := json.Unmarshal(b, v); err != nil {
		var syn *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syn):
			return diarymap.Errorf(diarymap.EINVALID, "%s: invalid JSON at offset %d: %s", path, syn.Offset, syn)
		case errors.As(err, &typ):
			return diarymap.Errorf(diarymap.EINVALID, "%s: field %s: expected %s, got %s", path, typ.Field, typ.Type, typ.Value)
		}
		return diarymap.Errorf(diarymap.EINVALID, "%s: %s", path, err)
	}
	return nil
}

// WriteFile atomically replaces path with data. The content is written to a
// temporary file in the same directory and renamed into place. It reports
// whether the file content changed.
func WriteFile(path string, data []byte) (bool, error) {
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, data) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}
