// Package validate checks the integrity of the place registry, timeline and
// unit history before a page is built from them.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fwojciec/diarymap"
	"github.com/go-playground/validator/v10"
)

// File names used in issue reports.
const (
	PlacesFile   = "places.json"
	TimelineFile = "timeline.json"
	UnitsFile    = "units.json"
)

// Severity grades an issue. Errors fail the build, warnings are reported.
type Severity string

// Severity constants.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding against one record.
type Issue struct {
	Severity Severity
	File     string
	Record   string
	Field    string
	Message  string
}

// String formats the issue as "file: record "id": field f: message".
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.File)
	if i.Record != "" {
		fmt.Fprintf(&b, ": record %q", i.Record)
	}
	if i.Field != "" {
		fmt.Fprintf(&b, ": field %s", i.Field)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	return b.String()
}

// Report is the outcome of a validation run.
type Report struct {
	Issues []Issue
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Err returns an EINVALID error describing the first error-severity issue,
// or nil when there are none.
func (r *Report) Err() error {
	errs := r.Errors()
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return diarymap.Errorf(diarymap.EINVALID, "%s", errs[0])
	default:
		return diarymap.Errorf(diarymap.EINVALID, "%s (and %d more)", errs[0], len(errs)-1)
	}
}

func (r *Report) add(s Severity, file, record, field, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: s,
		File:     file,
		Record:   record,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) errorf(file, record, field, format string, args ...any) {
	r.add(SeverityError, file, record, field, format, args...)
}

// null reports a null entry in a list. Later checks skip the entry.
func (r *Report) null(file, list string, i int) {
	r.errorf(file, "", fmt.Sprintf("%s[%d]", list, i), "is null")
}

func (r *Report) warnf(file, record, field, format string, args ...any) {
	r.add(SeverityWarning, file, record, field, format, args...)
}

// Bounds is the geographic box places must fall inside.
type Bounds struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
}

// Contains reports whether the coordinates lie inside b.
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lng >= b.LngMin && lng <= b.LngMax
}

// Rules parameterise the dataset checks.
type Rules struct {
	// Bounds limits place coordinates.
	Bounds Bounds
	// Period limits event dates, inclusive.
	Period diarymap.DateRange
}

// DefaultRules covers Western Europe during the Second World War.
func DefaultRules() Rules {
	return Rules{
		Bounds: Bounds{LatMin: 47, LatMax: 54, LngMin: -2, LngMax: 14},
		Period: diarymap.DateRange{Start: "1939-01-01", End: "1947-12-31"},
	}
}

// Input is the dataset under validation. Units may be nil.
type Input struct {
	Places   []*diarymap.Place
	Timeline *diarymap.Timeline
	Units    *diarymap.UnitHistory
}

var structs = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the struct tag rules on v and records one issue per
// failing field.
func checkStruct(r *Report, file, record string, v any) {
	err := structs.Struct(v)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		r.errorf(file, record, "", "%s", err)
		return
	}
	for _, e := range verrs {
		r.errorf(file, record, fieldPath(e), "%s", fieldMessage(e))
	}
}

// fieldPath strips the struct name from the namespace: "Place.keywords[0]"
// becomes "keywords[0]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "latitude":
		return fmt.Sprintf("%v is not a latitude", e.Value())
	case "longitude":
		return fmt.Sprintf("%v is not a longitude", e.Value())
	case "datetime":
		return fmt.Sprintf("%q is not in YYYY-MM-DD format", e.Value())
	case "url":
		return fmt.Sprintf("%q is not a URL", e.Value())
	default:
		return fmt.Sprintf("failed %s check", e.Tag())
	}
}

// Dataset runs every check against in.
func Dataset(in Input, rules Rules) Report {
	var r Report
	places := checkPlaces(&r, in.Places, rules)
	if in.Timeline == nil {
		r.errorf(TimelineFile, "", "", "timeline is missing")
	} else {
		checkTimeline(&r, in.Timeline, places, rules)
	}
	if in.Units != nil {
		checkUnits(&r, in.Units, places)
	}
	return r
}
