package main

import (
	"fmt"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/fs"
	"github.com/fwojciec/diarymap/validate"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	places, err := fs.LoadPlaces(deps.Path(fs.PlacesFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}
	timeline, err := fs.LoadTimeline(deps.Path(fs.TimelineFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}
	units, err := fs.LoadUnits(deps.Path(fs.UnitsFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	report := validate.Dataset(validate.Input{
		Places:   places,
		Timeline: timeline,
		Units:    units,
	}, validate.DefaultRules())

	for _, issue := range report.Issues {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", issue.Severity, issue)
	}

	errs, warnings := len(report.Errors()), len(report.Warnings())
	fmt.Fprintf(deps.Stdout, "%d places, %d events, %d unit events: %d errors, %d warnings\n",
		len(places), len(timeline.Events), len(units.Events), errs, warnings)

	err = report.Err()
	if err == nil && c.Strict && warnings > 0 {
		err = diarymap.Errorf(diarymap.EINVALID, "%d warnings in strict mode", warnings)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}
	return nil
}
