package main

import (
	"fmt"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/fs"
	"github.com/fwojciec/diarymap/git"
	"github.com/fwojciec/diarymap/site"
	"github.com/fwojciec/diarymap/validate"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	src, err := loadSource(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}
	src.Title = c.Title
	src.Version = git.Revision(deps.Ctx, deps.Dir, deps.Now())

	builder := &site.Builder{
		Renderer: deps.Renderer,
		Outliner: deps.Outliner,
		Logger:   deps.Logger,
	}
	if !c.SkipValidate {
		rules := validate.DefaultRules()
		builder.Rules = &rules
	}

	artifact, err := builder.Build(src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", diarymap.ErrorMessage(err))
		if !c.SkipValidate && diarymap.ErrorCode(err) == diarymap.EINVALID {
			fmt.Fprintln(deps.Stderr, "Hint: run 'diarymap validate' for the full report")
		}
		return err
	}

	out := deps.Path(c.Out)
	changed, err := fs.WriteFile(out, artifact.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: write %s: %s\n", out, diarymap.ErrorMessage(err))
		return err
	}

	status := "wrote"
	if !changed {
		status = "unchanged"
	}
	fmt.Fprintf(deps.Stdout, "%s %s (%d bytes, %d places, %d events, version %s, fingerprint %s)\n",
		status, out, len(artifact.HTML), len(src.Places), len(src.Timeline.Events),
		src.Version, artifact.Fingerprint)
	return nil
}

func loadSource(deps *Dependencies) (site.Source, error) {
	diary, err := fs.ReadDiary(deps.Path(fs.DiaryFile))
	if err != nil {
		return site.Source{}, err
	}
	places, err := fs.LoadPlaces(deps.Path(fs.PlacesFile))
	if err != nil {
		return site.Source{}, err
	}
	timeline, err := fs.LoadTimeline(deps.Path(fs.TimelineFile))
	if err != nil {
		return site.Source{}, err
	}
	units, err := fs.LoadUnits(deps.Path(fs.UnitsFile))
	if err != nil {
		return site.Source{}, err
	}
	return site.Source{
		Diary:    diary,
		Places:   places,
		Timeline: timeline,
		Units:    units,
	}, nil
}
