package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/diarymap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config Config
	Now    func() time.Time

	// Dir is the absolute project directory.
	Dir string

	Renderer  diarymap.Renderer
	Outliner  diarymap.Outliner
	Converter diarymap.Converter
	Maps      diarymap.MapRenderer

	// Summaries is nil unless injected; the enrich command creates the
	// encyclopedia client on demand.
	Summaries diarymap.SummaryFetcher
}

// Path resolves name against the project directory.
func (d *Dependencies) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, filepath.FromSlash(name))
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"C" help:"Project directory (default $DIARYMAP_DIR or .)"`
	Verbose bool   `short:"v" help:"Log diagnostics to stderr"`

	Build    BuildCmd    `cmd:"" default:"withargs" help:"Generate the interactive page (default command)"`
	Enrich   EnrichCmd   `cmd:"" help:"Add summaries, key facts and maps to historical events"`
	Validate ValidateCmd `cmd:"" help:"Check the data files for errors and quality issues"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Out          string `short:"o" default:"index.html" help:"Output file, relative to the project directory"`
	Title        string `help:"Page title (default: timeline title)"`
	SkipValidate bool   `help:"Build even if the data files fail validation"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Timeout time.Duration `help:"Per-request timeout (default $DIARYMAP_FETCH_TIMEOUT or 10s)"`
	Rate    float64       `default:"2" help:"Encyclopedia requests per second"`
	Offline bool          `help:"Use research data only, without network access"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Strict bool `help:"Treat warnings as errors"`
}
