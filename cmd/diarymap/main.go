package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/etree"
	"github.com/fwojciec/diarymap/goldmark"
	"github.com/fwojciec/diarymap/goquery"
	"github.com/fwojciec/diarymap/htmltomarkdown"
	dmslog "github.com/fwojciec/diarymap/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// Now returns the current time. Overridden by SOURCE_DATE_EPOCH.
	Now func() time.Time

	// Summaries replaces the encyclopedia client, for end-to-end testing.
	Summaries diarymap.SummaryFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fail := func(err error) error {
		fmt.Fprintf(stderr, "error: %s\n", diarymap.ErrorMessage(err))
		return err
	}

	cfg, err := ParseConfig(m.Environ)
	if err != nil {
		return fail(err)
	}

	cli := &CLI{}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	parser, err := kong.New(cli,
		kong.Name("diarymap"),
		kong.Description("Build an interactive map page from a diary and its place, timeline and unit data."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fail(fmt.Errorf("failed to create parser: %w", err))
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return fail(err)
	}

	deps.Dir = cfg.Dir
	if cli.Dir != "" {
		deps.Dir = cli.Dir
	}
	if deps.Dir, err = filepath.Abs(deps.Dir); err != nil {
		return fail(fmt.Errorf("resolve project directory: %w", err))
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	now := m.Now
	if now == nil {
		now = time.Now
	}
	deps.Now = now
	if cfg.SourceDateEpoch > 0 {
		pinned := time.Unix(cfg.SourceDateEpoch, 0).UTC()
		deps.Now = func() time.Time { return pinned }
	}

	// Wire services.
	deps.Renderer = dmslog.NewLoggingRenderer(goldmark.NewRenderer(), deps.Logger)
	deps.Outliner = goquery.NewOutliner()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Maps = dmslog.NewLoggingMapRenderer(etree.NewMapRenderer(), deps.Logger)
	deps.Summaries = m.Summaries

	return kongCtx.Run(deps)
}
