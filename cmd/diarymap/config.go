package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	dmhttp "github.com/fwojciec/diarymap/http"
)

// Config is the environment configuration. Command-line flags take
// precedence over it.
type Config struct {
	// Dir is the project directory holding the diary and data files.
	Dir string `env:"DIARYMAP_DIR" envDefault:"."`

	UserAgent    string        `env:"DIARYMAP_USER_AGENT"`
	SummaryURL   string        `env:"DIARYMAP_SUMMARY_URL"`
	FetchTimeout time.Duration `env:"DIARYMAP_FETCH_TIMEOUT" envDefault:"10s"`

	// SourceDateEpoch pins the build time, in Unix seconds, for
	// reproducible builds. Zero means the current time.
	SourceDateEpoch int64 `env:"SOURCE_DATE_EPOCH"`
}

// ParseConfig reads the configuration from environ, or from the process
// environment when environ is nil.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		return Config{}, fmt.Errorf("parse env: DIARYMAP_FETCH_TIMEOUT must be positive, got %s", cfg.FetchTimeout)
	}
	return cfg, nil
}

// SummaryOptions returns the encyclopedia client options for cfg.
// A positive timeout overrides the configured one.
func (c Config) SummaryOptions(timeout time.Duration) []dmhttp.SummaryOption {
	if timeout <= 0 {
		timeout = c.FetchTimeout
	}
	opts := []dmhttp.SummaryOption{dmhttp.WithSummaryTimeout(timeout)}
	if c.SummaryURL != "" {
		opts = append(opts, dmhttp.WithBaseURL(c.SummaryURL))
	}
	if c.UserAgent != "" {
		opts = append(opts, dmhttp.WithUserAgent(c.UserAgent))
	}
	return opts
}
