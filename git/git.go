// Package git reads the source revision used to label a build.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/fwojciec/diarymap"
)

// UnknownHash labels builds made outside a repository.
const UnknownHash = "unknown"

// Revision returns the short commit hash and commit time of HEAD in dir,
// stamped with the build time now. Outside a repository, or without git
// installed, the hash is UnknownHash and the timestamp is empty.
func Revision(ctx context.Context, dir string, now time.Time) diarymap.Version {
	v := diarymap.Version{
		Hash:      UnknownHash,
		Generated: now.UTC().Format(time.RFC3339),
	}

	hash, err := run(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil || hash == "" {
		return v
	}
	v.Hash = hash

	if ts, err := run(ctx, dir, "log", "-1", "--format=%cI"); err == nil {
		v.Timestamp = ts
	}
	return v
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}
