package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/mock"
	dmslog "github.com/fwojciec/diarymap/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs input and output sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(markdown string) (string, error) {
				return "<h1>Diary</h1>", nil
			},
		}

		html, err := dmslog.NewLoggingRenderer(inner, logger).Render("# Diary")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Diary</h1>", html)
		output := buf.String()
		assert.Contains(t, output, "markdown render")
		assert.Contains(t, output, "in=7")
		assert.Contains(t, output, "out=14")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(string) (string, error) { return "", errors.New("boom") },
		}

		_, err := dmslog.NewLoggingRenderer(inner, logger).Render("")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
	})
}

func TestLoggingMapRenderer_RenderMap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.MapRenderer{
		RenderMapFn: func(m *diarymap.EventMap) (string, error) {
			return "<svg/>", nil
		},
	}

	svg, err := dmslog.NewLoggingMapRenderer(inner, logger).RenderMap(&diarymap.EventMap{Title: "Falaise Pocket"})

	require.NoError(t, err)
	assert.Equal(t, "<svg/>", svg)
	output := buf.String()
	assert.Contains(t, output, "map render")
	assert.Contains(t, output, `title="Falaise Pocket"`)
	assert.Contains(t, output, "bytes=6")
}
