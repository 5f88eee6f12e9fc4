package site_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/mock"
	"github.com/fwojciec/diarymap/site"
	"github.com/fwojciec/diarymap/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diaryHTML = `<h1 id="diary">Diary</h1>
<p>We landed near Crepon on the 7th, then moved through Bayeux.</p>
<pre>Crepon</pre>
`

func source() site.Source {
	return site.Source{
		Diary: "# Diary\n\nWe landed near Crepon on the 7th, then moved through Bayeux.\n",
		Places: []*diarymap.Place{
			{ID: "crepon", DisplayName: "Crépon", Lat: 49.31, Lng: -0.55, Country: "France", Keywords: []string{"Crepon"}},
			{ID: "bayeux", DisplayName: "Bayeux", Lat: 49.28, Lng: -0.70, Country: "France", Keywords: []string{"Bayeux"}},
		},
		Timeline: &diarymap.Timeline{
			Metadata: &diarymap.TimelineMetadata{DateRange: diarymap.DateRange{Start: "1943-12-01", End: "1946-02-18"}},
			Events: []*diarymap.Event{{
				ID: "crepon", Name: "Landed near Crepon", Date: "1944-06-07", Type: diarymap.EventDiary,
				Description: "We landed near Crepon.", Source: diarymap.SourceDiary, RelatedPlaces: []string{"crepon"},
			}},
		},
		Version: diarymap.Version{Hash: "a1b2c3d", Generated: "2026-10-18T09:00:00Z"},
	}
}

func builder() (*site.Builder, *mock.Renderer, *mock.Outliner) {
	renderer := &mock.Renderer{
		RenderFn: func(markdown string) (string, error) {
			return diaryHTML, nil
		},
	}
	outliner := &mock.Outliner{
		OutlineFn: func(html string) ([]diarymap.Entry, error) {
			return []diarymap.Entry{{Level: 1, Title: "Diary", Anchor: "diary"}}, nil
		},
	}
	rules := validate.DefaultRules()
	return &site.Builder{Renderer: renderer, Outliner: outliner, Rules: &rules}, renderer, outliner
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("annotates mentions outside code", func(t *testing.T) {
		t.Parallel()

		b, _, _ := builder()

		a, err := b.Build(source())
		require.NoError(t, err)

		html := string(a.HTML)
		assert.Contains(t, html, `near <span class="location" data-place-id="crepon">Crepon</span> on the 7th`)
		assert.Contains(t, html, `through <span class="location" data-place-id="bayeux">Bayeux</span>.`)
		assert.Contains(t, html, `<pre>Crepon</pre>`)
		assert.Contains(t, html, `class="version-indicator"`)
	})

	t.Run("passes the rendered html to the outliner", func(t *testing.T) {
		t.Parallel()

		b, _, outliner := builder()
		var got string
		outliner.OutlineFn = func(html string) ([]diarymap.Entry, error) {
			got = html
			return nil, nil
		}

		_, err := b.Build(source())
		require.NoError(t, err)

		assert.Equal(t, diaryHTML, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		b, _, _ := builder()

		first, err := b.Build(source())
		require.NoError(t, err)
		second, err := b.Build(source())
		require.NoError(t, err)

		assert.Equal(t, first.HTML, second.HTML)
		assert.Equal(t, first.Fingerprint, second.Fingerprint)
	})

	t.Run("fails fast on validation errors", func(t *testing.T) {
		t.Parallel()

		b, renderer, _ := builder()
		var rendered bool
		renderer.RenderFn = func(string) (string, error) {
			rendered = true
			return diaryHTML, nil
		}
		src := source()
		src.Timeline.Events[0].RelatedPlaces = []string{"arnhem"}

		_, err := b.Build(src)

		require.Error(t, err)
		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
		assert.Contains(t, diarymap.ErrorMessage(err), `unknown place "arnhem"`)
		assert.False(t, rendered)
	})

	t.Run("skips validation without rules", func(t *testing.T) {
		t.Parallel()

		b, _, _ := builder()
		b.Rules = nil
		src := source()
		src.Timeline.Events[0].RelatedPlaces = []string{"arnhem"}

		_, err := b.Build(src)

		assert.NoError(t, err)
	})

	t.Run("rejects empty keywords even without validation", func(t *testing.T) {
		t.Parallel()

		b, _, _ := builder()
		b.Rules = nil
		src := source()
		src.Places[1].Keywords = []string{""}

		_, err := b.Build(src)

		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
	})

	t.Run("returns renderer errors", func(t *testing.T) {
		t.Parallel()

		b, renderer, _ := builder()
		renderer.RenderFn = func(string) (string, error) {
			return "", errors.New("boom")
		}

		_, err := b.Build(source())

		assert.EqualError(t, err, "boom")
	})

	t.Run("round trips the rendered html", func(t *testing.T) {
		t.Parallel()

		b, _, _ := builder()

		a, err := b.Build(source())
		require.NoError(t, err)

		html := string(a.HTML)
		stripped := strings.NewReplacer(
			`<span class="location" data-place-id="crepon">`, "",
			`<span class="location" data-place-id="bayeux">`, "",
			`</span>`, "",
		).Replace(html)
		assert.Contains(t, stripped, "<p>We landed near Crepon on the 7th, then moved through Bayeux.</p>")
	})
}
