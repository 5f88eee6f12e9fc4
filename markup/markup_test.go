package markup_test

import (
	"testing"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/keyword"
	"github.com/fwojciec/diarymap/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatcher(t *testing.T) *keyword.Matcher {
	t.Helper()
	m, err := keyword.New([]*diarymap.Place{
		{ID: "caen", Keywords: []string{"Caen"}},
		{ID: "crepon", Keywords: []string{"Crepon", "Crépon"}},
	})
	require.NoError(t, err)
	return m
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	t.Run("annotates text between tags", func(t *testing.T) {
		t.Parallel()

		src := "<p>We landed near <em>Crepon</em> and saw Caen burn.</p>"

		at, err := markup.Annotate(src, newMatcher(t))

		require.NoError(t, err)
		assert.Equal(t, src, at.Strip())
		assert.Equal(t, []string{"crepon", "caen"}, at.PlaceIDs())
	})

	t.Run("leaves attributes alone", func(t *testing.T) {
		t.Parallel()

		src := `<img alt="Caen" src="caen.png"><p title="Caen">text</p>`

		at, err := markup.Annotate(src, newMatcher(t))

		require.NoError(t, err)
		assert.Empty(t, at.Spans())
		assert.Equal(t, src, at.Strip())
	})

	t.Run("skips links, code and scripts", func(t *testing.T) {
		t.Parallel()

		src := `<p><a href="/x">Caen</a> <code>Caen</code></p><pre>Caen</pre><script>var s = "Caen";</script><p>Caen</p>`

		at, err := markup.Annotate(src, newMatcher(t))

		require.NoError(t, err)
		spans := at.Spans()
		require.Len(t, spans, 1)
		assert.Equal(t, len(src)-len("Caen</p>"), spans[0].Start)
	})

	t.Run("preserves raw bytes including entities and upper-case tags", func(t *testing.T) {
		t.Parallel()

		src := "<!DOCTYPE html><!-- Caen --><P CLASS=\"x\">Fish &amp; chips in Caen\r\n</P>"

		at, err := markup.Annotate(src, newMatcher(t))

		require.NoError(t, err)
		assert.Equal(t, src, at.Strip())
		assert.Len(t, at.Spans(), 1)
	})

	t.Run("returns empty text for empty input", func(t *testing.T) {
		t.Parallel()

		at, err := markup.Annotate("", newMatcher(t))

		require.NoError(t, err)
		assert.Empty(t, at)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("wraps spans in location elements", func(t *testing.T) {
		t.Parallel()

		at := diarymap.AnnotatedText{
			{Text: "<p>near "},
			{Text: "Crepon", PlaceID: "crepon"},
			{Text: ".</p>"},
		}

		assert.Equal(t,
			`<p>near <span class="location" data-place-id="crepon">Crepon</span>.</p>`,
			markup.Render(at),
		)
	})

	t.Run("escapes place ids", func(t *testing.T) {
		t.Parallel()

		at := diarymap.AnnotatedText{{Text: "X", PlaceID: `a"b`}}

		assert.Equal(t, `<span class="location" data-place-id="a&#34;b">X</span>`, markup.Render(at))
	})
}

func TestInjectVersion(t *testing.T) {
	t.Parallel()

	v := diarymap.Version{Hash: "abc1234", Generated: "2026-10-18T09:00:00Z"}

	t.Run("adds indicator to the first h1 only", func(t *testing.T) {
		t.Parallel()

		got := markup.InjectVersion("<h1>Diary</h1><h1>Again</h1>", v)

		assert.Equal(t,
			`<h1>Diary<span class="version-indicator" title="Git: abc1234 | Built: 2026-10-18T09:00:00Z">abc1234 (2026-10-18)</span></h1><h1>Again</h1>`,
			got,
		)
	})

	t.Run("leaves html without h1 unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<p>x</p>", markup.InjectVersion("<p>x</p>", v))
	})
}
