package goquery_test

import (
	"testing"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Outliner implements diarymap.Outliner at compile time.
var _ diarymap.Outliner = (*goquery.Outliner)(nil)

func TestOutliner_Outline(t *testing.T) {
	t.Parallel()

	t.Run("lists headings in document order", func(t *testing.T) {
		t.Parallel()

		html := `<h1 id="diary">Diary</h1><p>x</p><h2 id="june-1944">June 1944</h2><h3 id="d-day">D-Day</h3>`

		entries, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, []diarymap.Entry{
			{Level: 1, Title: "Diary", Anchor: "diary"},
			{Level: 2, Title: "June 1944", Anchor: "june-1944"},
			{Level: 3, Title: "D-Day", Anchor: "d-day"},
		}, entries)
	})

	t.Run("respects max level", func(t *testing.T) {
		t.Parallel()

		html := `<h1>A</h1><h2>B</h2><h3>C</h3>`

		entries, err := (&goquery.Outliner{MaxLevel: 2}).Outline(html)

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("uses heading text without version indicator", func(t *testing.T) {
		t.Parallel()

		html := `<h1 id="diary">Edgar's   Diary<span class="version-indicator">abc (2026-10-18)</span></h1>`

		entries, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Edgar's Diary", entries[0].Title)
	})

	t.Run("includes annotated place names in titles", func(t *testing.T) {
		t.Parallel()

		html := `<h2 id="caen">Outside <span class="location" data-place-id="caen">Caen</span></h2>`

		entries, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Outside Caen", entries[0].Title)
	})

	t.Run("skips empty headings and leaves missing anchors empty", func(t *testing.T) {
		t.Parallel()

		html := `<h2> </h2><h2>Untitled anchor</h2>`

		entries, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, []diarymap.Entry{{Level: 2, Title: "Untitled anchor"}}, entries)
	})

	t.Run("returns nil for html without headings", func(t *testing.T) {
		t.Parallel()

		entries, err := goquery.NewOutliner().Outline("<p>just text</p>")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
