package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/diarymap"
	"github.com/fwojciec/diarymap/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements diarymap.Converter at compile time.
var _ diarymap.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts summary paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<p>The <b>Normandy landings</b> were the landing operations.</p><p>Second paragraph.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "The **Normandy landings** were the landing operations.\n\nSecond paragraph.", md)
	})

	t.Run("uses asterisks for emphasis", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Codenamed <i>Operation Overlord</i>.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Codenamed *Operation Overlord*.", md)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>Text</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Text", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
	})
}
