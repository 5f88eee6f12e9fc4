package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/diarymap"
	dmhttp "github.com/fwojciec/diarymap/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const normandySummary = `{
  "type": "standard",
  "title": "Normandy landings",
  "extract": "The Normandy landings were the landing operations.",
  "extract_html": "<p>The <b>Normandy landings</b> were the landing operations.</p>",
  "content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Normandy_landings"}}
}`

func TestArticleTitle(t *testing.T) {
	t.Parallel()

	t.Run("extracts the path after /wiki/", func(t *testing.T) {
		t.Parallel()

		title, err := dmhttp.ArticleTitle("https://en.wikipedia.org/wiki/Battle_of_the_Scheldt")

		require.NoError(t, err)
		assert.Equal(t, "Battle_of_the_Scheldt", title)
	})

	t.Run("decodes percent-encoded titles", func(t *testing.T) {
		t.Parallel()

		title, err := dmhttp.ArticleTitle("https://en.wikipedia.org/wiki/Cr%C3%A9pon")

		require.NoError(t, err)
		assert.Equal(t, "Crépon", title)
	})

	t.Run("rejects other hosts", func(t *testing.T) {
		t.Parallel()

		_, err := dmhttp.ArticleTitle("https://example.com/wiki/Caen")

		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
	})

	t.Run("rejects non-article paths", func(t *testing.T) {
		t.Parallel()

		_, err := dmhttp.ArticleTitle("https://en.wikipedia.org/w/index.php?title=Caen")

		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
	})
}

func TestSummaryService_FetchSummary(t *testing.T) {
	t.Parallel()

	t.Run("returns summary fields", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(normandySummary))
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(
			dmhttp.WithBaseURL(server.URL+"/summary/"),
			dmhttp.WithUserAgent("test-agent"),
		)

		summary, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Normandy_landings")

		require.NoError(t, err)
		assert.Equal(t, "/summary/Normandy_landings", gotPath)
		assert.Equal(t, "test-agent", gotUA)
		assert.Equal(t, &diarymap.Summary{
			Title:       "Normandy landings",
			Extract:     "The Normandy landings were the landing operations.",
			ExtractHTML: "<p>The <b>Normandy landings</b> were the landing operations.</p>",
			URL:         "https://en.wikipedia.org/wiki/Normandy_landings",
		}, summary)
	})

	t.Run("escapes titles in the request path", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"title":"Crépon"}`))
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(dmhttp.WithBaseURL(server.URL + "/"))

		_, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Cr%C3%A9pon")

		require.NoError(t, err)
		assert.Equal(t, "/Cr%C3%A9pon", gotPath)
	})

	t.Run("returns ENOTFOUND for missing articles", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(dmhttp.WithBaseURL(server.URL + "/"))

		_, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Nowhere")

		assert.Equal(t, diarymap.ENOTFOUND, diarymap.ErrorCode(err))
	})

	t.Run("makes a single attempt on server errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(dmhttp.WithBaseURL(server.URL + "/"))

		_, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Caen")

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(dmhttp.WithBaseURL(server.URL + "/"))

		_, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Caen")

		require.Error(t, err)
	})

	t.Run("respects timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(normandySummary))
		}))
		defer server.Close()

		svc := dmhttp.NewSummaryService(
			dmhttp.WithBaseURL(server.URL+"/"),
			dmhttp.WithSummaryTimeout(10*time.Millisecond),
		)

		_, err := svc.FetchSummary(context.Background(), "https://en.wikipedia.org/wiki/Caen")

		require.Error(t, err)
	})

	t.Run("does not call the server for invalid URLs", func(t *testing.T) {
		t.Parallel()

		svc := dmhttp.NewSummaryService(dmhttp.WithBaseURL("http://127.0.0.1:1/"))

		_, err := svc.FetchSummary(context.Background(), "diary")

		assert.Equal(t, diarymap.EINVALID, diarymap.ErrorCode(err))
	})
}
