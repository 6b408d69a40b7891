package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractPrefersOgTitle(t *testing.T) {
	srv := serve(t, `<html><head>
		<meta property="og:title" content="Breaking: og headline">
		<title>tab title</title>
	</head><body>
		<h1>Page heading</h1>
		<article><p>First paragraph of the story body text.</p><p>Second paragraph here.</p></article>
	</body></html>`)

	req, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Breaking: og headline", req.Title)
	assert.Equal(t, "First paragraph of the story body text. Second paragraph here.", req.Content)
}

func TestExtractFallsBackToH1AndStripsScripts(t *testing.T) {
	srv := serve(t, `<html><head><title>tab title</title></head><body>
		<h1>  Actual   headline </h1>
		<script>var x = "not content";</script>
		<p>Visible body text that is long enough.</p>
	</body></html>`)

	req, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Actual headline", req.Title)
	assert.NotContains(t, req.Content, "not content")
	assert.Contains(t, req.Content, "Visible body text")
}

func TestExtractCapsContentLength(t *testing.T) {
	long := strings.Repeat("<p>"+strings.Repeat("word ", 50)+"</p>", 40)
	srv := serve(t, `<html><body><h1>Long story</h1>`+long+`</body></html>`)

	req, err := NewExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.LessOrEqual(t, len([]rune(req.Content)), domain.ContentMaxLen)
}

func TestExtractRejectsEmptyPage(t *testing.T) {
	srv := serve(t, `<html><body><h1>Only a heading</h1></body></html>`)

	_, err := NewExtractor().Extract(context.Background(), srv.URL)

	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := NewExtractor().Extract(context.Background(), srv.URL)

	var te *apperr.TransientError
	assert.ErrorAs(t, err, &te)
}
