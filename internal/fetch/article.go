package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/pkg/stringsutil"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "news-verifier/1.0"
)

// Extractor downloads a web page and pulls out the article title and body
// text so the page can be verified like pasted content.
type Extractor struct {
	http *http.Client
}

type Option func(*Extractor)

func WithHTTPClient(c *http.Client) Option {
	return func(e *Extractor) { e.http = c }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		http: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract fetches url and returns a verification request built from the
// page. The title comes from og:title, the first h1 or the title tag; the
// body from paragraph text, capped to the request content limit.
func (e *Extractor) Extract(ctx context.Context, url string) (domain.VerificationRequest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.VerificationRequest{}, apperr.NewValidationWrap("invalid article url", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.http.Do(req)
	if err != nil {
		return domain.VerificationRequest{}, apperr.NewTransient("failed to fetch article url", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.VerificationRequest{}, apperr.NewTransient(
			fmt.Sprintf("article url returned status %d", resp.StatusCode), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.VerificationRequest{}, apperr.NewValidationWrap("failed to parse article html", err)
	}

	doc.Find("script, style, noscript, nav, footer, aside").Remove()

	title := extractTitle(doc)
	if title == "" {
		return domain.VerificationRequest{}, apperr.NewValidation("could not extract a title from the page")
	}

	content := extractBody(doc)
	if len([]rune(content)) < domain.ContentMinLen {
		return domain.VerificationRequest{}, apperr.NewValidation("could not extract article text from the page")
	}

	return domain.VerificationRequest{
		Title:   stringsutil.Truncate(title, domain.TitleMaxLen),
		Content: stringsutil.Truncate(content, domain.ContentMaxLen),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := stringsutil.NormalizeSpace(og); t != "" {
			return t
		}
	}
	if h1 := stringsutil.NormalizeSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return stringsutil.NormalizeSpace(doc.Find("title").First().Text())
}

func extractBody(doc *goquery.Document) string {
	root := doc.Find("article")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var parts []string
	root.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := stringsutil.NormalizeSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}
