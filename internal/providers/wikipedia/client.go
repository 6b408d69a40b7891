package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/config"
)

const defaultTimeout = 10 * time.Second

// Page is one fetched encyclopedia article.
type Page struct {
	Title   string
	Summary string
	Content string
	URL     string
}

// NotFoundError is returned when no page exists for a title. Callers drop
// the candidate silently.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return "wikipedia page not found: " + e.Title
}

// DisambiguationError is returned when a title resolves to a disambiguation
// page. Options lists suggested alternative titles, best first.
type DisambiguationError struct {
	Title   string
	Options []string
}

func (e *DisambiguationError) Error() string {
	return "wikipedia disambiguation for: " + e.Title
}

type ClientOpt func(*Client)

type Client struct {
	api  *url.URL
	lang string
	http *http.Client
}

func NewClient(cfg config.WikipediaConfig, opts ...ClientOpt) (*Client, error) {
	api, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse wikipedia api url: %w", err)
	}

	c := &Client{
		api:  api,
		lang: cfg.Language,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func WithHttpClient(httpClient *http.Client) ClientOpt {
	return func(c *Client) {
		c.http = httpClient
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns up to maxResults page titles matching the query,
// most relevant first.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(maxResults))
	params.Set("format", "json")

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		titles = append(titles, hit.Title)
	}

	return titles, nil
}

type pageResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Missing   *struct{} `json:"missing,omitempty"`
			Extract   string `json:"extract"`
			FullURL   string `json:"fullurl"`
			PageProps struct {
				Disambiguation *string `json:"disambiguation,omitempty"`
			} `json:"pageprops"`
			Links []struct {
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
}

// Fetch retrieves a page by title. It returns *NotFoundError for missing
// pages and *DisambiguationError (with suggested titles from the page's
// links) when the title resolves to a disambiguation page.
func (c *Client) Fetch(ctx context.Context, title string) (*Page, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts|info|pageprops|links")
	params.Set("titles", title)
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("inprop", "url")
	params.Set("plnamespace", "0")
	params.Set("pllimit", "10")
	params.Set("format", "json")

	var resp pageResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	for _, p := range resp.Query.Pages {
		if p.Missing != nil {
			return nil, &NotFoundError{Title: title}
		}

		if p.PageProps.Disambiguation != nil {
			options := make([]string, 0, len(p.Links))
			for _, link := range p.Links {
				options = append(options, link.Title)
			}
			return nil, &DisambiguationError{Title: title, Options: options}
		}

		return &Page{
			Title:   p.Title,
			Summary: summarize(p.Extract),
			Content: p.Extract,
			URL:     p.FullURL,
		}, nil
	}

	return nil, &NotFoundError{Title: title}
}

// summarize keeps the intro of an extract, roughly the first five sentences.
func summarize(extract string) string {
	const maxSentences = 5

	count := 0
	for i := 0; i < len(extract)-1; i++ {
		if extract[i] == '.' && (extract[i+1] == ' ' || extract[i+1] == '\n') {
			count++
			if count == maxSentences {
				return extract[:i+1]
			}
		}
	}
	return extract
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	endpoint := *c.api
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.NewTransient("wikipedia request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.NewTransient("wikipedia read body failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return apperr.NewTransient(fmt.Sprintf("wikipedia status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal wikipedia response: %w", err)
	}

	return nil
}
