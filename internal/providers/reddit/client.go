package reddit

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
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/pkg/stringsutil"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	excerptMaxLen  = 1000
)

type ClientOpt func(*Client)

// Client talks to the public reddit search endpoint. Unauthenticated access
// is rate limited, so outbound calls go through a limiter.
type Client struct {
	base      *url.URL
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

func NewClient(cfg config.RedditConfig, opts ...ClientOpt) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse reddit base url: %w", err)
	}

	c := &Client{
		base:      base,
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
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

func WithLimiter(l *rate.Limiter) ClientOpt {
	return func(c *Client) {
		c.limiter = l
	}
}

type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string  `json:"title"`
				Author      string  `json:"author"`
				Subreddit   string  `json:"subreddit"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				Permalink   string  `json:"permalink"`
				CreatedUTC  float64 `json:"created_utc"`
				Selftext    string  `json:"selftext"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search queries reddit for posts matching the query, newest-relevance first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.DiscussionPost, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := *c.base
	endpoint.Path = "/search.json"
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sort", "relevance")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NewTransient("reddit search failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewTransient("reddit read body failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit search status %d: %s", resp.StatusCode, stringsutil.Truncate(string(body), 200))
	}

	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("unmarshal reddit listing: %w", err)
	}

	posts := make([]domain.DiscussionPost, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		d := child.Data
		posts = append(posts, domain.DiscussionPost{
			Title:     d.Title,
			Author:    d.Author,
			Community: d.Subreddit,
			Score:     d.Score,
			Comments:  d.NumComments,
			URL:       c.base.String() + d.Permalink,
			CreatedAt: time.Unix(int64(d.CreatedUTC), 0).UTC(),
			Excerpt:   stringsutil.Truncate(d.Selftext, excerptMaxLen),
		})
	}

	return posts, nil
}
