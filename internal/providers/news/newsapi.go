package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

const (
	newsAPIBaseURL = "https://newsapi.org/v2/everything"
	defaultTimeout = 10 * time.Second
)

// NewsAPIProvider queries newsapi.org.
type NewsAPIProvider struct {
	apiKey string
	base   string
	http   *http.Client
}

func NewNewsAPIProvider(apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey: apiKey,
		base:   newsAPIBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (p *NewsAPIProvider) Name() string {
	return "newsapi"
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

func (p *NewsAPIProvider) Search(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	if p.apiKey == "" {
		return nil, apperr.NewProviderUnavailable(p.Name(), "missing api key")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("apiKey", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, apperr.NewTransient("newsapi request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewTransient("newsapi read body failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode)
	}

	var r newsAPIResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("unmarshal newsapi response: %w", err)
	}

	articles := make([]domain.NewsArticle, 0, len(r.Articles))
	for _, a := range r.Articles {
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
			Provider:    p.Name(),
		})
	}

	return articles, nil
}
