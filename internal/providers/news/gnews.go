package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

const gnewsBaseURL = "https://gnews.io/api/v4/search"

// GNewsProvider queries gnews.io.
type GNewsProvider struct {
	apiKey string
	base   string
	http   *http.Client
}

func NewGNewsProvider(apiKey string) *GNewsProvider {
	return &GNewsProvider{
		apiKey: apiKey,
		base:   gnewsBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (p *GNewsProvider) Name() string {
	return "gnews"
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (p *GNewsProvider) Search(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	if p.apiKey == "" {
		return nil, apperr.NewProviderUnavailable(p.Name(), "missing api key")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("token", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, apperr.NewTransient("gnews request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewTransient("gnews read body failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews status %d", resp.StatusCode)
	}

	var r gnewsResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("unmarshal gnews response: %w", err)
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
