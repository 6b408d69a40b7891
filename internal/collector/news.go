package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/news"
)

// NewsCollector fans out to every configured news provider concurrently and
// merges their results in stable provider order. A failing provider
// contributes zero articles without affecting its siblings.
type NewsCollector struct {
	providers   []news.Provider
	maxArticles int
}

func NewNewsCollector(providers []news.Provider, maxArticles int) *NewsCollector {
	if maxArticles <= 0 {
		maxArticles = 20
	}
	return &NewsCollector{
		providers:   providers,
		maxArticles: maxArticles,
	}
}

func (c *NewsCollector) Search(ctx context.Context, topic string) domain.NewsCoverage {
	results := make([]Result[[]domain.NewsArticle], len(c.providers))

	var wg sync.WaitGroup
	for i, provider := range c.providers {
		wg.Add(1)
		go func(i int, p news.Provider) {
			defer wg.Done()
			articles, err := p.Search(ctx, topic)
			results[i] = Result[[]domain.NewsArticle]{Value: articles, Err: err}
		}(i, provider)
	}
	wg.Wait()

	var all []domain.NewsArticle
	for i, res := range results {
		if res.Err != nil {
			slog.Warn("news provider failed", "provider", c.providers[i].Name(), "error", res.Err)
			continue
		}
		all = append(all, res.Value...)
	}

	sources := make(map[string]struct{})
	for _, article := range all {
		sources[article.Source] = struct{}{}
	}

	// ArticlesCount reflects everything found; the article list itself is
	// capped for downstream consumers.
	coverage := domain.NewsCoverage{
		ArticlesCount: len(all),
		SourcesCount:  len(sources),
		Articles:      all,
	}
	if len(coverage.Articles) > c.maxArticles {
		coverage.Articles = coverage.Articles[:c.maxArticles]
	}

	return coverage
}
