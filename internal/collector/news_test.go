package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/news"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name     string
	articles []domain.NewsArticle
	err      error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(_ context.Context, _ string) ([]domain.NewsArticle, error) {
	return f.articles, f.err
}

func articlesFor(source string, n int) []domain.NewsArticle {
	out := make([]domain.NewsArticle, n)
	for i := range out {
		out[i] = domain.NewsArticle{Title: fmt.Sprintf("%s-%d", source, i), Source: source}
	}
	return out
}

func TestNewsCollector_Merge(t *testing.T) {
	providers := []news.Provider{
		&fakeProvider{name: "first", articles: articlesFor("AP", 2)},
		&fakeProvider{name: "second", articles: articlesFor("Reuters", 3)},
	}

	c := NewNewsCollector(providers, 20)
	coverage := c.Search(context.Background(), "topic")

	assert.Equal(t, 5, coverage.ArticlesCount)
	assert.Equal(t, 2, coverage.SourcesCount)
	require.Len(t, coverage.Articles, 5)
	// Stable provider order: first provider's articles lead.
	assert.Equal(t, "AP-0", coverage.Articles[0].Title)
	assert.Equal(t, "Reuters-0", coverage.Articles[2].Title)
}

func TestNewsCollector_ProviderFailureIsolated(t *testing.T) {
	healthy := &fakeProvider{name: "healthy", articles: articlesFor("BBC", 4)}

	alone := NewNewsCollector([]news.Provider{healthy}, 20)
	baseline := alone.Search(context.Background(), "topic")

	withFailing := NewNewsCollector([]news.Provider{
		&fakeProvider{name: "broken", err: errors.New("quota exceeded")},
		healthy,
	}, 20)
	combined := withFailing.Search(context.Background(), "topic")

	// A failing provider must not reduce the result below what the
	// remaining providers alone produce.
	assert.Equal(t, baseline.ArticlesCount, combined.ArticlesCount)
	assert.Equal(t, baseline.SourcesCount, combined.SourcesCount)
}

func TestNewsCollector_CapKeepsTotalCount(t *testing.T) {
	providers := []news.Provider{
		&fakeProvider{name: "big", articles: articlesFor("CNN", 30)},
	}

	c := NewNewsCollector(providers, 20)
	coverage := c.Search(context.Background(), "topic")

	assert.Equal(t, 30, coverage.ArticlesCount)
	assert.Len(t, coverage.Articles, 20)
}

func TestNewsCollector_NoProviders(t *testing.T) {
	c := NewNewsCollector(nil, 20)
	coverage := c.Search(context.Background(), "topic")

	assert.Equal(t, 0, coverage.ArticlesCount)
	assert.Equal(t, 0, coverage.SourcesCount)
	assert.Empty(t, coverage.Articles)
}
