package news

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-verifier/internal/config"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/mmcdole/gofeed"
)

// minQueryTermLen filters out stopwords like "the" when matching feed items.
const minQueryTermLen = 4

// RSSProvider searches a fixed set of configured feeds for items mentioning
// the query terms. It needs no credentials, which makes it a useful baseline
// provider when no API keys are configured.
type RSSProvider struct {
	feeds  []config.FeedConfig
	parser *gofeed.Parser
}

func NewRSSProvider(feeds []config.FeedConfig) *RSSProvider {
	return &RSSProvider{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

func (p *RSSProvider) Name() string {
	return "rss"
}

func (p *RSSProvider) Search(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, nil
	}

	var articles []domain.NewsArticle
	for _, feedCfg := range p.feeds {
		feed, err := p.parser.ParseURLWithContext(feedCfg.URL, ctx)
		if err != nil {
			slog.Warn("rss feed fetch failed", "feed", feedCfg.Name, "error", err)
			continue
		}

		for _, item := range feed.Items {
			if !matchesAny(item, terms) {
				continue
			}

			published := ""
			if item.PublishedParsed != nil {
				published = item.PublishedParsed.UTC().Format("2006-01-02T15:04:05Z")
			}

			articles = append(articles, domain.NewsArticle{
				Title:       item.Title,
				Description: item.Description,
				Source:      feedCfg.Name,
				URL:         item.Link,
				PublishedAt: published,
				Content:     item.Content,
				Provider:    p.Name(),
			})
		}
	}

	return articles, nil
}

func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minQueryTermLen {
			terms = append(terms, f)
		}
	}
	return terms
}

func matchesAny(item *gofeed.Item, terms []string) bool {
	haystack := strings.ToLower(item.Title + " " + item.Description)
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
