package collector

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/wikipedia"
)

// ReferenceSource is the encyclopedia capability: a title search plus a
// per-title fetch that can signal NotFound or Disambiguation.
type ReferenceSource interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
	Fetch(ctx context.Context, title string) (*wikipedia.Page, error)
}

// ReferenceCollector retrieves encyclopedia articles related to a topic.
// Per-candidate policy: a disambiguation retries once with the first
// suggested title (bounded by maxRedirectHops), not-found drops the
// candidate silently, and transient errors retry with exponential backoff
// before the candidate is dropped. Zero usable articles is not an error.
type ReferenceCollector struct {
	source          ReferenceSource
	maxResults      int
	maxRetries      int
	maxRedirectHops int

	sleep func(ctx context.Context, d time.Duration) error
}

func NewReferenceCollector(source ReferenceSource, maxResults, maxRetries, maxRedirectHops int) *ReferenceCollector {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &ReferenceCollector{
		source:          source,
		maxResults:      maxResults,
		maxRetries:      maxRetries,
		maxRedirectHops: maxRedirectHops,
		sleep:           sleepCtx,
	}
}

func (c *ReferenceCollector) FindRelated(ctx context.Context, topic string) []domain.ReferenceArticle {
	if c.source == nil {
		return nil
	}

	titles, err := c.source.Search(ctx, topic, c.maxResults)
	if err != nil {
		slog.Warn("reference search failed", "topic", topic, "error", err)
		return nil
	}

	articles := make([]domain.ReferenceArticle, 0, len(titles))
	for _, title := range titles {
		if page := c.fetchCandidate(ctx, title); page != nil {
			articles = append(articles, domain.ReferenceArticle{
				Title:   page.Title,
				Summary: page.Summary,
				Content: page.Content,
				URL:     page.URL,
			})
		}
	}

	return articles
}

func (c *ReferenceCollector) fetchCandidate(ctx context.Context, title string) *wikipedia.Page {
	hops := 0
	attempt := 0

	for {
		page, err := c.source.Fetch(ctx, title)
		if err == nil {
			return page
		}

		var disambig *wikipedia.DisambiguationError
		if errors.As(err, &disambig) {
			if hops < c.maxRedirectHops && len(disambig.Options) > 0 {
				slog.Info("reference disambiguation, retrying with first option",
					"title", title, "option", disambig.Options[0])
				title = disambig.Options[0]
				hops++
				continue
			}
			slog.Warn("reference disambiguation unresolved, dropping candidate", "title", title)
			return nil
		}

		var notFound *wikipedia.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		attempt++
		if attempt >= c.maxRetries {
			slog.Warn("reference fetch failed, dropping candidate", "title", title, "error", err)
			return nil
		}

		backoff := time.Duration(1<<uint(attempt)) * time.Second
		slog.Info("reference fetch retry", "title", title, "attempt", attempt, "backoff", backoff)
		if err := c.sleep(ctx, backoff); err != nil {
			return nil
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
