package news

import (
	"context"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// Provider is one independent news search capability. Providers fail in
// isolation: a returned error means this provider contributes nothing, it
// never affects its siblings.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]domain.NewsArticle, error)
}
