package collector

import (
	"context"
	"log/slog"
	"sort"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/pkg/utils"
)

const (
	topCommunitiesCap = 5
	samplePostsCap    = 3
)

// DiscussionSearcher is the discussion-forum search capability.
type DiscussionSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.DiscussionPost, error)
}

// DiscussionCollector summarizes forum discussion volume around a topic.
// Search failure and zero results both produce an empty stats payload;
// nothing escapes to the caller. No retries at this layer.
type DiscussionCollector struct {
	searcher DiscussionSearcher
	limit    int
}

func NewDiscussionCollector(searcher DiscussionSearcher, limit int) *DiscussionCollector {
	if limit <= 0 {
		limit = 20
	}
	return &DiscussionCollector{
		searcher: searcher,
		limit:    limit,
	}
}

func (c *DiscussionCollector) Analyze(ctx context.Context, topic string) domain.DiscussionStats {
	if c.searcher == nil {
		return domain.DiscussionStats{}
	}

	posts, err := c.searcher.Search(ctx, topic, c.limit)
	if err != nil {
		slog.Warn("discussion search failed", "topic", topic, "error", err)
		return domain.DiscussionStats{}
	}
	if len(posts) == 0 {
		return domain.DiscussionStats{}
	}

	var scoreSum, commentSum int
	communities := make(map[string]int)
	for _, post := range posts {
		scoreSum += post.Score
		commentSum += post.Comments
		communities[post.Community]++
	}

	count := len(posts)
	return domain.DiscussionStats{
		HasResults:      true,
		DiscussionCount: count,
		AverageScore:    utils.RoundDecimal(float64(scoreSum)/float64(count), 2),
		AverageComments: utils.RoundDecimal(float64(commentSum)/float64(count), 2),
		TopCommunities:  topCommunities(communities),
		SamplePosts:     topPosts(posts),
	}
}

func topCommunities(counts map[string]int) []domain.CommunityCount {
	ranked := make([]domain.CommunityCount, 0, len(counts))
	for community, count := range counts {
		ranked = append(ranked, domain.CommunityCount{Community: community, Count: count})
	}

	// Tie-break by name so the ordering is deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Community < ranked[j].Community
	})

	if len(ranked) > topCommunitiesCap {
		ranked = ranked[:topCommunitiesCap]
	}
	return ranked
}

func topPosts(posts []domain.DiscussionPost) []domain.DiscussionPost {
	sorted := make([]domain.DiscussionPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(sorted) > samplePostsCap {
		sorted = sorted[:samplePostsCap]
	}
	return sorted
}
