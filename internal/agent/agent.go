package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/scoring"
	"github.com/DjordjeVuckovic/news-verifier/pkg/stringsutil"
	"github.com/DjordjeVuckovic/news-verifier/pkg/utils"
)

const (
	contentPreviewLen  = 100
	referencePreviews  = 3
	newsSamplePreviews = 3
)

// DiscussionAnalyzer summarizes forum discussion volume for a topic.
type DiscussionAnalyzer interface {
	Analyze(ctx context.Context, topic string) domain.DiscussionStats
}

// ReferenceFinder retrieves encyclopedia articles related to a topic.
type ReferenceFinder interface {
	FindRelated(ctx context.Context, topic string) []domain.ReferenceArticle
}

// NewsSearcher merges coverage from the configured news providers.
type NewsSearcher interface {
	Search(ctx context.Context, topic string) domain.NewsCoverage
}

// AIAnalyzer bundles sentiment, fact checking, subcategory classification
// and summary generation.
type AIAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) domain.SentimentResult
	FactCheck(ctx context.Context, title, content string, references []domain.ReferenceArticle, articles []domain.NewsArticle, subcategoryInfo string) domain.FactCheck
	ClassifySubcategories(content string) domain.SubcategoryAnalysis
	GenerateSummary(ctx context.Context, title, content string, verdict domain.Verdict, score int, keyPoints string) string
}

// Agent orchestrates one verification run: age classification, concurrent
// collector fan-out, the dependent fact-check call, scoring, summary
// generation and report assembly. Collectors absorb their own failures, so
// partial data never aborts a run.
type Agent struct {
	discussion DiscussionAnalyzer
	reference  ReferenceFinder
	news       NewsSearcher
	ai         AIAnalyzer

	collectorTimeout time.Duration
	now              func() time.Time
}

func New(
	discussion DiscussionAnalyzer,
	reference ReferenceFinder,
	news NewsSearcher,
	ai AIAnalyzer,
	collectorTimeout time.Duration,
) *Agent {
	if collectorTimeout <= 0 {
		collectorTimeout = 10 * time.Second
	}
	return &Agent{
		discussion:       discussion,
		reference:        reference,
		news:             news,
		ai:               ai,
		collectorTimeout: collectorTimeout,
		now:              time.Now,
	}
}

// Analyze runs the full verification pipeline for one request.
func (a *Agent) Analyze(ctx context.Context, req domain.VerificationRequest) (*domain.AnalysisReport, error) {
	start := a.now()
	slog.Info("starting analysis", "title", req.Title)

	ageClass, ageDays, dateKnown := req.ClassifyAge(start)
	if dateKnown {
		slog.Info("article age classified", "ageDays", ageDays, "class", ageClass)
	}

	var subcategory *domain.SubcategoryAnalysis
	subcategoryInfo := "News classified as recent; no pre-analysis for subcategory performed."
	if ageClass == domain.AgeOld {
		classified := a.ai.ClassifySubcategories(req.Content)
		subcategory = &classified
		subcategoryInfo = formatSubcategoryHint(classified)
	}

	// First-stage fan-out: the four collectors run concurrently and the
	// agent joins on all of them. Fast collectors never short-circuit the
	// wait; a slow one is bounded by its timeout context.
	var (
		stats     domain.DiscussionStats
		refs      []domain.ReferenceArticle
		coverage  domain.NewsCoverage
		sentiment domain.SentimentResult
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, a.collectorTimeout)
		defer cancel()
		stats = a.discussion.Analyze(cctx, req.Title)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, a.collectorTimeout)
		defer cancel()
		refs = a.reference.FindRelated(cctx, req.Title)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, a.collectorTimeout)
		defer cancel()
		coverage = a.news.Search(cctx, req.Title)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, a.collectorTimeout)
		defer cancel()
		sentiment = a.ai.AnalyzeSentiment(cctx, req.Content)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Second stage depends on reference and news outputs.
	factCheck := a.ai.FactCheck(ctx, req.Title, req.Content, refs, coverage.Articles, subcategoryInfo)

	verification := scoring.Score(scoring.Inputs{
		Discussion: stats,
		References: refs,
		News:       coverage,
		FactCheck:  factCheck,
	})

	keyPoints := fmt.Sprintf(
		"RAG Analysis Verdict: %s, Factual Score: %d%%, Confidence: %d%%. Discussions found: %d. Related news articles found: %d.",
		factCheck.Verdict, factCheck.FactualScore, factCheck.Confidence,
		stats.DiscussionCount, coverage.ArticlesCount,
	)
	summary := a.ai.GenerateSummary(ctx, req.Title, req.Content, verification.Verdict, verification.Score, keyPoints)

	report := &domain.AnalysisReport{
		Title:           req.Title,
		ContentPreview:  stringsutil.TruncateEllipsis(req.Content, contentPreviewLen),
		PublicationDate: req.PublicationDate,
		NewsAgeDays:     ageDays,
		AgeClass:        ageClass,
		Subcategory:     subcategory,
		Verification:    verification,
		Summary:         summary,
		Discussion:      stats,
		References:      referencePreviewList(refs),
		News:            newsSummary(coverage),
		Sentiment:       sentiment,
		FactCheck:       factCheck,
		ProcessingTime:  utils.RoundDecimal(a.now().Sub(start).Seconds(), 2),
		CreatedAt:       start.UTC(),
	}

	slog.Info("analysis completed",
		"title", req.Title,
		"verdict", verification.Verdict,
		"score", verification.Score,
		"processingTime", report.ProcessingTime,
	)

	return report, nil
}

func formatSubcategoryHint(s domain.SubcategoryAnalysis) string {
	secondary := s.Secondary
	if secondary == "" {
		secondary = "N/A"
	}
	return fmt.Sprintf("Primary: %s, Secondary: %s, Confidence: %.2f", s.Primary, secondary, s.Confidence)
}

func referencePreviewList(refs []domain.ReferenceArticle) []domain.ReferencePreview {
	previews := make([]domain.ReferencePreview, 0, referencePreviews)
	for i, ref := range refs {
		if i >= referencePreviews {
			break
		}
		previews = append(previews, domain.ReferencePreview{Title: ref.Title, Summary: ref.Summary})
	}
	return previews
}

func newsSummary(coverage domain.NewsCoverage) domain.NewsSummary {
	samples := make([]domain.NewsPreview, 0, newsSamplePreviews)
	for i, article := range coverage.Articles {
		if i >= newsSamplePreviews {
			break
		}
		samples = append(samples, domain.NewsPreview{
			Title:  article.Title,
			Source: article.Source,
			URL:    article.URL,
		})
	}
	return domain.NewsSummary{
		ArticlesCount:  coverage.ArticlesCount,
		SourcesCount:   coverage.SourcesCount,
		SampleArticles: samples,
	}
}
