package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/inference"
	"github.com/DjordjeVuckovic/news-verifier/internal/llm"
)

// AICollector wraps the two AI capabilities: local sentiment inference and
// the LLM-backed fact check. Either capability may be absent; both degrade
// to explicit payloads instead of errors.
type AICollector struct {
	sentiment      inference.Client
	sentimentModel string
	completer      llm.Completer
}

func NewAICollector(sentiment inference.Client, sentimentModel string, completer llm.Completer) *AICollector {
	return &AICollector{
		sentiment:      sentiment,
		sentimentModel: sentimentModel,
		completer:      completer,
	}
}

// AnalyzeSentiment classifies the article body's sentiment. Inputs longer
// than the model cap are truncated, not rejected.
func (c *AICollector) AnalyzeSentiment(ctx context.Context, text string) domain.SentimentResult {
	if c.sentiment == nil {
		return domain.SentimentResult{Err: "sentiment model not available"}
	}

	truncated := text
	if len([]rune(truncated)) > inference.MaxTextLen {
		truncated = string([]rune(truncated)[:inference.MaxTextLen])
	}

	resp, err := c.sentiment.Classify(ctx, inference.Request{
		Model: c.sentimentModel,
		Text:  truncated,
	})
	if err != nil {
		slog.Warn("sentiment classification failed", "error", err)
		return domain.SentimentResult{Err: err.Error()}
	}

	label := strings.ToLower(resp.Label)
	return domain.SentimentResult{
		Sentiment: label,
		Score:     resp.Score,
		Analysis:  fmt.Sprintf("%s sentiment with %.2f confidence", capitalize(label), resp.Score),
	}
}

// FactCheck runs the retrieval-augmented fact check: one LLM call over a
// bounded context built from the reference and news collectors' outputs,
// parsed defensively. A missing or failing language model yields an
// unavailable payload with zeroed factual inputs.
func (c *AICollector) FactCheck(
	ctx context.Context,
	title, content string,
	references []domain.ReferenceArticle,
	articles []domain.NewsArticle,
	subcategoryInfo string,
) domain.FactCheck {
	if c.completer == nil {
		return unavailableFactCheck("language model not configured")
	}

	sources := llm.BuildSourcesContext(references, articles)
	prompt := llm.FactCheckPrompt(title, content, sources, subcategoryInfo)

	raw, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Error("fact-check completion failed", "error", err)
		return unavailableFactCheck(err.Error())
	}

	return llm.ParseFactCheck(raw)
}

func unavailableFactCheck(reason string) domain.FactCheck {
	return domain.FactCheck{
		Verdict:          domain.VerdictUncertain,
		Confidence:       llm.DefaultConfidence,
		DetailedAnalysis: "Fact-check service unavailable: " + reason,
		Unavailable:      true,
	}
}

// GenerateSummary produces the human-readable closing summary via a second
// LLM call seeded with the verification outcome. It returns placeholder text
// instead of failing when the model is missing or errors.
func (c *AICollector) GenerateSummary(
	ctx context.Context,
	title, content string,
	verdict domain.Verdict,
	score int,
	keyPoints string,
) string {
	if c.completer == nil {
		return "Summarization service not available."
	}

	raw, err := c.completer.Complete(ctx, llm.SummaryPrompt(title, content, verdict, score, keyPoints))
	if err != nil {
		slog.Error("summary generation failed", "error", err)
		return "Summary not available."
	}

	return strings.TrimSpace(raw)
}

// ClassifySubcategories is the lightweight local pre-analysis run for OLD
// articles. Its output feeds the fact-check prompt as a hint.
func (c *AICollector) ClassifySubcategories(content string) domain.SubcategoryAnalysis {
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(lower, "election") || strings.Contains(lower, "politics"):
		return domain.SubcategoryAnalysis{
			Primary:    "Politics",
			Secondary:  "Domestic Elections",
			Confidence: 0.85,
			Keywords:   detect(lower, "election", "candidate", "politics", "vote"),
		}
	case strings.Contains(lower, "market") || strings.Contains(lower, "economy"):
		return domain.SubcategoryAnalysis{
			Primary:    "Economics",
			Secondary:  "Stock Market",
			Confidence: 0.90,
			Keywords:   detect(lower, "market", "stocks", "economy", "trade"),
		}
	default:
		return domain.SubcategoryAnalysis{
			Primary:    "General News",
			Confidence: 0.70,
		}
	}
}

func detect(text string, keywords ...string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
