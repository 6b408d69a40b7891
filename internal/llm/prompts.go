package llm

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/pkg/stringsutil"
)

const (
	maxReferenceSources = 3
	maxNewsSources      = 5
	referenceSummaryCap = 500
	newsDescriptionCap  = 300
)

const factCheckTemplate = `As an AI fact-checker, analyze the following news article for credibility.

ARTICLE TITLE: %s

ARTICLE CONTENT: %s

ADDITIONAL CONTEXT:
%s

PRE-ANALYSIS (if available, from a specialized model):
%s

Please provide:
1. A factual accuracy score (0-100%%)
2. Identification of any misleading claims
3. Assessment of source credibility (considering both provided sources and your general knowledge)
4. Overall verdict (REAL NEWS or FAKE/MISLEADING NEWS)
5. Confidence in your assessment (0-100%%)

Format your response as a structured analysis with clear headings.`

const summaryTemplate = `Based on the following news article and its verification analysis, provide a concise summary.

ARTICLE TITLE: %s
ARTICLE CONTENT:
%s

VERIFICATION RESULT:
Verdict: %s
Score: %d/100
Key Supporting Points/Reasons: %s

Your task is to:
1. Generate a neutral, brief summary of the news article itself (2-3 sentences).
2. Briefly state the overall verification outcome and the main reason(s) for it.
Ensure the summary is objective and clearly distinguishes between the news content and its assessment.`

// FactCheckPrompt renders the fact-check prompt with a bounded context window
// built from the retrieved sources.
func FactCheckPrompt(title, content, sources, subcategoryInfo string) string {
	return fmt.Sprintf(factCheckTemplate, title, content, sources, subcategoryInfo)
}

// SummaryPrompt renders the post-verification summary prompt.
func SummaryPrompt(title, content string, verdict domain.Verdict, score int, keyPoints string) string {
	return fmt.Sprintf(summaryTemplate, title, content, verdict, score, keyPoints)
}

// BuildSourcesContext assembles the retrieved-source section of the
// fact-check prompt: at most three reference articles with truncated
// summaries and five news articles with truncated descriptions.
func BuildSourcesContext(references []domain.ReferenceArticle, articles []domain.NewsArticle) string {
	var b strings.Builder

	for i, ref := range references {
		if i >= maxReferenceSources {
			break
		}
		fmt.Fprintf(&b, "\nWIKIPEDIA SOURCE %d: %s\n", i+1, ref.Title)
		fmt.Fprintf(&b, "Summary: %s\n", stringsutil.TruncateEllipsis(ref.Summary, referenceSummaryCap))
	}

	for i, article := range articles {
		if i >= maxNewsSources {
			break
		}
		fmt.Fprintf(&b, "\nNEWS SOURCE %d: %s\n", i+1, article.Title)
		fmt.Fprintf(&b, "Source: %s\n", article.Source)
		fmt.Fprintf(&b, "Description: %s\n", stringsutil.TruncateEllipsis(article.Description, newsDescriptionCap))
	}

	return b.String()
}
