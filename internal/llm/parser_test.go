package llm

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseFactCheck_FullResponse(t *testing.T) {
	raw := `## Fact-Check Analysis

1. Factual Accuracy Score: 85%

2. Misleading Claims: None identified.

3. Source Credibility: The provided sources corroborate the article.

4. Overall Verdict: REAL NEWS

5. Confidence in your assessment: 90%`

	fc := ParseFactCheck(raw)

	assert.Equal(t, 85, fc.FactualScore)
	assert.Equal(t, domain.VerdictReal, fc.Verdict)
	assert.False(t, fc.IsFake)
	assert.Equal(t, 90, fc.Confidence)
	assert.Equal(t, raw, fc.DetailedAnalysis)
}

func TestParseFactCheck_FakeVerdict(t *testing.T) {
	raw := `Factual Accuracy Score: 15%
Overall Verdict: FAKE/MISLEADING NEWS
Confidence in your assessment: 95%`

	fc := ParseFactCheck(raw)

	assert.Equal(t, 15, fc.FactualScore)
	assert.Equal(t, domain.VerdictFake, fc.Verdict)
	assert.True(t, fc.IsFake)
	assert.Equal(t, 95, fc.Confidence)
}

func TestParseFactCheck_MisleadingOnlyStillFake(t *testing.T) {
	raw := "Overall Verdict: Misleading content\n"

	fc := ParseFactCheck(raw)

	assert.True(t, fc.IsFake)
	assert.Equal(t, domain.VerdictFake, fc.Verdict)
}

func TestParseFactCheck_MarkdownEmphasis(t *testing.T) {
	raw := "**Factual Accuracy Score:** **70**%\n**Overall Verdict:** REAL NEWS\n"

	fc := ParseFactCheck(raw)

	assert.Equal(t, 70, fc.FactualScore)
	assert.Equal(t, domain.VerdictReal, fc.Verdict)
}

func TestParseFactCheck_DecimalScore(t *testing.T) {
	raw := "Factual Accuracy Score: 72.5%\n"

	fc := ParseFactCheck(raw)

	assert.Equal(t, 72, fc.FactualScore)
}

func TestParseFactCheck_DefaultsWhenUnparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty response", ""},
		{"prose only", "The article seems plausible overall and well sourced."},
		{"score without percent sign", "Factual Accuracy Score: high\nmore text"},
		{"garbled numbers", "Factual Accuracy Score: abc%\nConfidence in your assessment: xyz%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := ParseFactCheck(tt.raw)

			assert.Equal(t, DefaultFactualScore, fc.FactualScore)
			assert.Equal(t, domain.VerdictUncertain, fc.Verdict)
			assert.Equal(t, DefaultConfidence, fc.Confidence)
			assert.False(t, fc.IsFake)
		})
	}
}

func TestParseFactCheck_KeywordFallbackWithoutVerdictHeading(t *testing.T) {
	raw := "This looks like fake news fabricated to mislead readers."

	fc := ParseFactCheck(raw)

	assert.True(t, fc.IsFake)
	// Without the verdict heading the verdict itself stays UNCERTAIN.
	assert.Equal(t, domain.VerdictUncertain, fc.Verdict)
}

func TestParseFactCheck_PartialFieldsKeepOtherDefaults(t *testing.T) {
	raw := "Overall Verdict: REAL NEWS\nno scores given"

	fc := ParseFactCheck(raw)

	assert.Equal(t, DefaultFactualScore, fc.FactualScore)
	assert.Equal(t, domain.VerdictReal, fc.Verdict)
	assert.Equal(t, DefaultConfidence, fc.Confidence)
}

func TestParseFactCheck_ScoreClamped(t *testing.T) {
	raw := "Factual Accuracy Score: 250%\nConfidence in your assessment: 180%"

	fc := ParseFactCheck(raw)

	assert.Equal(t, 100, fc.FactualScore)
	assert.Equal(t, 100, fc.Confidence)
}

func TestBuildSourcesContext_CapsAndTruncates(t *testing.T) {
	refs := make([]domain.ReferenceArticle, 5)
	for i := range refs {
		refs[i] = domain.ReferenceArticle{Title: "Ref", Summary: "s"}
	}
	articles := make([]domain.NewsArticle, 8)
	for i := range articles {
		articles[i] = domain.NewsArticle{Title: "News", Source: "X", Description: "d"}
	}

	ctx := BuildSourcesContext(refs, articles)

	assert.Equal(t, 3, strings.Count(ctx, "WIKIPEDIA SOURCE"))
	assert.Equal(t, 5, strings.Count(ctx, "NEWS SOURCE"))
}
