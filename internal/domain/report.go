package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationResult is the scoring engine's output: a bounded total score,
// its three sub-scores and the reconciled verdict. Derived purely from
// collector outputs, reproducible for identical inputs.
type VerificationResult struct {
	Verdict            Verdict `json:"verdict"`
	IsFake             bool    `json:"isFake"`
	Score              int     `json:"score"`
	Confidence         int     `json:"confidence"`
	SourceCredibility  int     `json:"sourceCredibility"`
	ContentConsistency int     `json:"contentConsistency"`
	FactVerification   int     `json:"factVerification"`
}

type ReferencePreview struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type NewsPreview struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
}

type NewsSummary struct {
	ArticlesCount  int           `json:"articlesCount"`
	SourcesCount   int           `json:"sourcesCount"`
	SampleArticles []NewsPreview `json:"sampleArticles,omitempty"`
}

// AnalysisReport is the full artifact of one verification run, immutable
// after assembly. The ID is assigned when the report is persisted.
type AnalysisReport struct {
	ID              uuid.UUID            `json:"id,omitempty"`
	Title           string               `json:"title"`
	ContentPreview  string               `json:"contentPreview"`
	PublicationDate string               `json:"publicationDate,omitempty"`
	NewsAgeDays     int                  `json:"newsAgeDays,omitempty"`
	AgeClass        AgeClass             `json:"ageClass"`
	Subcategory     *SubcategoryAnalysis `json:"subcategory,omitempty"`
	Verification    VerificationResult   `json:"verification"`
	Summary         string               `json:"summary"`
	Discussion      DiscussionStats      `json:"discussion"`
	References      []ReferencePreview   `json:"references,omitempty"`
	News            NewsSummary          `json:"news"`
	Sentiment       SentimentResult      `json:"sentiment"`
	FactCheck       FactCheck            `json:"factCheck"`
	Cached          bool                 `json:"cached,omitempty"`
	ProcessingTime  float64              `json:"processingTime"`
	CreatedAt       time.Time            `json:"createdAt,omitempty"`
}

// Feedback is a user's correction signal for a stored report.
type Feedback struct {
	ArticleID uuid.UUID `json:"articleId"`
	IsCorrect bool      `json:"isCorrect"`
	Text      string    `json:"feedbackText,omitempty"`
}
