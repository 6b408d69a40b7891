package domain

type Verdict string

const (
	VerdictReal      Verdict = "REAL"
	VerdictFake      Verdict = "FAKE"
	VerdictUncertain Verdict = "UNCERTAIN"
)

// SentimentResult is the local sentiment model's read of the article body.
// A missing or failed model sets Err and leaves the rest zeroed.
type SentimentResult struct {
	Sentiment string  `json:"sentiment,omitempty"`
	Score     float64 `json:"score,omitempty"`
	Analysis  string  `json:"analysis,omitempty"`
	Err       string  `json:"error,omitempty"`
}

// FactCheck is the structured judgment extracted from the language model's
// free-text fact-check response. Fields that could not be confidently parsed
// carry documented defaults (see llm.ParseFactCheck). Unavailable marks a run
// where no language model was configured or the call failed outright; the
// scoring engine then sees zeroed fact inputs.
type FactCheck struct {
	FactualScore     int     `json:"factualScore"`
	Verdict          Verdict `json:"verdict"`
	Confidence       int     `json:"confidence"`
	IsFake           bool    `json:"isFake"`
	DetailedAnalysis string  `json:"detailedAnalysis,omitempty"`
	Unavailable      bool    `json:"unavailable,omitempty"`
}

// SubcategoryAnalysis is the pre-analysis run for OLD articles only. Its
// string form is fed to the fact-check prompt as additional context.
type SubcategoryAnalysis struct {
	Primary    string   `json:"primary"`
	Secondary  string   `json:"secondary,omitempty"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords,omitempty"`
}
