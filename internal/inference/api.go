package inference

import (
	"context"
)

const defaultModel = "distilbert-sst2"

// MaxTextLen is the input cap for local classification. Longer inputs are
// truncated by the caller, not rejected.
const MaxTextLen = 512

type Request struct {
	// Model is the classifier model name.
	Model string `json:"model"`

	// Text is the input to classify.
	Text string `json:"text"`
}

type Response struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Client interface {
	Classify(ctx context.Context, req Request) (*Response, error)
}
