package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 30 * time.Second
	temperature    = 0.1
)

// OpenAIClient implements Completer on the OpenAI chat completion API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAIClient returns nil when no API key is configured; callers treat a
// nil client as "language model not available" and take the degraded path.
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}

	return &OpenAIClient{
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
