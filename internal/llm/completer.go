package llm

import "context"

// Completer is the language-model capability used for fact checking and
// summary generation. Implementations return the model's raw free-text
// response; the caller never assumes structured output.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
