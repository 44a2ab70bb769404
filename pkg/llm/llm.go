package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Prompt is a single generation request: the prompt body plus an optional
// system instruction that conditions the model for this call only.
type Prompt struct {
	Text              string
	SystemInstruction string
}

// Unavailable is a ChatModel that fails every call with Err.
// It stands in for a provider that could not be constructed at startup so the
// failure surfaces per request instead of aborting the process.
type Unavailable struct {
	Err error
}

func (u Unavailable) Ask(context.Context, string, string) (string, error) {
	return "", u.Err
}
