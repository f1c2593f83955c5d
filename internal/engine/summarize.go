package engine

import (
	"context"
	"errors"
)

// BuildPrompt prepends the fixed summarization instruction to the transcript.
// The transcript is passed through whole; input-size limits are the model's
// constraint, not handled here.
func BuildPrompt(transcript string) string {
	return summaryPrompt + transcript
}

// Summarize sends the transcript to the configured LLM in a single generation
// request and returns the generated text unmodified. Errors propagate
// unchanged to the caller; there is no retry.
func Summarize(ctx context.Context, transcript string) (string, error) {
	if cfg.LLMClient == nil {
		return "", errors.New("llm client not configured")
	}
	IncrLLMCalls()
	out, err := cfg.LLMClient.Complete(ctx, "", BuildPrompt(transcript))
	if err != nil {
		IncrLLMErrors()
		return "", err
	}
	return out, nil
}
