// Package llm talks to the chat-completion endpoint that writes the
// projects.
package llm

import "context"

// CompletionRequest carries one prompt plus its sampling parameters.
// Temperature is a pointer because zero is a valid sampling value; nil
// leaves the provider default in place.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature *float32
}

// Client is the interface the pipeline uses to obtain raw model output.
type Client interface {
	// Complete sends the prompt and returns the raw message content.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// ModelName returns the model identifier requests are sent with.
	ModelName() string
}
