package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/iPascal619/python-project-generator/internal/errs"
)

// ErrEmptyResponse reports a successful envelope with no usable message
// content.
var ErrEmptyResponse = errors.New("completion endpoint returned no content")

// maxAttempts bounds the sequential tries for one completion. Attempts
// follow each other immediately, without backoff.
const maxAttempts = 3

// GroqClient implements Client against Groq's OpenAI-compatible API. Any
// other OpenAI-compatible host works through the base URL override.
type GroqClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewGroqClient creates a client for the given credential and endpoint.
// An empty baseURL keeps the library default; timeout bounds each HTTP
// attempt separately.
func NewGroqClient(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *GroqClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &GroqClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger,
	}
}

// ModelName returns the configured model identifier.
func (c *GroqClient) ModelName() string {
	return c.model
}

// Complete sends one chat-completion request, retrying transport failures
// up to two more times. Envelope problems are not retried: when the
// endpoint answers with an empty choice list the answer is final.
func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		chatReq.Temperature = *req.Temperature
		if chatReq.Temperature == 0 {
			// The library marshals Temperature with omitempty, which
			// eats a literal 0; the smallest nonzero float32 is its
			// stand-in for an explicit zero.
			chatReq.Temperature = math.SmallestNonzeroFloat32
		}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			if ctx.Err() != nil {
				return "", errs.New(errs.KindTransport, ctx.Err())
			}
			lastErr = err
			if attempt < maxAttempts {
				c.logger.Warn("completion request failed, retrying",
					"attempt", attempt, "error", err)
				continue
			}
			return "", errs.Newf(errs.KindTransport,
				"completion request failed after %d attempts: %w", maxAttempts, lastErr)
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", errs.New(errs.KindProtocol, ErrEmptyResponse)
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", errs.New(errs.KindTransport, lastErr)
}
