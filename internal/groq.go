package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible API endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// ChatRequest describes a single completion call.
type ChatRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// ChatCompleter sends a completion request to the generative service and
// returns the generated text.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// GroqClient implements ChatCompleter against Groq's OpenAI-compatible API
// using the official OpenAI Go SDK.
type GroqClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewGroqClient creates a Groq-backed completion client. An empty baseURL
// uses DefaultGroqBaseURL.
func NewGroqClient(apiKey, baseURL, model string, timeout time.Duration) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &GroqClient{client: client, model: model, timeout: timeout}
}

// Complete implements ChatCompleter with a bounded per-call timeout.
func (c *GroqClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from completion API")
	}
	return resp.Choices[0].Message.Content, nil
}
