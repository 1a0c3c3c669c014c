package openaicompat

import (
	"context"

	"github.com/openai/openai-go"
)

// IClient is a chat-completions client for OpenAI-compatible endpoints
// (OpenAI, DeepSeek, DashScope, local gateways).
type IClient interface {
	// CreateChatCompletion sends one chat completion request. The configured model is applied.
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
