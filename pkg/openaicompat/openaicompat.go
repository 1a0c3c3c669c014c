package openaicompat

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

func newClientImpl(cfg Config) *clientImpl {
	c := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		// retries belong to llmprovider.Manager
		option.WithMaxRetries(0),
	)
	return &clientImpl{client: &c, model: cfg.Model}
}

// CreateChatCompletion sends one chat completion request.
func (c *clientImpl) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	params.Model = shared.ChatModel(c.model)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("openaicompat: API error %d: %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("openaicompat: failed to call API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openaicompat: response has no choices")
	}
	return resp, nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}
