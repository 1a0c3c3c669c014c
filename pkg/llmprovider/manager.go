package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fulano-assistant/pkg/gemini"
	"fulano-assistant/pkg/log"
	"fulano-assistant/pkg/metrics"

	"github.com/openai/openai-go"
)

// Manager is the Generator behind every chat session. It tries providers in priority
// order, retrying each one on transient failures before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes retries and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // per provider, including the first try
	RetryDelay      time.Duration // grows linearly with the attempt number
	MaxTotalTimeout time.Duration // bound for the whole chain, 0 means none
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent returns the first successful response. The error wraps ErrAllProvidersFailed
// and the last provider error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: stopped before %s: %v", ErrAllProvidersFailed, provider.Name(), err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, req, resp)
			return resp, nil
		}
		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		started := time.Now()
		resp, err := provider.GenerateContent(ctx, req)
		metrics.LLMRequestDuration.WithLabelValues(provider.Name()).Observe(time.Since(started).Seconds())
		metrics.LLMRequests.WithLabelValues(provider.Name(), metrics.Outcome(err)).Inc()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
	}
	return nil, lastErr
}

// retryable reports whether the same provider may succeed on another attempt.
// Rejected requests (bad arguments, auth, blocked prompts) fail the same way every time.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, gemini.ErrPromptBlocked) {
		return false
	}
	var geminiErr *gemini.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Temporary()
	}
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode == http.StatusTooManyRequests || openaiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, req *Request, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Infof(ctx, "%s: provider=%s model=%s messages=%d tool_call=%t input_tokens=%d output_tokens=%d",
		LogPrefixManager, provider.Name(), provider.Model(), len(req.Messages),
		resp.Content.FunctionCall() != nil, usage.InputTokens, usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "%s: provider=%s model=%s: %v", LogPrefixManager, provider.Name(), provider.Model(), err)
}
