package tools

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// ExchangeRateTool looks up the latest rate between two currencies (open.er-api.com format).
type ExchangeRateTool struct {
	client  *http.Client
	baseURL string
	base    string
	quote   string
	timeout time.Duration
	l       pkgLog.Logger
}

func NewExchangeRateTool(client *http.Client, baseURL, base, quote string, timeout time.Duration, l pkgLog.Logger) *ExchangeRateTool {
	if base == "" {
		base = defaultBase
	}
	if quote == "" {
		quote = defaultQuote
	}
	return &ExchangeRateTool{
		client:  client,
		baseURL: baseURL,
		base:    strings.ToUpper(base),
		quote:   strings.ToUpper(quote),
		timeout: timeout,
		l:       l,
	}
}

func (t *ExchangeRateTool) Name() agent.ToolName {
	return NameExchangeRate
}

func (t *ExchangeRateTool) Description() string {
	return "Consulta la tasa de cambio actual entre dos monedas. Por defecto de dólar (USD) a peso colombiano (COP)."
}

func (t *ExchangeRateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"base": map[string]interface{}{
				"type":        "string",
				"description": "ISO 4217 code of the source currency, e.g. 'USD'",
				"pattern":     "^[A-Za-z]{3}$",
			},
			"target": map[string]interface{}{
				"type":        "string",
				"description": "ISO 4217 code of the target currency, e.g. 'COP'",
				"pattern":     "^[A-Za-z]{3}$",
			},
		},
	}
}

func (t *ExchangeRateTool) Timeout() time.Duration {
	return t.timeout
}

type ExchangeRateInput struct {
	Base   string `json:"base"`
	Target string `json:"target"`
}

type exchangeRateResponse struct {
	Result     string             `json:"result"`
	ErrorType  string             `json:"error-type"`
	BaseCode   string             `json:"base_code"`
	LastUpdate string             `json:"time_last_update_utc"`
	Rates      map[string]float64 `json:"rates"`
}

func (t *ExchangeRateTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input ExchangeRateInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	base := strings.ToUpper(input.Base)
	if base == "" {
		base = t.base
	}
	target := strings.ToUpper(input.Target)
	if target == "" {
		target = t.quote
	}

	var resp exchangeRateResponse
	if err := getJSON(ctx, t.client, "exchange rate api", joinPath(t.baseURL, base), nil, &resp); err != nil {
		t.l.Warnf(ctx, "%s: lookup %s->%s failed: %v", LogPrefixExchange, base, target, err)
		return nil, err
	}
	if resp.Result != "" && resp.Result != "success" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRate, resp.ErrorType)
	}

	rate, ok := resp.Rates[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s->%s", ErrUnsupportedRate, base, target)
	}

	return map[string]interface{}{
		"base":    base,
		"target":  target,
		"rate":    rate,
		"updated": resp.LastUpdate,
	}, nil
}

var _ agent.Tool = (*ExchangeRateTool)(nil)
